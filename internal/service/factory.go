package service

import (
	"fmt"

	"github.com/ledgerbook/ledgerd/pkg/uow"
)

type AppServices struct {
	LedgerService *LedgerService
	QueryService  *QueryService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	queryService, queryServiceErr := NewQueryService(unitOfWork)
	if queryServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", queryServiceErr.Error())
	}

	return &AppServices{
		LedgerService: ledgerService,
		QueryService:  queryService,
	}, nil
}
