package api

import (
	"context"

	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type LedgerServicer interface {
	AddOrder(ctx context.Context, args service.AddOrderArgs) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	DeleteUser(ctx context.Context, userID string) error
	UpdateUserNote(ctx context.Context, userID string, note string) error
}

type QueryServicer interface {
	GetMonthlyOrders(ctx context.Context, yearMonth string) ([]domain.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	CheckUserConsistency(ctx context.Context, userID string) (*service.ConsistencyReport, error)
}
