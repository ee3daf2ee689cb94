package repoargs

import (
	"time"

	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderCreate struct {
	UserID    string
	Type      domain.OrderType
	Amount    decimal.Decimal
	OrderDate time.Time
}

// OrderSums is the per-type amount aggregation of one user's live orders.
type OrderSums struct {
	DepositAmount    decimal.Decimal
	WithdrawalAmount decimal.Decimal
}
