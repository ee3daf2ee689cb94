package repoargs

import (
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/shopspring/decimal"
)

// UserApplyAmount adds Amount to the total matching Type for the user,
// creating the user record first if it does not exist yet.
type UserApplyAmount struct {
	UserID string
	Type   domain.OrderType
	Amount decimal.Decimal
}

// UserSubtractAmount subtracts Amount from the total matching Type, floored
// at zero.
type UserSubtractAmount struct {
	UserID string
	Type   domain.OrderType
	Amount decimal.Decimal
}
