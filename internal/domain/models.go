package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the aggregate record of one ledger participant. TotalDeposit and
// TotalWithdrawal are derived state: after any committed mutation they equal
// the sums of the user's live orders by type.
type User struct {
	ID              string
	RegisterTime    time.Time
	TotalDeposit    decimal.Decimal
	TotalWithdrawal decimal.Decimal
	Note            string
}

// Order is a single deposit or withdrawal record. ID and SubmitTime are
// assigned by the store on insert and never change afterwards.
type Order struct {
	ID         int64
	UserID     string
	Type       OrderType
	Amount     decimal.Decimal
	OrderDate  time.Time
	SubmitTime time.Time
}
