package domain

type OrderType string

const (
	OrderTypeDeposit    OrderType = "deposit"
	OrderTypeWithdrawal OrderType = "withdrawal"
)

// Valid reports whether t is one of the two known order types.
func (t OrderType) Valid() bool {
	return t == OrderTypeDeposit || t == OrderTypeWithdrawal
}
