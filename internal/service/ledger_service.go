package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/ledgerbook/ledgerd/pkg/uow"
	"github.com/shopspring/decimal"
)

const orderDateLayout = "2006-01-02"

// LedgerService owns every mutation of the ledger. All writes that span the
// orders and users tables run inside a single unit-of-work transaction, so a
// user's totals and its live orders never diverge, not even under partial
// failure or interleaved calls.
type LedgerService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

// AddOrderArgs carries one raw order request. Amount and OrderDate come in as
// caller-supplied strings and are parsed during validation.
type AddOrderArgs struct {
	UserID    string
	Type      string
	Amount    string
	OrderDate string
}

// AddOrder records a new deposit or withdrawal. Inside one transaction the
// user record is created on first contact (register time = now, zeroed
// totals) or its matching total is incremented, and the order is inserted
// with a server-assigned id and submit time. Returns *domain.ValidationError
// on malformed input and *domain.TransactionError when the commit fails; in
// both cases nothing is written.
func (l *LedgerService) AddOrder(ctx context.Context, args AddOrderArgs) (*domain.Order, error) {
	create, validationErr := validateAddOrder(args)
	if validationErr != nil {
		return nil, validationErr
	}

	var created *domain.Order
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr
		}

		if _, err := userRepo.UpsertApplyAmount(c, repoargs.UserApplyAmount{
			UserID: create.UserID,
			Type:   create.Type,
			Amount: create.Amount,
		}); err != nil {
			return err
		}

		order, createErr := orderRepo.Create(c, *create)
		if createErr != nil {
			return createErr
		}
		created = order
		return nil
	})
	if txErr != nil {
		return nil, domain.NewTransactionError(txErr)
	}
	return created, nil
}

// DeleteOrder removes one order and subtracts its amount from the owner's
// matching total, floored at zero. A missing owner is tolerated: the order is
// deleted and the aggregate adjustment is skipped. Returns
// *domain.NotFoundError when the order does not exist; no writes happen then.
func (l *LedgerService) DeleteOrder(ctx context.Context, orderID int64) error {
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr
		}

		// Delete first. The row lock on the delete serializes interleaved
		// calls for the same order id: the loser sees no row and must not
		// apply the subtraction, otherwise the amount comes off twice.
		order, deleteErr := orderRepo.DeleteByID(c, orderID)
		if deleteErr != nil {
			if errors.Is(deleteErr, domain.ErrRecordNotFound) {
				return domain.NewNotFoundError("order", strconv.FormatInt(orderID, 10))
			}
			return deleteErr
		}

		// SubtractAmount reports false for an orphaned owner; the adjustment
		// is skipped and the delete stands.
		_, subErr := userRepo.SubtractAmount(c, repoargs.UserSubtractAmount{
			UserID: order.UserID,
			Type:   order.Type,
			Amount: order.Amount,
		})
		return subErr
	})
	return convertTxErr(txErr)
}

// DeleteUser removes the user and every order referencing it in one
// transaction. No partial cascade is observable. Deleting an unknown user is
// a successful no-op.
func (l *LedgerService) DeleteUser(ctx context.Context, userID string) error {
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr
		}

		if _, err := orderRepo.DeleteByUserID(c, userID); err != nil {
			return err
		}
		_, deleteErr := userRepo.DeleteByID(c, userID)
		return deleteErr
	})
	return convertTxErr(txErr)
}

// UpdateUserNote rewrites the user's note and nothing else. Updating an
// unknown user is a successful no-op, not a failure.
func (l *LedgerService) UpdateUserNote(ctx context.Context, userID string, note string) error {
	if err := l.userRepo.UpdateNote(ctx, userID, note); err != nil {
		return domain.NewTransactionError(err)
	}
	return nil
}

// convertTxErr wraps storage failures as *domain.TransactionError while
// letting domain-level not-found errors pass through untouched.
func convertTxErr(txErr error) error {
	if txErr == nil {
		return nil
	}
	var notFound *domain.NotFoundError
	if errors.As(txErr, &notFound) {
		return txErr
	}
	return domain.NewTransactionError(txErr)
}

func validateAddOrder(args AddOrderArgs) (*repoargs.OrderCreate, error) {
	if args.UserID == "" {
		return nil, domain.NewValidationError("userId", "must not be empty")
	}

	orderType := domain.OrderType(args.Type)
	if !orderType.Valid() {
		return nil, domain.NewValidationError("type", "must be deposit or withdrawal")
	}

	amount, amountErr := decimal.NewFromString(args.Amount)
	if amountErr != nil {
		return nil, domain.NewValidationError("amount", "not a number")
	}
	if amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}

	orderDate, dateErr := time.Parse(orderDateLayout, args.OrderDate)
	if dateErr != nil {
		return nil, domain.NewValidationError("orderDate", "must be a date in YYYY-MM-DD format")
	}

	return &repoargs.OrderCreate{
		UserID:    args.UserID,
		Type:      orderType,
		Amount:    amount,
		OrderDate: orderDate,
	}, nil
}
