package service

import (
	"context"
	"errors"
	"time"

	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/ledgerbook/ledgerd/pkg/uow"
	"github.com/shopspring/decimal"
)

const yearMonthLayout = "2006-01"

// QueryService is the read-only side of the ledger. Scans use the secondary
// indexes (order_date, user_id) and never take writer locks.
type QueryService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	userRepo  UserRepository
}

func NewQueryService(u uow.UOW) (*QueryService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &QueryService{
		uow:       u,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}, nil
}

// GetMonthlyOrders returns every order whose business date falls inside the
// month given as "YYYY-MM", bounds inclusive. Result order is unspecified.
func (q *QueryService) GetMonthlyOrders(ctx context.Context, yearMonth string) ([]domain.Order, error) {
	month, parseErr := time.Parse(yearMonthLayout, yearMonth)
	if parseErr != nil {
		return nil, domain.NewValidationError("month", "must be a month in YYYY-MM format")
	}

	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	orders, err := q.orderRepo.GetByDateRange(ctx, firstOfMonth, lastOfMonth)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetUserOrders returns all orders of one user via the user_id index.
func (q *QueryService) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := q.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetAllOrders returns every order. Meant for small datasets; there is no
// pagination.
func (q *QueryService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := q.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// GetAllUsers returns every user record.
func (q *QueryService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := q.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

// ConsistencyReport compares a user's stored totals against the sums
// recomputed from its live orders.
type ConsistencyReport struct {
	UserID             string
	StoredDeposit      decimal.Decimal
	StoredWithdrawal   decimal.Decimal
	ComputedDeposit    decimal.Decimal
	ComputedWithdrawal decimal.Decimal
}

// Consistent reports whether stored and recomputed totals match exactly.
func (r *ConsistencyReport) Consistent() bool {
	return r.StoredDeposit.Equal(r.ComputedDeposit) &&
		r.StoredWithdrawal.Equal(r.ComputedWithdrawal)
}

// CheckUserConsistency recomputes the user's per-type sums from live orders
// and reports them next to the stored totals. The floor-at-zero clamp on
// deletes can mask drift; this is the explicit way to surface it. Both reads
// happen inside one transaction so the report is a consistent snapshot.
// Returns *domain.NotFoundError for an unknown user.
func (q *QueryService) CheckUserConsistency(ctx context.Context, userID string) (*ConsistencyReport, error) {
	var report *ConsistencyReport
	txErr := q.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr
		}

		user, findErr := userRepo.FindByID(c, userID)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.NewNotFoundError("user", userID)
			}
			return findErr
		}

		sums, sumErr := orderRepo.SumByUserID(c, userID)
		if sumErr != nil {
			return sumErr
		}

		report = &ConsistencyReport{
			UserID:             userID,
			StoredDeposit:      user.TotalDeposit,
			StoredWithdrawal:   user.TotalWithdrawal,
			ComputedDeposit:    sums.DepositAmount,
			ComputedWithdrawal: sums.WithdrawalAmount,
		}
		return nil
	})
	if txErr != nil {
		var notFound *domain.NotFoundError
		if errors.As(txErr, &notFound) {
			return nil, txErr
		}
		return nil, domain.NewTransactionError(txErr)
	}
	return report, nil
}
