package pgrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *OrderRepository
}

func TestOrderRepoSuite(t *testing.T) {
	if os.Getenv(testDSNEnv) == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}
	suite.Run(t, new(OrderRepoTestSuite))
}

func (s *OrderRepoTestSuite) SetupSuite() {
	s.pool = testPool(s.T())
	s.repo = NewOrderRepository(s.pool)
}

func (s *OrderRepoTestSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *OrderRepoTestSuite) SetupTest() {
	truncateAll(s.T(), s.pool)
}

func (s *OrderRepoTestSuite) createOrder(userID string, orderType domain.OrderType, amount string) *domain.Order {
	s.T().Helper()
	order, err := s.repo.Create(context.Background(), repoargs.OrderCreate{
		UserID:    userID,
		Type:      orderType,
		Amount:    decimal.RequireFromString(amount),
		OrderDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return order
}

func (s *OrderRepoTestSuite) TestDeleteByIDReturnsDeletedRow() {
	created := s.createOrder(gofakeit.Username(), domain.OrderTypeDeposit, "40.00")

	deleted, err := s.repo.DeleteByID(context.Background(), created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, deleted.ID)
	s.Equal(created.UserID, deleted.UserID)
	s.Equal(created.Type, deleted.Type)
	s.True(deleted.Amount.Equal(created.Amount))

	_, err = s.repo.FindByID(context.Background(), created.ID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	_, err = s.repo.DeleteByID(context.Background(), created.ID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

// Two transactions deleting the same order: the row lock lets exactly one see
// the row, the other observes not-found after the winner commits. The caller
// relies on this to apply the aggregate adjustment exactly once.
func (s *OrderRepoTestSuite) TestConcurrentDeleteSingleWinner() {
	created := s.createOrder(gofakeit.Username(), domain.OrderTypeDeposit, "40.00")

	type deleteResult struct {
		order *domain.Order
		err   error
	}
	results := make(chan deleteResult, 2)
	for range 2 {
		go func() {
			ctx := context.Background()
			tx, txErr := s.pool.Begin(ctx)
			if txErr != nil {
				results <- deleteResult{err: txErr}
				return
			}
			order, delErr := NewOrderRepository(tx).DeleteByID(ctx, created.ID)
			if commitErr := tx.Commit(ctx); commitErr != nil {
				results <- deleteResult{err: commitErr}
				return
			}
			results <- deleteResult{order: order, err: delErr}
		}()
	}

	var wins, misses int
	for range 2 {
		res := <-results
		switch {
		case res.err == nil:
			s.Require().NotNil(res.order)
			wins++
		case errors.Is(res.err, domain.ErrRecordNotFound):
			misses++
		default:
			s.Require().NoError(res.err)
		}
	}
	s.Equal(1, wins)
	s.Equal(1, misses)
}
