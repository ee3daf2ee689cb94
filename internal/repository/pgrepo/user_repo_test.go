package pgrepo

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *UserRepository
}

func TestUserRepoSuite(t *testing.T) {
	if os.Getenv(testDSNEnv) == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}
	suite.Run(t, new(UserRepoTestSuite))
}

func (s *UserRepoTestSuite) SetupSuite() {
	s.pool = testPool(s.T())
	s.repo = NewUserRepository(s.pool)
}

func (s *UserRepoTestSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *UserRepoTestSuite) SetupTest() {
	truncateAll(s.T(), s.pool)
}

func (s *UserRepoTestSuite) TestUpsertCreatesThenIncrements() {
	userID := gofakeit.Username()
	deposit := decimal.RequireFromString("40.10")
	withdrawal := decimal.RequireFromString("9.90")

	first, err := s.repo.UpsertApplyAmount(context.Background(), repoargs.UserApplyAmount{
		UserID: userID,
		Type:   domain.OrderTypeDeposit,
		Amount: deposit,
	})
	s.Require().NoError(err)
	s.True(first.TotalDeposit.Equal(deposit))
	s.True(first.TotalWithdrawal.IsZero())
	s.False(first.RegisterTime.IsZero())

	second, err := s.repo.UpsertApplyAmount(context.Background(), repoargs.UserApplyAmount{
		UserID: userID,
		Type:   domain.OrderTypeWithdrawal,
		Amount: withdrawal,
	})
	s.Require().NoError(err)
	s.True(second.TotalDeposit.Equal(deposit))
	s.True(second.TotalWithdrawal.Equal(withdrawal))
	// register time is set on first contact only; the conflict branch must
	// leave it untouched
	s.True(second.RegisterTime.Equal(first.RegisterTime))
}

func (s *UserRepoTestSuite) TestConcurrentFirstOrdersKeepEveryIncrement() {
	userID := gofakeit.Username()
	amount := decimal.RequireFromString("12.50")

	const workers = 8
	var wg sync.WaitGroup
	errChan := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.UpsertApplyAmount(context.Background(), repoargs.UserApplyAmount{
				UserID: userID,
				Type:   domain.OrderTypeDeposit,
				Amount: amount,
			})
			errChan <- err
		}()
	}
	wg.Wait()
	close(errChan)
	for err := range errChan {
		s.Require().NoError(err)
	}

	user, err := s.repo.FindByID(context.Background(), userID)
	s.Require().NoError(err)
	s.True(user.TotalDeposit.Equal(amount.Mul(decimal.NewFromInt(workers))))
	s.True(user.TotalWithdrawal.IsZero())
}

func (s *UserRepoTestSuite) TestSubtractClampsAtZero() {
	userID := gofakeit.Username()

	_, err := s.repo.UpsertApplyAmount(context.Background(), repoargs.UserApplyAmount{
		UserID: userID,
		Type:   domain.OrderTypeDeposit,
		Amount: decimal.NewFromInt(30),
	})
	s.Require().NoError(err)
	_, err = s.repo.UpsertApplyAmount(context.Background(), repoargs.UserApplyAmount{
		UserID: userID,
		Type:   domain.OrderTypeWithdrawal,
		Amount: decimal.NewFromInt(5),
	})
	s.Require().NoError(err)

	adjusted, err := s.repo.SubtractAmount(context.Background(), repoargs.UserSubtractAmount{
		UserID: userID,
		Type:   domain.OrderTypeDeposit,
		Amount: decimal.NewFromInt(50),
	})
	s.Require().NoError(err)
	s.True(adjusted)

	user, err := s.repo.FindByID(context.Background(), userID)
	s.Require().NoError(err)
	// subtracting below zero floors at zero and never touches the other total
	s.True(user.TotalDeposit.IsZero())
	s.True(user.TotalWithdrawal.Equal(decimal.NewFromInt(5)))
}

func (s *UserRepoTestSuite) TestSubtractMissingUser() {
	adjusted, err := s.repo.SubtractAmount(context.Background(), repoargs.UserSubtractAmount{
		UserID: gofakeit.Username(),
		Type:   domain.OrderTypeDeposit,
		Amount: decimal.NewFromInt(1),
	})
	s.Require().NoError(err)
	s.False(adjusted)
}
