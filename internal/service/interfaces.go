package service

import (
	"context"
	"time"

	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type OrderRepository interface {
	Create(ctx context.Context, order repoargs.OrderCreate) (*domain.Order, error)
	DeleteByID(ctx context.Context, id int64) (*domain.Order, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	SumByUserID(ctx context.Context, userID string) (*repoargs.OrderSums, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertApplyAmount(ctx context.Context, args repoargs.UserApplyAmount) (*domain.User, error)
	SubtractAmount(ctx context.Context, args repoargs.UserSubtractAmount) (bool, error)
	UpdateNote(ctx context.Context, userID string, note string) error
	DeleteByID(ctx context.Context, userID string) (bool, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}
