package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ledgerbook/ledgerd/internal/config"
	"github.com/ledgerbook/ledgerd/internal/repository/pgrepo"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/ledgerbook/ledgerd/internal/service"
	"github.com/ledgerbook/ledgerd/internal/transport/api"
	"github.com/ledgerbook/ledgerd/pkg/uow"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return errors.Wrap(connErr, "app run")
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return errors.Wrap(uowErr, "app run")
	}

	services, sErr := service.Factory(unitOfWork)
	if sErr != nil {
		return errors.Wrap(sErr, "app run")
	}

	router := api.New(api.RouterArgs{
		Logger:        a.Logger,
		LedgerService: services.LedgerService,
		QueryService:  services.QueryService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	// order repo
	orderRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewOrderRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.OrderRepoName), orderRepoFactoryFn); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	return unitOfWork, nil
}
