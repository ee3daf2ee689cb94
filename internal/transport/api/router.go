package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/ledgerd/internal/transport/api/middlewares"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	OrdersRoute          = "/orders"
	MonthlyOrdersRoute   = "/orders/monthly"
	OrderRoute           = "/orders/:id"
	UsersRoute           = "/users"
	UserRoute            = "/users/:id"
	UserOrdersRoute      = "/users/:id/orders"
	UserNoteRoute        = "/users/:id/note"
	UserConsistencyRoute = "/users/:id/consistency"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	LedgerService LedgerServicer
	QueryService  QueryServicer
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	ordersHandler := NewOrdersHandler(args.LedgerService, args.QueryService)
	usersHandler := NewUsersHandler(args.LedgerService, args.QueryService)

	api := r.Group(RouteGroup)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(MonthlyOrdersRoute, ordersHandler.Monthly)
	api.DELETE(OrderRoute, ordersHandler.Delete)

	api.GET(UsersRoute, usersHandler.Index)
	api.GET(UserOrdersRoute, usersHandler.Orders)
	api.GET(UserConsistencyRoute, usersHandler.Consistency)
	api.PUT(UserNoteRoute, usersHandler.UpdateNote)
	api.DELETE(UserRoute, usersHandler.Delete)

	return r
}
