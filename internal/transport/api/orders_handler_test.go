package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/logger"
	"github.com/ledgerbook/ledgerd/internal/service"
	"github.com/ledgerbook/ledgerd/internal/transport/api/mocks"
	"github.com/ledgerbook/ledgerd/internal/transport/api/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
	mockQueryService  *mocks.MockQueryServicer
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)
	s.mockQueryService = mocks.NewMockQueryServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		LedgerService: s.mockLedgerService,
		QueryService:  s.mockQueryService,
	})
}

func (s *OrderHandlerTestSuite) TestCreate() {
	userID := gofakeit.Username()

	createdOrder := domain.Order{
		ID:         1,
		UserID:     userID,
		Type:       domain.OrderTypeDeposit,
		Amount:     decimal.RequireFromString("100.50"),
		OrderDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		SubmitTime: time.Now(),
	}

	s.mockLedgerService.EXPECT().
		AddOrder(gomock.Any(), service.AddOrderArgs{
			UserID:    userID,
			Type:      "deposit",
			Amount:    "100.50",
			OrderDate: "2024-03-15",
		}).
		Return(&createdOrder, nil)

	s.mockLedgerService.EXPECT().
		AddOrder(gomock.Any(), service.AddOrderArgs{
			UserID:    userID,
			Type:      "transfer",
			Amount:    "100.50",
			OrderDate: "2024-03-15",
		}).
		Return(nil, domain.NewValidationError("type", "must be deposit or withdrawal"))

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"userId":"` + userID + `","type":"deposit","amount":"100.50","orderDate":"2024-03-15"}`,
			wantStatus: http.StatusCreated,
		}, {
			name:       "validation rejected",
			payload:    `{"userId":"` + userID + `","type":"transfer","amount":"100.50","orderDate":"2024-03-15"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing fields",
			payload:    `{"userId":"` + userID + `"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "broken json",
			payload:    `{"userId":`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				body, readErr := io.ReadAll(res.Body)
				s.Require().NoError(readErr)

				var got OrderResponse
				s.Require().NoError(json.Unmarshal(body, &got))
				s.Equal(userID, got.UserID)
				s.Equal("deposit", got.Type)
				s.InDelta(100.50, got.Amount, 0.001)
				s.Equal("2024-03-15", got.OrderDate)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestIndex() {
	orders := []domain.Order{
		{
			ID:         1,
			UserID:     "u1",
			Type:       domain.OrderTypeDeposit,
			Amount:     decimal.NewFromInt(100),
			OrderDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			SubmitTime: time.Now(),
		},
	}

	gomock.InOrder(
		s.mockQueryService.EXPECT().GetAllOrders(gomock.Any()).Return(orders, nil),
		s.mockQueryService.EXPECT().GetAllOrders(gomock.Any()).Return(nil, nil),
	)

	cases := []struct {
		name       string
		wantStatus int
	}{
		{name: "orders present", wantStatus: http.StatusOK},
		{name: "no orders", wantStatus: http.StatusNoContent},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + OrdersRoute,
			})

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestMonthly() {
	orders := []domain.Order{
		{
			ID:        2,
			UserID:    "u1",
			Type:      domain.OrderTypeWithdrawal,
			Amount:    decimal.NewFromInt(20),
			OrderDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	s.mockQueryService.EXPECT().GetMonthlyOrders(gomock.Any(), "2024-03").Return(orders, nil)
	s.mockQueryService.EXPECT().GetMonthlyOrders(gomock.Any(), "2024-04").Return(nil, nil)
	s.mockQueryService.EXPECT().GetMonthlyOrders(gomock.Any(), "nope").
		Return(nil, domain.NewValidationError("month", "must be a month in YYYY-MM format"))

	cases := []struct {
		name       string
		month      string
		wantStatus int
	}{
		{name: "orders in month", month: "2024-03", wantStatus: http.StatusOK},
		{name: "empty month", month: "2024-04", wantStatus: http.StatusNoContent},
		{name: "bad month", month: "nope", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + MonthlyOrdersRoute + "?month=" + t.month,
			})

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestDelete() {
	s.mockLedgerService.EXPECT().DeleteOrder(gomock.Any(), int64(1)).Return(nil)
	s.mockLedgerService.EXPECT().DeleteOrder(gomock.Any(), int64(404)).
		Return(domain.NewNotFoundError("order", "404"))

	cases := []struct {
		name       string
		orderID    string
		wantStatus int
	}{
		{name: "deleted", orderID: "1", wantStatus: http.StatusNoContent},
		{name: "missing order", orderID: "404", wantStatus: http.StatusNotFound},
		{name: "not a number", orderID: "abc", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    RouteGroup + OrdersRoute + "/" + t.orderID,
			})

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
