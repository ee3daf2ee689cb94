package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/service"
)

type OrdersHandler struct {
	ledgerSvs LedgerServicer
	querySvs  QueryServicer
}

func NewOrdersHandler(ledgerSvs LedgerServicer, querySvs QueryServicer) *OrdersHandler {
	return &OrdersHandler{
		ledgerSvs: ledgerSvs,
		querySvs:  querySvs,
	}
}

type CreateOrderRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	OrderDate string `json:"orderDate" binding:"required"`
}

type OrderResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	OrderDate  string    `json:"orderDate"`
	SubmitTime time.Time `json:"submitTime"`
}

func newOrderResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		UserID:     order.UserID,
		Type:       string(order.Type),
		Amount:     order.Amount.InexactFloat64(),
		OrderDate:  order.OrderDate.Format("2006-01-02"),
		SubmitTime: order.SubmitTime,
	}
}

func newOrderListResponse(orders []domain.Order) []OrderResponse {
	var response = make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = newOrderResponse(order)
	}
	return response
}

// Create POST RouteGroup + OrdersRoute.
func (o *OrdersHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, createErr := o.ledgerSvs.AddOrder(reqCtx, service.AddOrderArgs{
		UserID:    req.UserID,
		Type:      req.Type,
		Amount:    req.Amount,
		OrderDate: req.OrderDate,
	})
	if createErr != nil {
		var validationErr *domain.ValidationError
		if errors.As(createErr, &validationErr) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, createErr).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(*order))
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.querySvs.GetAllOrders(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, newOrderListResponse(orders))
}

// Monthly GET RouteGroup + MonthlyOrdersRoute.
func (o *OrdersHandler) Monthly(c *gin.Context) {
	yearMonth := c.Query("month")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.querySvs.GetMonthlyOrders(reqCtx, yearMonth)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, newOrderListResponse(orders))
}

// Delete DELETE RouteGroup + OrderRoute.
func (o *OrdersHandler) Delete(c *gin.Context) {
	orderID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.ledgerSvs.DeleteOrder(reqCtx, orderID); err != nil {
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &notFoundErr) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Status(http.StatusNoContent)
}
