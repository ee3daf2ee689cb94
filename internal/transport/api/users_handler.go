package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/service"
)

type UsersHandler struct {
	ledgerSvs LedgerServicer
	querySvs  QueryServicer
}

func NewUsersHandler(ledgerSvs LedgerServicer, querySvs QueryServicer) *UsersHandler {
	return &UsersHandler{
		ledgerSvs: ledgerSvs,
		querySvs:  querySvs,
	}
}

type UserResponse struct {
	UserID          string    `json:"userId"`
	RegisterTime    time.Time `json:"registerTime"`
	TotalDeposit    float64   `json:"totalDeposit"`
	TotalWithdrawal float64   `json:"totalWithdrawal"`
	Note            string    `json:"note"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

type ConsistencyResponse struct {
	UserID             string  `json:"userId"`
	StoredDeposit      float64 `json:"storedDeposit"`
	StoredWithdrawal   float64 `json:"storedWithdrawal"`
	ComputedDeposit    float64 `json:"computedDeposit"`
	ComputedWithdrawal float64 `json:"computedWithdrawal"`
	Consistent         bool    `json:"consistent"`
}

// Index GET RouteGroup + UsersRoute.
func (u *UsersHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := u.querySvs.GetAllUsers(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(users) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]UserResponse, len(users))
	for i, user := range users {
		response[i] = UserResponse{
			UserID:          user.ID,
			RegisterTime:    user.RegisterTime,
			TotalDeposit:    user.TotalDeposit.InexactFloat64(),
			TotalWithdrawal: user.TotalWithdrawal.InexactFloat64(),
			Note:            user.Note,
		}
	}

	c.JSON(http.StatusOK, response)
}

// Orders GET RouteGroup + UserOrdersRoute.
func (u *UsersHandler) Orders(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := u.querySvs.GetUserOrders(reqCtx, c.Param("id"))
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

// Consistency GET RouteGroup + UserConsistencyRoute.
func (u *UsersHandler) Consistency(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := u.querySvs.CheckUserConsistency(reqCtx, c.Param("id"))
	if err != nil {
		var notFoundErr *domain.NotFoundError
		if errors.As(err, &notFoundErr) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newConsistencyResponse(report))
}

// UpdateNote PUT RouteGroup + UserNoteRoute.
func (u *UsersHandler) UpdateNote(c *gin.Context) {
	var req UpdateNoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	// updating an unknown user is a documented no-op, so no 404 here
	if err := u.ledgerSvs.UpdateUserNote(reqCtx, c.Param("id"), req.Note); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete DELETE RouteGroup + UserRoute.
func (u *UsersHandler) Delete(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := u.ledgerSvs.DeleteUser(reqCtx, c.Param("id")); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Status(http.StatusNoContent)
}

func newConsistencyResponse(report *service.ConsistencyReport) ConsistencyResponse {
	return ConsistencyResponse{
		UserID:             report.UserID,
		StoredDeposit:      report.StoredDeposit.InexactFloat64(),
		StoredWithdrawal:   report.StoredWithdrawal.InexactFloat64(),
		ComputedDeposit:    report.ComputedDeposit.InexactFloat64(),
		ComputedWithdrawal: report.ComputedWithdrawal.InexactFloat64(),
		Consistent:         report.Consistent(),
	}
}
