package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/ledgerbook/ledgerd/pkg/uow"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, user_id, order_type, amount, order_date, submit_time`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create inserts the order; id and submit_time are assigned by the database.
func (o *OrderRepository) Create(ctx context.Context, order repoargs.OrderCreate) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders (user_id, order_type, amount, order_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+orderColumns,
		order.UserID, order.Type, order.Amount, order.OrderDate,
	)
	created, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %s", order.UserID)
	}
	return created, nil
}

// FindByID returns the order or domain.ErrRecordNotFound.
func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

// DeleteByID removes the order and returns the deleted row, or
// domain.ErrRecordNotFound when no row matched. The delete takes the row lock
// before reporting, so of two interleaved deletes of the same order exactly
// one gets the row back; the other sees not-found.
func (o *OrderRepository) DeleteByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`DELETE FROM orders WHERE id = $1 RETURNING `+orderColumns, id)
	deleted, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "deleting order %d", id)
	}
	return deleted, nil
}

// DeleteByUserID removes every order of the user via the user_id index and
// returns the number of deleted rows.
func (o *OrderRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	tag, err := o.conn.Exec(ctx, `DELETE FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		return 0, convertErr(err, "deleting orders of user %s", userID)
	}
	return tag.RowsAffected(), nil
}

func (o *OrderRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		return nil, convertErr(err, "getting orders of user %s", userID)
	}
	return collectOrders(rows, "getting orders of user %s", userID)
}

// GetByDateRange returns all orders whose order_date falls inside [from, to]
// inclusive. Both bounds are business dates, not submit times.
func (o *OrderRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_date BETWEEN $1 AND $2`, from, to)
	if err != nil {
		return nil, convertErr(err, "getting orders in date range")
	}
	return collectOrders(rows, "getting orders in date range")
}

func (o *OrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders`)
	if err != nil {
		return nil, convertErr(err, "getting all orders")
	}
	return collectOrders(rows, "getting all orders")
}

// SumByUserID recomputes the user's per-type amount sums from live orders.
func (o *OrderRepository) SumByUserID(ctx context.Context, userID string) (*repoargs.OrderSums, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT order_type, COALESCE(SUM(amount), 0)
		 FROM orders WHERE user_id = $1 GROUP BY order_type`, userID)
	if err != nil {
		return nil, convertErr(err, "summing orders of user %s", userID)
	}
	defer rows.Close()

	var sums = new(repoargs.OrderSums)
	for rows.Next() {
		var orderType domain.OrderType
		var sum decimal.Decimal
		if scanErr := rows.Scan(&orderType, &sum); scanErr != nil {
			return nil, convertErr(scanErr, "summing orders of user %s", userID)
		}
		if orderType == domain.OrderTypeDeposit {
			sums.DepositAmount = sum
		} else {
			sums.WithdrawalAmount = sum
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "summing orders of user %s", userID)
	}
	return sums, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Type,
		&order.Amount,
		&order.OrderDate,
		&order.SubmitTime,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func collectOrders(rows pgx.Rows, msg string, msgArgs ...any) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, convertErr(err, msg, msgArgs...)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, msg, msgArgs...)
	}
	return orders, nil
}
