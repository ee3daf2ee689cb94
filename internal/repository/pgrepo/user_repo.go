package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ledgerbook/ledgerd/internal/domain"
	"github.com/ledgerbook/ledgerd/internal/repository/repoargs"
	"github.com/ledgerbook/ledgerd/pkg/uow"
)

const userColumns = `user_id, register_time, total_deposit, total_withdrawal, note`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// FindByID returns the user or domain.ErrRecordNotFound.
func (u *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %s", userID)
	}
	return user, nil
}

// UpsertApplyAmount adds args.Amount to the total matching args.Type. A
// missing user row is created with register_time = now and zeroed totals
// before the increment is applied. The increment happens in one statement, so
// concurrent first orders for the same user cannot lose updates.
func (u *UserRepository) UpsertApplyAmount(
	ctx context.Context,
	args repoargs.UserApplyAmount,
) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (user_id, register_time, total_deposit, total_withdrawal, note)
		 VALUES (
			$1,
			now(),
			CASE WHEN $2::text = 'deposit'    THEN $3::numeric ELSE 0 END,
			CASE WHEN $2::text = 'withdrawal' THEN $3::numeric ELSE 0 END,
			''
		 )
		 ON CONFLICT (user_id) DO UPDATE SET
			total_deposit    = users.total_deposit + EXCLUDED.total_deposit,
			total_withdrawal = users.total_withdrawal + EXCLUDED.total_withdrawal
		 RETURNING `+userColumns,
		args.UserID, args.Type, args.Amount,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "applying %s amount to user %s", args.Type, args.UserID)
	}
	return user, nil
}

// SubtractAmount subtracts args.Amount from the total matching args.Type,
// floored at zero. Returns false when the user row does not exist; the caller
// decides whether that is tolerable.
func (u *UserRepository) SubtractAmount(
	ctx context.Context,
	args repoargs.UserSubtractAmount,
) (bool, error) {
	tag, err := u.conn.Exec(ctx,
		`UPDATE users SET
			total_deposit = CASE WHEN $2::text = 'deposit'
				THEN GREATEST(total_deposit - $3::numeric, 0) ELSE total_deposit END,
			total_withdrawal = CASE WHEN $2::text = 'withdrawal'
				THEN GREATEST(total_withdrawal - $3::numeric, 0) ELSE total_withdrawal END
		 WHERE user_id = $1`,
		args.UserID, args.Type, args.Amount,
	)
	if err != nil {
		return false, convertErr(err, "subtracting %s amount from user %s", args.Type, args.UserID)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateNote rewrites the note column only. Missing user rows are left
// untouched without an error.
func (u *UserRepository) UpdateNote(ctx context.Context, userID string, note string) error {
	_, err := u.conn.Exec(ctx,
		`UPDATE users SET note = $2 WHERE user_id = $1`, userID, note)
	return convertErr(err, "updating note of user %s", userID)
}

// DeleteByID removes the user row. Returns false when no row existed.
func (u *UserRepository) DeleteByID(ctx context.Context, userID string) (bool, error) {
	tag, err := u.conn.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return false, convertErr(err, "deleting user %s", userID)
	}
	return tag.RowsAffected() > 0, nil
}

func (u *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, convertErr(err, "getting all users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting all users")
		}
		users = append(users, *user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting all users")
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.RegisterTime,
		&user.TotalDeposit,
		&user.TotalWithdrawal,
		&user.Note,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
