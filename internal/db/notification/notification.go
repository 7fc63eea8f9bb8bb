package notification

import (
	e "billremind/internal/core/domain/errors"
	dn "billremind/internal/core/domain/notification"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolationCode = "23505"

type PgxNotificationSink struct {
	pool *pgxpool.Pool
}

func NewPgxNotificationSink(pool *pgxpool.Pool) *PgxNotificationSink {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxNotificationSink{pool: pool}
}

// Create inserts a single unseen notification. The table carries a
// uniqueness constraint on (reminder_id, billing_date), so a duplicate
// create for the same billing cycle surfaces as ErrAlreadyCreated.
func (s *PgxNotificationSink) Create(
	ctx context.Context,
	input dn.CreateInput,
) (dn.ID, error) {
	var id int64
	err := s.pool.QueryRow(
		ctx,
		`INSERT INTO billing_notification (
			reminder_id, title, description, vendor_name, amount,
			billing_date, reminder_time, is_seen
		) VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id`,
		int64(input.ReminderID),
		input.Title,
		input.Description,
		input.VendorName,
		input.Amount,
		input.BillingDate,
		input.ReminderTime,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, dn.ErrAlreadyCreated
		}
		return 0, fmt.Errorf("create billing notification: %w", err)
	}
	return dn.ID(id), nil
}
