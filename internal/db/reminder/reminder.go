package reminder

import (
	e "billremind/internal/core/domain/errors"
	dr "billremind/internal/core/domain/reminder"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const reminderColumns = `
	id, vendor_name, description, sender_receiver, agreement, amount,
	billing_date, reminder_type, before_days, time_of_day,
	payment_status, notification_created, payments, created_at`

type PgxReminderRepository struct {
	pool *pgxpool.Pool
}

func NewPgxReminderRepository(pool *pgxpool.Pool) *PgxReminderRepository {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxReminderRepository{pool: pool}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input dr.CreateInput,
) (rem dr.Reminder, err error) {
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO reminder (
			vendor_name, description, sender_receiver, agreement, amount,
			billing_date, reminder_type, before_days, time_of_day,
			payment_status, notification_created, payments, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING`+reminderColumns,
		input.VendorName,
		input.Description,
		input.Side.String(),
		input.Agreement,
		input.Amount,
		input.BillingDate,
		input.Type.String(),
		input.BeforeDays,
		input.TimeOfDay,
		input.State.PaymentStatus().String(),
		input.State.NotificationCreated(),
		[]byte("[]"),
		input.CreatedAt,
	)
	return decodeReminder(row)
}

func (r *PgxReminderRepository) GetByID(ctx context.Context, id dr.ID) (rem dr.Reminder, err error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT`+reminderColumns+` FROM reminder WHERE id = $1`,
		int64(id),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, dr.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) List(ctx context.Context) ([]dr.Reminder, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+reminderColumns+` FROM reminder ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) FindByBillingDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dr.Reminder, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT`+reminderColumns+`
		FROM reminder
		WHERE billing_date >= $1 AND billing_date < $2
		ORDER BY id`,
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("find reminders by billing date range: %w", err)
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) FindPendingByBillingDateRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dr.Reminder, error) {
	rows, err := r.pool.Query(
		ctx,
		`SELECT`+reminderColumns+`
		FROM reminder
		WHERE billing_date >= $1 AND billing_date < $2 AND payment_status <> $3
		ORDER BY id`,
		from,
		to,
		dr.PaymentStatusPaid.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("find pending reminders by billing date range: %w", err)
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) Update(ctx context.Context, rem dr.Reminder) (dr.Reminder, error) {
	payments, err := encodePayments(rem.Payments)
	if err != nil {
		return dr.Reminder{}, err
	}
	row := r.pool.QueryRow(
		ctx,
		`UPDATE reminder SET
			vendor_name = $2,
			description = $3,
			sender_receiver = $4,
			agreement = $5,
			amount = $6,
			billing_date = $7,
			reminder_type = $8,
			before_days = $9,
			time_of_day = $10,
			payment_status = $11,
			notification_created = $12,
			payments = $13
		WHERE id = $1
		RETURNING`+reminderColumns,
		int64(rem.ID),
		rem.VendorName,
		rem.Description,
		rem.Side.String(),
		rem.Agreement,
		rem.Amount,
		rem.BillingDate,
		rem.Type.String(),
		rem.BeforeDays,
		rem.TimeOfDay,
		rem.State.PaymentStatus().String(),
		rem.State.NotificationCreated(),
		payments,
	)
	updated, err := decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return updated, dr.ErrReminderDoesNotExist
	}
	return updated, err
}

func decodeReminders(rows pgx.Rows) ([]dr.Reminder, error) {
	reminders := make([]dr.Reminder, 0)
	for rows.Next() {
		rem, err := decodeReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reminder rows: %w", err)
	}
	return reminders, nil
}

func decodeReminder(row pgx.Row) (rem dr.Reminder, err error) {
	var (
		id                  int64
		side                string
		reminderType        string
		paymentStatus       string
		notificationCreated bool
		payments            []byte
	)
	err = row.Scan(
		&id,
		&rem.VendorName,
		&rem.Description,
		&side,
		&rem.Agreement,
		&rem.Amount,
		&rem.BillingDate,
		&reminderType,
		&rem.BeforeDays,
		&rem.TimeOfDay,
		&paymentStatus,
		&notificationCreated,
		&payments,
		&rem.CreatedAt,
	)
	if err != nil {
		return rem, err
	}
	rem.ID = dr.ID(id)
	// Raw values are wrapped without validation: a row with an unknown
	// reminder type must still load so the sweep can skip it.
	rem.Side = dr.SideFrom(side)
	rem.Type = dr.TypeFrom(reminderType)
	rem.State = dr.StateFrom(dr.PaymentStatusFrom(paymentStatus), notificationCreated)
	if err := json.Unmarshal(payments, &rem.Payments); err != nil {
		return rem, fmt.Errorf("decode reminder payments: %w", err)
	}
	return rem, nil
}

func encodePayments(payments []dr.Payment) ([]byte, error) {
	if payments == nil {
		payments = []dr.Payment{}
	}
	encoded, err := json.Marshal(payments)
	if err != nil {
		return nil, fmt.Errorf("encode reminder payments: %w", err)
	}
	return encoded, nil
}
