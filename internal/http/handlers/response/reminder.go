package response

import (
	dr "billremind/internal/core/domain/reminder"
	"time"
)

type Payment struct {
	Month   string `json:"month"`
	SlipURL string `json:"slip_url"`
}

type Reminder struct {
	ID                  int64     `json:"id"`
	VendorName          string    `json:"vendor_name"`
	Description         string    `json:"description"`
	SenderReceiver      string    `json:"sender_receiver"`
	Agreement           string    `json:"agreement"`
	Amount              float64   `json:"amount"`
	BillingDate         time.Time `json:"billing_date"`
	ReminderType        string    `json:"reminder_type"`
	BeforeDays          int       `json:"before_days"`
	TimeOfDay           string    `json:"time_of_day"`
	PaymentStatus       string    `json:"payment_status"`
	NotificationCreated bool      `json:"notification_created"`
	Payments            []Payment `json:"payments"`
	CreatedAt           time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(rem dr.Reminder) {
	r.ID = int64(rem.ID)
	r.VendorName = rem.VendorName
	r.Description = rem.Description
	r.SenderReceiver = rem.Side.String()
	r.Agreement = rem.Agreement
	r.Amount = rem.Amount
	r.BillingDate = rem.BillingDate
	r.ReminderType = rem.Type.String()
	r.BeforeDays = rem.BeforeDays
	r.TimeOfDay = rem.TimeOfDay
	r.PaymentStatus = rem.State.PaymentStatus().String()
	r.NotificationCreated = rem.State.NotificationCreated()
	r.Payments = make([]Payment, 0, len(rem.Payments))
	for _, payment := range rem.Payments {
		r.Payments = append(r.Payments, Payment{Month: payment.Month, SlipURL: payment.SlipURL})
	}
	r.CreatedAt = rem.CreatedAt
}
