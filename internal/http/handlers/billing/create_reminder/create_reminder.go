package createreminder

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	service "billremind/internal/core/services/create_reminder"
	"billremind/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	VendorName     string    `json:"vendor_name"`
	Description    string    `json:"description"`
	SenderReceiver string    `json:"sender_receiver"`
	Agreement      string    `json:"agreement"`
	Amount         float64   `json:"amount"`
	BillingDate    time.Time `json:"billing_date"`
	ReminderType   string    `json:"reminder_type"`
	BeforeDays     int       `json:"before_days"`
	TimeOfDay      string    `json:"time_of_day"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.VendorName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.SenderReceiver, validation.Required, validation.In("sender", "receiver")),
		validation.Field(&i.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&i.BillingDate, validation.Required),
		validation.Field(&i.ReminderType, validation.Required, validation.In("BEFORE_DAYS", "WEEKLY")),
		validation.Field(&i.BeforeDays, validation.Min(0), validation.Max(reminder.MaxBeforeDays)),
		validation.Field(&i.TimeOfDay, validation.Required, validation.Length(5, 5), validation.Date("15:04")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	side, err := reminder.ParseSide(input.SenderReceiver)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	reminderType, err := reminder.ParseType(input.ReminderType)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			VendorName:  input.VendorName,
			Description: input.Description,
			Side:        side,
			Agreement:   input.Agreement,
			Amount:      input.Amount,
			BillingDate: input.BillingDate.UTC(),
			Type:        reminderType,
			BeforeDays:  input.BeforeDays,
			TimeOfDay:   input.TimeOfDay,
		},
	)
	if err != nil {
		var invalidState *e.InvalidStateError
		if errors.As(err, &invalidState) {
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		response.RenderInternalError(rw)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
