package recordpayment

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	service "billremind/internal/core/services/record_payment"
	"billremind/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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
	Month   string `json:"month"`
	SlipURL string `json:"slip_url"`
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
		validation.Field(&i.Month, validation.Required, validation.Length(1, 32)),
		validation.Field(&i.SlipURL, validation.Length(0, 2048)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	reminderID, err := strconv.ParseInt(chi.URLParam(r, "reminderID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			ReminderID: reminder.ID(reminderID),
			Month:      input.Month,
			SlipURL:    input.SlipURL,
		},
	)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderDoesNotExist) {
			response.RenderNotFound(rw)
			return
		}
		response.RenderInternalError(rw)
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusOK)
}
