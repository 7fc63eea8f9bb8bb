package rundailybilling

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/services"
	service "billremind/internal/core/services/run_daily_billing"
	"billremind/internal/http/handlers/response"
	"fmt"
	"net/http"
)

// Handler is the cron entrypoint. It reports 200 even when individual
// reminders failed; only an infrastructure failure yields a 500.
type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.Render(
			rw,
			Result{Success: false, Message: "daily billing run failed"},
			http.StatusInternalServerError,
		)
		return
	}

	if result.Skipped {
		response.Render(
			rw,
			Result{Success: true, Message: "skipped: another instance holds the daily billing lock"},
			http.StatusOK,
		)
		return
	}

	response.Render(
		rw,
		Result{
			Success: true,
			Message: fmt.Sprintf(
				"rolled %d, notified %d, skipped %d, failed %d",
				result.RolledCount,
				result.NotifiedCount,
				result.SkippedCount,
				result.FailedCount,
			),
		},
		http.StatusOK,
	)
}
