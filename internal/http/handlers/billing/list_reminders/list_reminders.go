package listreminders

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/services"
	service "billremind/internal/core/services/list_reminders"
	"billremind/internal/http/handlers/response"
	"net/http"
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

type Result struct {
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	reminders := make([]response.Reminder, len(result.Reminders))
	for ix, rem := range result.Reminders {
		reminders[ix].FromDomainType(rem)
	}
	response.Render(rw, Result{Reminders: reminders}, http.StatusOK)
}
