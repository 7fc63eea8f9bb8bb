package http

import (
	appservices "billremind/internal/app/services"
	handlerCreateReminder "billremind/internal/http/handlers/billing/create_reminder"
	handlerListReminders "billremind/internal/http/handlers/billing/list_reminders"
	handlerRecordPayment "billremind/internal/http/handlers/billing/record_payment"
	handlerRunDailyBilling "billremind/internal/http/handlers/billing/run_daily_billing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the billing reminder API. The run endpoint is an
// idempotent GET so a plain cron curl can trigger it.
func NewRouter(services *appservices.Services) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1/billing-reminders", func(r chi.Router) {
		r.Get("/run", handlerRunDailyBilling.New(services.RunDailyBilling).ServeHTTP)
		r.Get("/", handlerListReminders.New(services.ListReminders).ServeHTTP)
		r.Post("/", handlerCreateReminder.New(services.CreateReminder).ServeHTTP)
		r.Post("/{reminderID}/payment", handlerRecordPayment.New(services.RecordPayment).ServeHTTP)
	})

	return router
}
