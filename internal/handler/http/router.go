package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/absenta-hr/leave-backend-go/internal/handler/http/middleware"
	"github.com/absenta-hr/leave-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	balanceHandler BalanceHandler,
	requestHandler LeaveRequestHandler,
	sellBackHandler SellBackHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absenta-leave"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/balance", func(r chi.Router) {
				r.Get("/my", balanceHandler.GetMyBalance)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/{employeeID}", balanceHandler.GetEmployeeBalance)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", requestHandler.Create)
				r.Get("/my", requestHandler.GetMyRequests)
				r.Get("/{id}", requestHandler.Get)
				r.Post("/{id}/cancel", requestHandler.Cancel)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", requestHandler.List)
					r.Post("/{id}/approve", requestHandler.Approve)
					r.Post("/{id}/reject", requestHandler.Reject)
					r.Post("/{id}/interrupt", requestHandler.Interrupt)
				})
			})

			r.Route("/sell-requests", func(r chi.Router) {
				r.Post("/", sellBackHandler.Create)
				r.Get("/my", sellBackHandler.GetMyRequests)

				// Approver only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", sellBackHandler.List)
					r.Post("/{id}/approve", sellBackHandler.Approve)
					r.Post("/{id}/reject", sellBackHandler.Reject)
				})
			})

			r.Get("/team-calendar", calendarHandler.TeamVacations)
			r.Get("/calendar/month-view", calendarHandler.MonthView)

			r.Route("/events", func(r chi.Router) {
				r.Get("/", calendarHandler.ListEvents)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", calendarHandler.CreateEvent)
					r.Delete("/{id}", calendarHandler.DeleteEvent)
				})
			})
		})
	})

	return r
}
