package http

import (
	"log/slog"

	"github.com/gestao-rh/gestao-backend-go/internal/handler/http/middleware"
	"github.com/gestao-rh/gestao-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Advance    AdvanceHandler
	Employment EmploymentHandler
	RH         RHHandler
	Finance    FinanceHandler
	Audit      AuditHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.Limit)
			}
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.Limit)
			}

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)

					r.Route("/advances", func(r chi.Router) {
						r.Get("/", h.Advance.ListAdvances)
						r.Post("/", h.Advance.CreateAdvance)
						r.Delete("/{advanceId}", h.Advance.DeleteAdvance)
					})

					r.Route("/records", func(r chi.Router) {
						r.Get("/", h.Employment.ListRecords)
						r.Post("/", h.Employment.CreateRecord)
						r.Put("/{recordId}", h.Employment.UpdateRecord)
						r.Delete("/{recordId}", h.Employment.DeleteRecord)
					})

					r.Route("/contracts", func(r chi.Router) {
						r.Get("/", h.Employment.ListContracts)
						r.Post("/", h.Employment.CreateContract)
						r.Put("/{contractId}", h.Employment.UpdateContract)
						r.Delete("/{contractId}", h.Employment.DeleteContract)
					})
				})
			})

			r.Route("/rh", func(r chi.Router) {
				r.Post("/payments", h.RH.CreatePayment)
				r.Get("/payments", h.RH.ListPayments)

				r.Post("/thirteenth", h.RH.CreateThirteenth)
				r.Get("/thirteenth", h.RH.ListThirteenth)

				r.Post("/timebank", h.RH.ApplyTimeBank)
				r.Get("/timebank/{employeeId}", h.RH.GetTimeBank)

				r.Post("/salary-history", h.RH.CreateSalaryHistory)
				r.Get("/salary-history", h.RH.ListSalaryHistory)

				r.Post("/vacations", h.RH.CreateVacation)
				r.Get("/vacations", h.RH.ListVacations)
			})

			r.Route("/finance", func(r chi.Router) {
				r.Route("/transactions", func(r chi.Router) {
					r.Get("/", h.Finance.ListTransactions)
					r.Post("/", h.Finance.CreateTransaction)
					r.Delete("/{id}", h.Finance.DeleteTransaction)
				})

				r.Route("/payables", func(r chi.Router) {
					r.Get("/", h.Finance.ListPayables)
					r.Post("/", h.Finance.CreatePayable)
					r.Put("/{id}", h.Finance.UpdatePayable)
					r.Delete("/{id}", h.Finance.DeletePayable)
					r.Post("/{id}/pay", h.Finance.PayPayable)
				})
			})

			r.Get("/audit", h.Audit.List)
		})
	})
	return r
}
