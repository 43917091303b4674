package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gigmart/docs"
	"github.com/GlebRadaev/gigmart/internal/domain"
	authhandlers "github.com/GlebRadaev/gigmart/internal/handlers/auth"
	gighandlers "github.com/GlebRadaev/gigmart/internal/handlers/gigs"
	ledgerhandlers "github.com/GlebRadaev/gigmart/internal/handlers/ledger"
	"github.com/GlebRadaev/gigmart/internal/metrics"
	"github.com/GlebRadaev/gigmart/internal/service"
	"github.com/GlebRadaev/gigmart/pkg/auth"
	"github.com/GlebRadaev/gigmart/pkg/ratelimit"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	AdminCredit(w http.ResponseWriter, r *http.Request)
	AdminDebit(w http.ResponseWriter, r *http.Request)
}

type GigHandler interface {
	CreateGig(w http.ResponseWriter, r *http.Request)
	ListGigs(w http.ResponseWriter, r *http.Request)
	GetGig(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	LedgerHandler LedgerHandler
	GigHandler    GigHandler

	jwtService  auth.JWTServiceInterface
	limiter     *ratelimit.Limiter
	corsOrigins []string
}

// New wires the HTTP handlers. A nil limiter disables rate limiting.
func New(s *service.Services, limiter *ratelimit.Limiter, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
		GigHandler:    gighandlers.New(s.GigService),
		jwtService:    s.JWTService,
		limiter:       limiter,
		corsOrigins:   corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
		cors.New(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization", "Retry-After"},
		}).Handler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.Handler)
		}

		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(h.jwtService))

			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.LedgerHandler.GetBalance)
				r.Post("/balance/transfer", h.LedgerHandler.Transfer)
				r.Get("/ledger", h.LedgerHandler.GetHistory)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Post("/ledger/credit", h.LedgerHandler.AdminCredit)
				r.Post("/ledger/debit", h.LedgerHandler.AdminDebit)
			})

			r.Route("/gigs", func(r chi.Router) {
				r.Post("/", h.GigHandler.CreateGig)
				r.Get("/", h.GigHandler.ListGigs)
				r.Route("/{gigID}", func(r chi.Router) {
					r.Get("/", h.GigHandler.GetGig)
					r.Get("/applications", h.GigHandler.ListApplications)
					r.Post("/applications", h.GigHandler.Apply)
					r.Post("/accept", h.GigHandler.Accept)
					r.Post("/close", h.GigHandler.Close)
				})
			})

			r.Delete("/applications/{applicationID}", h.GigHandler.Withdraw)
		})
	})

	return r
}
