package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/liaison/api/liaison" // Swagger docs
	"github.com/aussiebroadwan/liaison/internal/liaison/metrics"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/internal/liaison/store"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	// identity resolves the caller on every /v1 route but the callback.
	identity      httpx.Middleware
	identityReady func() bool

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	metrics      *metrics.Metrics

	AppBaseURL string

	ConnectionService *service.ConnectionService
	CalendarService   *service.CalendarService
	EmailService      *service.EmailService
	ClientService     *service.ClientService
	TemplateService   *service.TemplateService
}

func NewRouter(
	identity httpx.Middleware,
	identityReady func() bool,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		identity:      identity,
		identityReady: identityReady,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		metrics:       m,
		logger:        logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerGoogle()
	r.registerCalendar()
	r.registerEmail()
	r.registerClients()
	r.registerTemplates()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Liaison API
//	@version		0.1.0
//	@description	Acts on a user's behalf against Google: keeps their delegated OAuth credential fresh,
//	@description	reads their primary calendar and sends email from their mailbox.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/liaison
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured runs h behind identity and a per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		r.identity,
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerGoogle() {
	h := &GoogleHandler{
		ConnectionService: r.ConnectionService,
		AppBaseURL:        r.AppBaseURL,
	}

	r.Mux.Handle("GET /v1/google/connect", r.secured(http.HandlerFunc(h.HandleConnect), httpx.ConnectLimit))

	// The callback is a browser redirect from Google; the state binds it to
	// the user instead of a caller identity.
	r.Mux.Handle("GET /v1/google/callback",
		httpx.Chain(http.HandlerFunc(h.HandleCallback),
			httpx.RateLimitByIP(httpx.ConnectLimit),
		),
	)

	r.Mux.Handle("GET /v1/google/status", r.secured(http.HandlerFunc(h.HandleStatus), httpx.APILimit))
	r.Mux.Handle("POST /v1/google/disconnect", r.secured(http.HandlerFunc(h.HandleDisconnect), httpx.APILimit))
}

func (r *Router) registerCalendar() {
	h := &CalendarHandler{CalendarService: r.CalendarService}
	r.Mux.Handle("GET /v1/calendar/events", r.secured(h, httpx.APILimit))
}

func (r *Router) registerEmail() {
	h := &EmailHandler{EmailService: r.EmailService}

	// Each request fans out to one provider call per recipient.
	r.Mux.Handle("POST /v1/email/send", r.secured(h, httpx.SendLimit))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	r.Mux.Handle("GET /v1/clients", r.secured(http.HandlerFunc(h.HandleList), httpx.APILimit))
	r.Mux.Handle("POST /v1/clients", r.secured(http.HandlerFunc(h.HandleCreate), httpx.APILimit))
	r.Mux.Handle("GET /v1/clients/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.APILimit))
	r.Mux.Handle("PATCH /v1/clients/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.APILimit))
	r.Mux.Handle("DELETE /v1/clients/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.APILimit))
}

func (r *Router) registerTemplates() {
	h := &TemplatesHandler{TemplateService: r.TemplateService}

	r.Mux.Handle("GET /v1/templates", r.secured(http.HandlerFunc(h.HandleList), httpx.APILimit))
	r.Mux.Handle("POST /v1/templates", r.secured(http.HandlerFunc(h.HandleCreate), httpx.APILimit))
	r.Mux.Handle("GET /v1/templates/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.APILimit))
	r.Mux.Handle("PATCH /v1/templates/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.APILimit))
	r.Mux.Handle("DELETE /v1/templates/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.APILimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.identityReady),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	if r.metrics != nil {
		r.Mux.Handle("GET /metrics",
			httpx.Chain(r.metrics.Handler(),
				httpx.RateLimitByIP(httpx.PublicLimit),
			),
		)
	}
}
