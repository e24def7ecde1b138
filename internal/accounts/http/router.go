package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"

	_ "github.com/lumabank/accounts/api/docs" // Swagger docs
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	RegisterService *service.RegisterService
	ProfileService  *service.ProfileService
	ManagerService  *service.ManagerService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerClients()
	r.registerManagers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Account Service API
//	@version		0.1.0
//	@description	Banking-style account service: client registration, PIN login with
//	@description	opaque bearer tokens, profile self-service, and manager administration
//	@description	of client accounts.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque bearer token. Format: "Token {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP (brute force prevention)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/account/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerClients() {
	// POST /client/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{RegisterService: r.RegisterService}
	r.Mux.Handle("POST /api/account/client/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	profileHandler := &ProfileHandler{ProfileService: r.ProfileService}
	securedGet := httpx.Chain(http.HandlerFunc(profileHandler.HandleGet),
		AuthnMiddleware(r.AuthService),
		RequireCapability(domain.CanUseProfile),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	securedPut := httpx.Chain(http.HandlerFunc(profileHandler.HandlePut),
		AuthnMiddleware(r.AuthService),
		RequireCapability(domain.CanUseProfile),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/account/client/profile", securedGet)
	r.Mux.Handle("PUT /api/account/client/profile", securedPut)

	// PUT /client/provide_pin - strict rate limit by account (credential change)
	pinHandler := &ProvidePINHandler{ProfileService: r.ProfileService}
	securedPIN := httpx.Chain(pinHandler,
		AuthnMiddleware(r.AuthService),
		RequireCapability(domain.CanProvidePIN),
		httpx.RateLimitByAccount(httpx.StrictLimit),
	)

	r.Mux.Handle("PUT /api/account/client/provide_pin", securedPIN)
}

func (r *Router) registerManagers() {
	h := &ManagerClientsHandler{ManagerService: r.ManagerService}

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			AuthnMiddleware(r.AuthService),
			RequireCapability(domain.CanManageClients),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/account/manager/clients", secured(h.HandleList))
	r.Mux.Handle("GET /api/account/manager/clients/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /api/account/manager/clients/{id}", secured(h.HandlePut))
	r.Mux.Handle("DELETE /api/account/manager/clients/{id}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
