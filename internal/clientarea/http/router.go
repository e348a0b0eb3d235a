package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/httpx"
	"github.com/aussiebroadwan/clientarea/pkg/jwtx"
	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"

	_ "github.com/aussiebroadwan/clientarea/api/clientarea" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics

	store               store.Store
	ProfessionalService *service.ProfessionalService
	SessionService      *service.SessionService
	ClientService       *service.ClientService
	ActivationService   *service.ActivationService
	VerifyService       *service.VerifyService
	AccessService       *service.AccessService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	metrics *metricsx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
	}

	// The metrics middleware must see the request the mux matched, so it
	// sits inside the logger (which replaces the request).
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.HTTPMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfessionals()
	r.registerClients()
	r.registerClientAccess()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Area API
//	@version		0.1.0
//	@description	Self-service access for clients of a professional. Professionals manage clients and hand out
//	@description	activation links (usually as QR codes); clients open their area by presenting the token in the link.
//	@description
//	@description				Session tokens are EdDSA signed JWTs and can be verified with the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clientarea
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Professional session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires a professional session carrying one of scopes.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerProfessionals() {
	h := &ProfessionalsHandler{
		ProfessionalService: r.ProfessionalService,
		SessionService:      r.SessionService,
	}

	// Registration is gated by a shared token; limit by IP like any signup.
	r.Mux.Handle("POST /api/professionals",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Login is limited per IP and username to slow down password guessing.
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{
		ClientService:     r.ClientService,
		ActivationService: r.ActivationService,
	}

	r.Mux.Handle("POST /api/clients",
		r.secured(h.HandleCreate, httpx.ModerateLimit, service.ScopeClientsWrite))
	r.Mux.Handle("GET /api/clients",
		r.secured(h.HandleList, httpx.LenientLimit, service.ScopeClientsRead))
	r.Mux.Handle("GET /api/clients/{clientId}",
		r.secured(h.HandleGet, httpx.LenientLimit, service.ScopeClientsRead))
	r.Mux.Handle("PUT /api/clients/{clientId}/owner",
		r.secured(h.HandleReassign, httpx.ModerateLimit, service.ScopeClientsWrite))

	// Activation links let anyone holding them into the client area, so
	// minting one needs write scope.
	r.Mux.Handle("GET /api/clients/{clientId}/activation-token",
		r.secured(h.HandleActivationToken, httpx.ModerateLimit, service.ScopeClientsWrite))
	r.Mux.Handle("GET /api/clients/{clientId}/activation-qr.png",
		r.secured(h.HandleActivationQR, httpx.ModerateLimit, service.ScopeClientsWrite))
}

func (r *Router) registerClientAccess() {
	h := &ClientAccessHandler{
		VerifyService: r.VerifyService,
		AccessService: r.AccessService,
		ClientService: r.ClientService,
	}

	// Public: presented by the client area. Limited per IP and client id so
	// guessing one client's token is slow without locking out a whole NAT.
	r.Mux.Handle("POST /api/client-access/verify-token",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "clientId"),
		),
	)
	r.Mux.Handle("POST /api/client-access/track/{clientId}",
		httpx.Chain(http.HandlerFunc(h.HandleTrack),
			httpx.RateLimitByIPAndPathValue(httpx.ModerateLimit, "clientId"),
		),
	)

	r.Mux.Handle("GET /api/client-access/count/{clientId}",
		r.secured(h.HandleCount, httpx.LenientLimit, service.ScopeClientsRead))
	r.Mux.Handle("GET /api/client-access/counts",
		r.secured(h.HandleCounts, httpx.LenientLimit, service.ScopeClientsRead))
	r.Mux.Handle("GET /api/client-access/{clientId}",
		r.secured(h.HandleList, httpx.LenientLimit, service.ScopeClientsRead))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
