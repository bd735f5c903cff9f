package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/internal/vault/store"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/jwtx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"

	_ "github.com/aussiebroadwan/passkeep/api/vault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	cipher         service.Cipher
	AccountService *service.AccountService
	VaultService   *service.VaultService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	cipher service.Cipher,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cipher:       cipher,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerPasswordResets()
	r.registerGroups()
	r.registerCredentials()
	r.registerGenerator()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Passkeep Vault API
//	@version		0.1.0
//	@description	Password manager backend. Credentials are organised into groups owned by one account and their secrets are encrypted at rest with AES-256-GCM.
//	@description
//	@description				Secrets are only ever returned in plaintext by the reveal endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/passkeep
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, the live account check and a per
// account rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp/typ)
		requireAccount(r.AccountService),  // account still exists and is active
		httpx.RateLimitByAccount(limit),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	// POST /accounts - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/accounts",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/token - strict rate limit by IP + username to slow down guessing
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("GET /v1/accounts/me", r.secured(h.HandleMe, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/accounts/me", r.secured(h.HandleUpdateProfile, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/accounts/me", r.secured(h.HandleDelete, httpx.StrictLimit))
	r.Mux.Handle("POST /v1/accounts/me/password", r.secured(h.HandleChangePassword, httpx.StrictLimit))
	r.Mux.Handle("GET /v1/accounts/{username}", r.secured(h.HandleLookup, httpx.ModerateLimit))
}

func (r *Router) registerPasswordResets() {
	h := &PasswordResetHandler{AccountService: r.AccountService}

	// Both are public; strict by IP so they cannot be used to spam mailboxes
	r.Mux.Handle("POST /v1/password-resets",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/password-resets/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleReset),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerGroups() {
	h := &GroupsHandler{VaultService: r.VaultService}

	r.Mux.Handle("POST /v1/groups", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/groups", r.secured(h.HandleList, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/groups/credentials", r.secured(h.HandleListWithCredentials, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/groups/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/groups/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/groups/{id}/credentials", r.secured(h.HandleListCredentials, httpx.ModerateLimit))
}

func (r *Router) registerCredentials() {
	h := &CredentialsHandler{VaultService: r.VaultService}

	r.Mux.Handle("POST /v1/credentials", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/credentials/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/credentials/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/credentials/search", r.secured(h.HandleSearch, httpx.ModerateLimit))

	// Reveal is the only plaintext path, keep it on the strict budget
	r.Mux.Handle("GET /v1/credentials/{id}/secret", r.secured(h.HandleReveal, httpx.StrictLimit))
}

func (r *Router) registerGenerator() {
	r.Mux.Handle("GET /v1/passwords/generate",
		httpx.Chain(http.HandlerFunc(HandleGeneratePassword),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.cipher),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
