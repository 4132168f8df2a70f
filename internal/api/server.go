// Package api is a read-only HTTP gateway over the engine queries.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/procrest/engine-client-go/internal/ratelimit"
	"github.com/procrest/engine-client-go/internal/remote"
)

// Server is the HTTP query gateway.
type Server struct {
	engine  *remote.Engine
	budget  *ratelimit.QueryBudget
	scoped  bool
	logger  *slog.Logger
	mux     *http.ServeMux
	handler http.Handler
}

// Options configures a Server.
type Options struct {
	CORSOrigins []string
	OIDC        OIDCConfig

	// Budget limits queries per tenant and route. Nil disables it.
	Budget *ratelimit.QueryBudget
	Logger *slog.Logger
}

// New creates a Server answering queries from engine. With OIDC enabled the
// issuer is discovered now and every query is scoped to the caller's tenant.
func New(ctx context.Context, engine *remote.Engine, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	budget := opts.Budget
	if budget == nil {
		budget = ratelimit.NewQueryBudget(0, 0)
	}
	s := &Server{
		engine: engine,
		budget: budget,
		scoped: opts.OIDC.Enabled,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.routes()

	var h http.Handler = s.mux
	if opts.OIDC.Enabled {
		provider, err := oidc.NewProvider(ctx, opts.OIDC.IssuerURL)
		if err != nil {
			return nil, fmt.Errorf("api: oidc discovery for %s: %w", opts.OIDC.IssuerURL, err)
		}
		h = oidcAuth(provider, opts.OIDC.Audience, opts.OIDC.TenantClaim)(h)
	}
	s.handler = requestID(logging(logger, cors(opts.CORSOrigins, h)))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/process-definitions", s.handleProcessDefinitions)
	s.mux.HandleFunc("GET /api/v1/tasks", s.handleTasks)
	s.mux.HandleFunc("GET /api/v1/process-instances", s.handleProcessInstances)
	s.mux.HandleFunc("GET /api/v1/process-instances/count", s.handleCountProcessInstances)
	s.mux.HandleFunc("GET /api/v1/process-instances/{id}/variables", s.handleVariables)
	s.mux.HandleFunc("GET /api/v1/incidents", s.handleIncidents)
	s.mux.HandleFunc("GET /api/v1/stats", s.handleStats)
}
