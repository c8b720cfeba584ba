package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moe-backend/internal/auth"
	"github.com/heartmarshall/moe-backend/internal/config"
	"github.com/heartmarshall/moe-backend/internal/transport/middleware"
	"github.com/heartmarshall/moe-backend/internal/transport/rest"
)

type routerDeps struct {
	cfg     *config.Config
	logger  *slog.Logger
	learn   *rest.LearnWordHandler
	health  *rest.HealthHandler
	limiter *middleware.RateLimiter
}

// newRouter mounts the API and health routes. Health routes bypass auth and
// rate limiting.
func newRouter(d routerDeps) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /learn-word", d.learn.Learn)
	api.HandleFunc("PATCH /learn-word", d.learn.Review)
	api.HandleFunc("GET /students/{studentId}/words", d.learn.ListWords)

	var apiMW []middleware.Middleware
	if d.cfg.RateLimit.Enabled && d.limiter != nil {
		apiMW = append(apiMW, d.limiter.Limit())
	}
	if d.cfg.Auth.Enabled() {
		apiMW = append(apiMW, middleware.Auth(auth.NewVerifier(d.cfg.Auth), true))
	}

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.health.Live)
	root.HandleFunc("GET /ready", d.health.Ready)
	root.HandleFunc("GET /health", d.health.Health)
	root.Handle("/", middleware.Chain(apiMW...)(api))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.Recovery(d.logger),
		middleware.CORS(d.cfg.CORS),
	)(root)
}
