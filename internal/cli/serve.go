package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlight/pkg/buildinfo"
	"github.com/matzehuels/graphlight/pkg/cache"
	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/io"
	"github.com/matzehuels/graphlight/pkg/observability"
	"github.com/matzehuels/graphlight/pkg/pipeline"
	"github.com/matzehuels/graphlight/pkg/style"
)

const (
	defaultAddr     = ":8080"
	maxRequestBytes = 10 << 20
	renderTimeout   = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	headerRequestID = "X-Request-ID"
	headerGraphHash = "X-Graph-Hash"
	headerCache     = "X-Cache"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr    string
	noCache bool
	redis   cache.RedisConfig
	prefix  string
}

// serveCommand creates the serve command, which exposes the render pipeline
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render pipeline over HTTP",
		Long: `Serve the render pipeline over HTTP.

  POST /v1/render   body {"document": {...}, "options": {...}}; responds with the image
  GET  /healthz     build information

Figures are cached on disk, or in Redis when --redis-addr is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the figure cache")
	cmd.Flags().StringVar(&opts.redis.Addr, "redis-addr", "", "Redis address for a shared figure cache (host:port)")
	cmd.Flags().StringVar(&opts.redis.Password, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redis.DB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", appName+":", "key prefix for the Redis cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	runner, err := c.serveRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServer(runner, c.Logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "version", buildinfo.Version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// serveRunner picks the figure cache: Redis when configured, otherwise the
// local file cache.
func (c *CLI) serveRunner(ctx context.Context, opts *serveOpts) (*pipeline.Runner, error) {
	if opts.noCache || opts.redis.Addr == "" {
		return c.newRunner(opts.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redis)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using redis cache", "addr", opts.redis.Addr, "db", opts.redis.DB)
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), opts.prefix)
	return pipeline.NewRunner(rc, keyer, c.Logger), nil
}

// =============================================================================
// HTTP handlers
// =============================================================================

type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{runner: runner, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.With(middleware.Timeout(renderTimeout)).Post("/render", s.handleRender)
	})
	return r
}

// requestID tags each request with an ID, a request-scoped logger and the
// server observability hooks.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		ctx := withLogger(r.Context(), s.logger.With("request_id", id))
		hooks := observability.Server()
		hooks.OnRequest(ctx, id, r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, id, r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

// renderRequest is the body of POST /v1/render. Style options left out of
// the body keep their defaults.
type renderRequest struct {
	Document *io.Document     `json:"document"`
	Options  pipeline.Options `json:"options"`
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	req := renderRequest{Options: pipeline.Options{Style: style.DefaultOptions()}}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	req.Options.Logger = logger

	res, err := s.runner.Execute(r.Context(), pipeline.Request{
		Document: req.Document,
		Options:  req.Options,
	})
	if err != nil {
		logger.Warn("render failed", "error", err)
		writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if res.CacheHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set(headerGraphHash, res.GraphHash)
	w.Header().Set(headerCache, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Image)
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errors.IsInvalid(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
