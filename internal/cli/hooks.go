package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlight/pkg/observability"
)

// logHooks reports observability events to a logger. Pipeline and cache
// events go to debug level; finished server requests go to info.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
	_ observability.ServerHooks   = (*logHooks)(nil)
)

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnBuildStart(ctx context.Context, source string) {
	h.logger.Debug("build started", "source", source)
}

func (h *logHooks) OnBuildComplete(ctx context.Context, source string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("build finished", "source", source, "nodes", nodes, "edges", edges, "duration", d)
}

func (h *logHooks) OnRenderStart(ctx context.Context, engine, format string, nodes int) {
	if engine == "" {
		engine = "circular"
	}
	h.logger.Debug("render started", "engine", engine, "format", format, "nodes", nodes)
}

func (h *logHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render finished", "format", format, "bytes", size, "duration", d)
}

func (h *logHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(ctx context.Context, requestID, method, path string) {
	h.logger.Debug("request", "id", requestID, "method", method, "path", path)
}

func (h *logHooks) OnResponse(ctx context.Context, requestID, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "id", requestID, "method", method, "path", path, "status", status, "duration", d)
}
