package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlight/pkg/cache"
	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	gio "github.com/matzehuels/graphlight/pkg/io"
	"github.com/matzehuels/graphlight/pkg/observability"
	"github.com/matzehuels/graphlight/pkg/render"
	"github.com/matzehuels/graphlight/pkg/style"
)

// cacheKeyFigure is the key type reported to cache hooks.
const cacheKeyFigure = "figure"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so that caching logic lives in one place.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Document == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "request has no document")
	}
	opts := req.Options
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Build
	buildStart := time.Now()
	g, err := r.Build(ctx, req.Document)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result := &Result{
		Graph:     g,
		Selection: req.Document.Selection().Merge(req.Selection),
		Format:    render.Format(opts.Format),
	}
	result.ContentType = result.Format.ContentType()
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	if opts.Strict {
		if err := result.Selection.Validate(g); err != nil {
			return nil, err
		}
	}

	result.GraphHash, err = HashGraph(g)
	if err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	image, hit, err := r.RenderWithCacheInfo(ctx, g, result.GraphHash, result.Selection, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Image = image
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Size = len(image)

	opts.Logger.Info("rendered figure",
		"format", opts.Format,
		"bytes", len(image),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build constructs the graph a document describes.
func (r *Runner) Build(ctx context.Context, doc *gio.Document) (*graph.Graph, error) {
	source := doc.Kind()
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, source)

	start := time.Now()
	g, err := doc.Build()
	if err != nil {
		hooks.OnBuildComplete(ctx, source, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnBuildComplete(ctx, source, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)

	r.Logger.Debug("built graph",
		"source", source,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())
	return g, nil
}

// RenderWithCacheInfo renders g through the figure cache and reports
// whether the image came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, sel style.Selection, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.FigureKey(graphHash, FigureKeyOpts(sel, opts))

	hooks := observability.Cache()
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			hooks.OnCacheHit(ctx, cacheKeyFigure)
			return data, true, nil
		} else if err != nil {
			opts.Logger.Warn("cache lookup failed", "error", err)
		}
		hooks.OnCacheMiss(ctx, cacheKeyFigure)
	}

	image, err := r.Render(ctx, g, sel, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, image, cache.TTLFigure); err != nil {
		opts.Logger.Warn("cache store failed", "error", err)
	} else {
		hooks.OnCacheSet(ctx, cacheKeyFigure, len(image))
	}
	return image, false, nil
}

// Render styles, lays out and draws g without consulting the cache.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, sel style.Selection, opts Options) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Engine, opts.Format, g.NodeCount())

	start := time.Now()
	image, err := render.Image(ctx, g, sel, opts.RenderOptions())
	hooks.OnRenderComplete(ctx, opts.Format, len(image), time.Since(start), err)
	return image, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// HashGraph returns a content hash of g's nodes, edges and positions.
func HashGraph(g *graph.Graph) (string, error) {
	var buf bytes.Buffer
	if err := gio.WriteJSON(g, &buf); err != nil {
		return "", fmt.Errorf("hash graph: %w", err)
	}
	return cache.Hash(buf.Bytes()), nil
}

// FigureKeyOpts collects the render inputs that distinguish cached figures.
func FigureKeyOpts(sel style.Selection, opts Options) cache.FigureKeyOpts {
	var edges []string
	for _, e := range sel.Edges.Sorted() {
		edges = append(edges, e.From+"\x00"+e.To)
	}
	return cache.FigureKeyOpts{
		Nodes:  sel.Nodes.Sorted(),
		Edges:  edges,
		Engine: opts.Engine,
		Format: opts.Format,
		Style:  opts.Style,
	}
}
