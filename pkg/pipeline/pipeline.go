// Package pipeline provides the build → style → render pipeline shared by the
// CLI and the HTTP server.
//
// # Architecture
//
// A run has two stages:
//
//  1. Build: turn a graph document into a graph and a highlight selection
//  2. Render: style, lay out and draw the graph, through the figure cache
//
// Centralising both stages here keeps caching, strict validation, logging and
// observability hooks identical for every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Request{
//	    Document: doc,
//	    Options:  pipeline.Options{Style: style.DefaultOptions(), Format: "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("graph.png", res.Image, 0o644)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	gio "github.com/matzehuels/graphlight/pkg/io"
	"github.com/matzehuels/graphlight/pkg/render"
	"github.com/matzehuels/graphlight/pkg/style"
)

// DefaultFormat is the output format used when none is given.
const DefaultFormat = render.FormatSVG

// =============================================================================
// Options
// =============================================================================

// Options configures one render. It supports JSON for API requests.
type Options struct {
	Style  style.Options `json:"style"`
	Engine string        `json:"engine,omitempty"`
	Format string        `json:"format,omitempty"`

	// Strict rejects highlighted nodes or edges missing from the graph.
	Strict bool `json:"strict,omitempty"`
	// Refresh bypasses the cache lookup; the fresh figure is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateFormat checks that format is a supported output format.
func ValidateFormat(format string) error {
	_, err := render.ParseFormat(format)
	return err
}

// ValidateEngine checks that engine is empty (circular layout) or a known
// Graphviz engine.
func ValidateEngine(engine string) error {
	if engine == "" || slices.Contains(render.ValidEngines, engine) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidLayout, "invalid engine: %q (must be one of: %v)", engine, render.ValidEngines)
}

// ValidateAndSetDefaults applies defaults and validates every option.
// A zero Style means the default style. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Style == (style.Options{}) {
		o.Style = style.DefaultOptions()
	}
	if o.Format == "" {
		o.Format = string(DefaultFormat)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := o.Style.Validate(); err != nil {
		return err
	}
	o.Style = o.Style.Normalized()
	o.validated = true
	return nil
}

// RenderOptions converts o to renderer options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Style:  o.Style,
		Engine: o.Engine,
		Format: render.Format(o.Format),
	}
}

// =============================================================================
// Request and Result
// =============================================================================

// Request is one render job.
type Request struct {
	// Document describes the graph. Its highlight section, if any, is merged
	// with Selection.
	Document *gio.Document
	// Selection adds highlighted nodes and edges on top of the document's.
	Selection style.Selection
	Options   Options
}

// Result holds the outcome of a run.
type Result struct {
	Graph     *graph.Graph
	GraphHash string
	Selection style.Selection

	Image       []byte
	Format      render.Format
	ContentType string

	Stats    Stats
	CacheHit bool
}

// Stats contains run timings and sizes.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
	Size       int
}
