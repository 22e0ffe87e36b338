package render

import (
	"context"
	"fmt"
	"io"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/style"
)

// PathNodeSize is the marker area [DrawPath] gives every node.
const PathNodeSize = 300.0

// Options configures a full draw.
type Options struct {
	// Style holds colors, sizes, label flags and the figure size.
	Style style.Options

	// Engine overrides node placement for graphs without fixed positions.
	// Empty means the circular layout.
	Engine string

	// Format is the output image format. Empty means SVG.
	Format Format

	// NodeSize, when positive, draws every node at this marker area instead
	// of the degree-scaled size.
	NodeSize float64
}

// Image styles g with sel, lays it out and renders it.
// The selection is only read; references to absent nodes or edges are ignored.
func Image(ctx context.Context, g *graph.Graph, sel style.Selection, opts Options) ([]byte, error) {
	if err := opts.Style.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("node_size", opts.NodeSize); err != nil {
		return nil, err
	}
	format := opts.Format
	if format == "" {
		format = FormatSVG
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	placement, err := Layout(g, opts.Engine)
	if err != nil {
		return nil, err
	}

	nodes := style.Nodes(g, sel.Nodes, opts.Style)
	if opts.NodeSize > 0 {
		for i := range nodes {
			nodes[i].Size = opts.NodeSize
		}
	}
	edges := style.Edges(g, sel.Edges, opts.Style)
	dot := ToDOT(nodes, edges, placement, opts.Style)

	return Render(ctx, dot, placement.Engine, format)
}

// Draw renders g like [Image] and writes the result to w.
func Draw(ctx context.Context, w io.Writer, g *graph.Graph, sel style.Selection, opts Options) error {
	data, err := Image(ctx, g, sel, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// DrawPath renders g with every node on path and both orientations of its
// edges highlighted, and all labels shown. Nodes are drawn at [PathNodeSize]
// unless opts.NodeSize is set, so isolated nodes stay visible.
func DrawPath(ctx context.Context, w io.Writer, g *graph.Graph, path []string, opts Options) error {
	if opts.NodeSize == 0 {
		opts.NodeSize = PathNodeSize
	}
	opts.Style.HighlightedShowLabel = true
	opts.Style.RegularShowLabel = true
	return Draw(ctx, w, g, style.ForPath(path), opts)
}
