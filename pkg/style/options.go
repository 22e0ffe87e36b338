package style

import (
	"github.com/matzehuels/graphlight/pkg/errors"
)

// Default styling values.
const (
	DefaultHighlightedColor = "#fcba03"
	DefaultRegularColor     = "#4287f5"

	DefaultHighlightedNodeSize = 500.0
	DefaultRegularNodeSize     = 100.0

	DefaultHighlightedEdgeWidth = 5.0
	DefaultRegularEdgeWidth     = 1.0

	DefaultFigureWidth  = 15.0
	DefaultFigureHeight = 10.0
)

// Options holds every styling knob for one render.
//
// Node sizes are multipliers applied to the node degree and measured as a
// marker area in points². Edge widths are line widths in points. Figure
// dimensions are in inches.
type Options struct {
	HighlightedNodeColor string  `toml:"highlighted_node_color" json:"highlighted_node_color"`
	RegularNodeColor     string  `toml:"regular_node_color" json:"regular_node_color"`
	HighlightedNodeSize  float64 `toml:"highlighted_node_size" json:"highlighted_node_size"`
	RegularNodeSize      float64 `toml:"regular_node_size" json:"regular_node_size"`
	HighlightedShowLabel bool    `toml:"highlighted_show_label" json:"highlighted_show_label"`
	RegularShowLabel     bool    `toml:"regular_show_label" json:"regular_show_label"`

	HighlightedEdgeColor string  `toml:"highlighted_edge_color" json:"highlighted_edge_color"`
	RegularEdgeColor     string  `toml:"regular_edge_color" json:"regular_edge_color"`
	HighlightedEdgeWidth float64 `toml:"highlighted_edge_width" json:"highlighted_edge_width"`
	RegularEdgeWidth     float64 `toml:"regular_edge_width" json:"regular_edge_width"`

	FigureWidth  float64 `toml:"figure_width" json:"figure_width"`
	FigureHeight float64 `toml:"figure_height" json:"figure_height"`
}

// DefaultOptions returns the default styling: amber highlights on blue,
// labels only on highlighted nodes, and a 15 × 10 inch figure.
func DefaultOptions() Options {
	return Options{
		HighlightedNodeColor: DefaultHighlightedColor,
		RegularNodeColor:     DefaultRegularColor,
		HighlightedNodeSize:  DefaultHighlightedNodeSize,
		RegularNodeSize:      DefaultRegularNodeSize,
		HighlightedShowLabel: true,
		RegularShowLabel:     false,
		HighlightedEdgeColor: DefaultHighlightedColor,
		RegularEdgeColor:     DefaultRegularColor,
		HighlightedEdgeWidth: DefaultHighlightedEdgeWidth,
		RegularEdgeWidth:     DefaultRegularEdgeWidth,
		FigureWidth:          DefaultFigureWidth,
		FigureHeight:         DefaultFigureHeight,
	}
}

// Validate checks colors and numeric ranges.
// It returns the first problem found as an INVALID_COLOR or INVALID_INPUT error.
func (o Options) Validate() error {
	colors := []struct{ field, value string }{
		{"highlighted_node_color", o.HighlightedNodeColor},
		{"regular_node_color", o.RegularNodeColor},
		{"highlighted_edge_color", o.HighlightedEdgeColor},
		{"regular_edge_color", o.RegularEdgeColor},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.field, c.value); err != nil {
			return err
		}
	}

	sizes := []struct {
		field string
		value float64
	}{
		{"highlighted_node_size", o.HighlightedNodeSize},
		{"regular_node_size", o.RegularNodeSize},
		{"highlighted_edge_width", o.HighlightedEdgeWidth},
		{"regular_edge_width", o.RegularEdgeWidth},
	}
	for _, s := range sizes {
		if err := errors.ValidateNonNegative(s.field, s.value); err != nil {
			return err
		}
	}

	if err := errors.ValidatePositive("figure_width", o.FigureWidth); err != nil {
		return err
	}
	return errors.ValidatePositive("figure_height", o.FigureHeight)
}

// Normalized returns a copy with hex colors in canonical "#rrggbb" form.
func (o Options) Normalized() Options {
	o.HighlightedNodeColor = errors.NormalizeColor(o.HighlightedNodeColor)
	o.RegularNodeColor = errors.NormalizeColor(o.RegularNodeColor)
	o.HighlightedEdgeColor = errors.NormalizeColor(o.HighlightedEdgeColor)
	o.RegularEdgeColor = errors.NormalizeColor(o.RegularEdgeColor)
	return o
}
