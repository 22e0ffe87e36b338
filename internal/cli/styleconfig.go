package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/style"
)

// loadStyleConfig decodes a TOML style file over base. Keys use the
// snake_case option names, e.g.
//
//	highlighted_node_color = "#e63946"
//	regular_node_size = 80
//	figure_width = 12
//
// Unknown keys are rejected so that typos do not pass silently.
func loadStyleConfig(path string, base style.Options) (style.Options, error) {
	opts := base
	md, err := toml.DecodeFile(path, &opts)
	if os.IsNotExist(err) {
		return base, errors.Wrap(errors.ErrCodeFileNotFound, err, "style config %s", path)
	}
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidInput, err, "style config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, errors.New(errors.ErrCodeInvalidInput, "style config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}

// styleFlags maps each style flag to the option it sets.
var styleFlags = map[string]func(dst *style.Options, src style.Options){
	"highlighted-node-color": func(d *style.Options, s style.Options) { d.HighlightedNodeColor = s.HighlightedNodeColor },
	"regular-node-color":     func(d *style.Options, s style.Options) { d.RegularNodeColor = s.RegularNodeColor },
	"highlighted-node-size":  func(d *style.Options, s style.Options) { d.HighlightedNodeSize = s.HighlightedNodeSize },
	"regular-node-size":      func(d *style.Options, s style.Options) { d.RegularNodeSize = s.RegularNodeSize },
	"highlighted-show-label": func(d *style.Options, s style.Options) { d.HighlightedShowLabel = s.HighlightedShowLabel },
	"regular-show-label":     func(d *style.Options, s style.Options) { d.RegularShowLabel = s.RegularShowLabel },
	"highlighted-edge-color": func(d *style.Options, s style.Options) { d.HighlightedEdgeColor = s.HighlightedEdgeColor },
	"regular-edge-color":     func(d *style.Options, s style.Options) { d.RegularEdgeColor = s.RegularEdgeColor },
	"highlighted-edge-width": func(d *style.Options, s style.Options) { d.HighlightedEdgeWidth = s.HighlightedEdgeWidth },
	"regular-edge-width":     func(d *style.Options, s style.Options) { d.RegularEdgeWidth = s.RegularEdgeWidth },
	"width":                  func(d *style.Options, s style.Options) { d.FigureWidth = s.FigureWidth },
	"height":                 func(d *style.Options, s style.Options) { d.FigureHeight = s.FigureHeight },
}

// addStyleFlags registers one flag per style option, bound to opts and
// defaulting to its current values.
func addStyleFlags(fs *pflag.FlagSet, opts *style.Options) {
	fs.StringVar(&opts.HighlightedNodeColor, "highlighted-node-color", opts.HighlightedNodeColor, "fill color of highlighted nodes")
	fs.StringVar(&opts.RegularNodeColor, "regular-node-color", opts.RegularNodeColor, "fill color of regular nodes")
	fs.Float64Var(&opts.HighlightedNodeSize, "highlighted-node-size", opts.HighlightedNodeSize, "size multiplier of highlighted nodes (times degree)")
	fs.Float64Var(&opts.RegularNodeSize, "regular-node-size", opts.RegularNodeSize, "size multiplier of regular nodes (times degree)")
	fs.BoolVar(&opts.HighlightedShowLabel, "highlighted-show-label", opts.HighlightedShowLabel, "label highlighted nodes")
	fs.BoolVar(&opts.RegularShowLabel, "regular-show-label", opts.RegularShowLabel, "label regular nodes")
	fs.StringVar(&opts.HighlightedEdgeColor, "highlighted-edge-color", opts.HighlightedEdgeColor, "color of highlighted edges")
	fs.StringVar(&opts.RegularEdgeColor, "regular-edge-color", opts.RegularEdgeColor, "color of regular edges")
	fs.Float64Var(&opts.HighlightedEdgeWidth, "highlighted-edge-width", opts.HighlightedEdgeWidth, "line width of highlighted edges")
	fs.Float64Var(&opts.RegularEdgeWidth, "regular-edge-width", opts.RegularEdgeWidth, "line width of regular edges")
	fs.Float64Var(&opts.FigureWidth, "width", opts.FigureWidth, "figure width in inches")
	fs.Float64Var(&opts.FigureHeight, "height", opts.FigureHeight, "figure height in inches")
}

// resolveStyle layers the style sources: defaults, then the TOML file at
// configPath (if any), then every style flag set on the command line.
func resolveStyle(fs *pflag.FlagSet, configPath string, fromFlags style.Options) (style.Options, error) {
	opts := style.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = loadStyleConfig(configPath, opts); err != nil {
			return opts, err
		}
	}
	for name, set := range styleFlags {
		if fs.Changed(name) {
			set(&opts, fromFlags)
		}
	}
	return opts, nil
}
