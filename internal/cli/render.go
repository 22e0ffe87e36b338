package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/io"
	"github.com/matzehuels/graphlight/pkg/pipeline"
	"github.com/matzehuels/graphlight/pkg/render"
	"github.com/matzehuels/graphlight/pkg/style"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file, "-" for stdout, empty to derive from input
	format      string // svg, png or dot
	layout      string // Graphviz engine; empty means circular
	styleConfig string // TOML file with style options

	highlightNodes []string // node identifiers
	highlightEdges []string // "from-to" pairs
	path           []string // node sequence highlighted as a path
	symmetric      bool     // also highlight the reverse of every --highlight-edges pair

	strict  bool // reject highlights that name absent nodes or edges
	pick    bool // choose highlighted nodes interactively
	noCache bool // skip the figure cache
	refresh bool // re-render even when cached

	style style.Options // bound to the per-option style flags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: string(pipeline.DefaultFormat),
		style:  style.DefaultOptions(),
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph with highlighted nodes and edges",
		Long: `Render a graph document (JSON, YAML or graph6) to an image.

Nodes are sized by degree times the size multiplier of their class, so
isolated nodes are not drawn. Edges match --highlight-edges in the order
written; use --symmetric to match both directions.`,
		Example: `  graphlight render graph.json --highlight-nodes 0,3
  graphlight render graph.yaml --path a,b,c --format png -o path.png
  graphlight render graph.g6 --layout neato --highlight-edges 0-1,1-2 --symmetric`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.Flags(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout; default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, dot")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "Graphviz layout engine: circo, dot, fdp, neato, sfdp, twopi (default: circular)")
	cmd.Flags().StringVar(&opts.styleConfig, "style-config", "", "TOML file with style options")
	cmd.Flags().StringSliceVarP(&opts.highlightNodes, "highlight-nodes", "n", nil, "nodes to highlight (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.highlightEdges, "highlight-edges", "e", nil, "edges to highlight as from-to pairs (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.path, "path", "p", nil, "node sequence to highlight as a path (comma-separated)")
	cmd.Flags().BoolVar(&opts.symmetric, "symmetric", false, "also highlight the reverse of every --highlight-edges pair")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a highlight names a node or edge missing from the graph")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose highlighted nodes interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the figure cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached figure exists")
	addStyleFlags(cmd.Flags(), &opts.style)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		formats := make([]string, len(render.ValidFormats))
		for i, f := range render.ValidFormats {
			formats[i] = string(f)
		}
		return formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return render.ValidEngines, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runRender loads input, resolves the selection and style, and renders the
// figure through the cached pipeline.
func (c *CLI) runRender(ctx context.Context, fs *pflag.FlagSet, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := io.ImportFile(input)
	if err != nil {
		return err
	}

	sel, err := opts.selection()
	if err != nil {
		return err
	}
	if opts.pick {
		g, err := doc.Build()
		if err != nil {
			return err
		}
		// The picker starts from every highlighted node, so its result
		// replaces the node selection; edge highlights are kept.
		sel = doc.Selection().Merge(sel)
		doc.Highlight = nil
		picked, ok, err := pickNodes(g, sel.Nodes)
		if err != nil {
			return err
		}
		if !ok {
			printDetail("No selection made")
			return nil
		}
		sel.Nodes = picked
	}

	styleOpts, err := resolveStyle(fs, opts.styleConfig, opts.style)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()
	res, err := runner.Execute(ctx, pipeline.Request{
		Document:  doc,
		Selection: sel,
		Options: pipeline.Options{
			Style:   styleOpts,
			Engine:  opts.layout,
			Format:  opts.format,
			Strict:  opts.strict,
			Refresh: opts.refresh,
			Logger:  logger,
		},
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	if opts.output == stdoutPath {
		_, err := os.Stdout.Write(res.Image)
		return err
	}

	out := opts.output
	if out == "" {
		out = outputPath(input, opts.format)
	}
	if err := os.WriteFile(out, res.Image, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done("Rendered " + out)
	printStats(res)
	printFile(out)
	return nil
}

// selection builds the highlight selection from the command-line flags.
func (o *renderOpts) selection() (style.Selection, error) {
	edges, err := parseEdges(o.highlightEdges)
	if err != nil {
		return style.Selection{}, err
	}
	sel := style.Selection{
		Nodes: style.NewNodeSet(o.highlightNodes...),
		Edges: style.NewEdgeSet(edges...),
	}
	if o.symmetric {
		sel.Edges = style.Symmetric(sel.Edges)
	}
	if len(o.path) > 0 {
		sel = sel.Merge(style.ForPath(o.path))
	}
	return sel, nil
}

// parseEdges parses "from-to" pairs. The split is at the first '-', so the
// source identifier cannot contain one.
func parseEdges(pairs []string) ([]graph.Edge, error) {
	edges := make([]graph.Edge, 0, len(pairs))
	for _, p := range pairs {
		from, to, ok := strings.Cut(p, "-")
		if !ok || from == "" || to == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid edge %q (want from-to)", p)
		}
		edges = append(edges, graph.Edge{From: from, To: to})
	}
	return edges, nil
}

// outputPath derives the output file from the input file and format,
// e.g. "graphs/k5.yaml" becomes "graphs/k5.svg".
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
