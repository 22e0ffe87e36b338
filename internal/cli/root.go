package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlight/pkg/buildinfo"
	"github.com/matzehuels/graphlight/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, observability hooks are installed that report
// pipeline, cache and server events through the CLI logger.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Graphlight draws graphs with highlighted nodes and edges",
		Long: `Graphlight reads a graph from an adjacency matrix, a node/edge list or a
graph6 string and draws it as an SVG or PNG figure, with chosen nodes and edges
highlighted in their own color, size and width.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
