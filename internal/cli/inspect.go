package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/io"
	"github.com/matzehuels/graphlight/pkg/style"
)

// inspectOpts holds the flags of the inspect command.
type inspectOpts struct {
	renderOpts
	showEdges bool
	export    string
}

// inspectCommand creates the inspect command, which prints the computed
// node and edge styles without rendering.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{renderOpts: renderOpts{style: style.DefaultOptions()}}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the styles each node and edge would get",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := io.ImportFile(args[0])
			if err != nil {
				return err
			}
			g, err := doc.Build()
			if err != nil {
				return err
			}
			sel, err := opts.selection()
			if err != nil {
				return err
			}
			sel = doc.Selection().Merge(sel)
			if opts.strict {
				if err := sel.Validate(g); err != nil {
					return err
				}
			}
			styleOpts, err := resolveStyle(cmd.Flags(), opts.styleConfig, opts.style)
			if err != nil {
				return err
			}
			if err := styleOpts.Validate(); err != nil {
				return err
			}

			printGraphSummary(g, doc.Kind())
			printNewline()
			fmt.Println(nodeTable(style.Nodes(g, sel.Nodes, styleOpts)))
			if opts.showEdges {
				fmt.Println(edgeTable(style.Edges(g, sel.Edges, styleOpts)))
			}

			if opts.export != "" {
				if err := io.ExportJSON(g, opts.export); err != nil {
					return err
				}
				printNewline()
				printSuccess("Exported graph")
				printFile(opts.export)
			}
			printNewline()
			printNextStep("Render it", fmt.Sprintf("%s render %s", appName, args[0]))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.highlightNodes, "highlight-nodes", "n", nil, "nodes to highlight (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.highlightEdges, "highlight-edges", "e", nil, "edges to highlight as from-to pairs (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.path, "path", "p", nil, "node sequence to highlight as a path (comma-separated)")
	cmd.Flags().BoolVar(&opts.symmetric, "symmetric", false, "also highlight the reverse of every --highlight-edges pair")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a highlight names a node or edge missing from the graph")
	cmd.Flags().StringVar(&opts.styleConfig, "style-config", "", "TOML file with style options")
	cmd.Flags().BoolVar(&opts.showEdges, "edges", false, "also list edge styles")
	cmd.Flags().StringVar(&opts.export, "export", "", "write the graph as a JSON document to this file")
	addStyleFlags(cmd.Flags(), &opts.style)

	return cmd
}

func printGraphSummary(g *graph.Graph, kind string) {
	printKeyValue("Source", kind)
	printKeyValue("Nodes", strconv.Itoa(g.NodeCount()))
	printKeyValue("Edges", strconv.Itoa(g.EdgeCount()))
	placement := "computed"
	if g.HasPositions() {
		placement = "fixed"
	}
	printKeyValue("Positions", placement)
	if g.NodeCount() > 0 {
		printKeyValue("graph6", g.Graph6())
	}
}

func nodeTable(nodes []style.NodeStyle) string {
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = []string{
			n.ID,
			colorSwatch(n.Color),
			strconv.FormatFloat(n.Size, 'f', -1, 64),
			n.Label,
			yesNo(n.Highlighted),
		}
	}
	return styledTable([]string{"Node", "Color", "Size", "Label", "Highlighted"}, rows, func(row int) bool {
		return nodes[row].Highlighted
	})
}

func edgeTable(edges []style.EdgeStyle) string {
	rows := make([][]string, len(edges))
	for i, e := range edges {
		rows[i] = []string{
			e.Edge.From + " -- " + e.Edge.To,
			colorSwatch(e.Color),
			strconv.FormatFloat(e.Width, 'f', -1, 64),
			yesNo(e.Highlighted),
		}
	}
	return styledTable([]string{"Edge", "Color", "Width", "Highlighted"}, rows, func(row int) bool {
		return edges[row].Highlighted
	})
}

func styledTable(headers []string, rows [][]string, highlighted func(row int) bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case highlighted(row):
				return base.Foreground(colorAmber).Bold(true)
			default:
				return base.Foreground(colorMuted)
			}
		}).
		Render()
}

// colorSwatch renders a block in color c followed by its value.
func colorSwatch(c string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██") + " " + c
}

func yesNo(b bool) string {
	if b {
		return StyleHighlighted.Render(iconSuccess)
	}
	return ""
}
