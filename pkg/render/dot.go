package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/style"
)

// pointsPerInch converts marker sizes to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT writes styled nodes and edges as an undirected Graphviz graph.
//
// Node and edge statements follow the slice order, so output is deterministic
// for a given graph. Pinned coordinates are scaled into the figure box given
// by opts. Hex colors are normalised to "#rrggbb", the only hex form Graphviz
// reads.
func ToDOT(nodes []style.NodeStyle, edges []style.EdgeStyle, p Placement, opts style.Options) string {
	var coords map[string]graph.Position
	if p.Pinned() {
		coords = fitToBox(p.Coords, opts.FigureWidth, opts.FigureHeight)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  size=\"%s,%s\";\n", num(opts.FigureWidth), num(opts.FigureHeight))
	buf.WriteString("  outputorder=\"edgesfirst\";\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, penwidth=0, fontsize=12, fontcolor=black];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(nodeAttrs(n, coords), ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", quote(e.Edge.From), quote(e.Edge.To), strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n style.NodeStyle, coords map[string]graph.Position) []string {
	d := markerDiameter(n.Size)
	attrs := []string{
		"label=" + quote(n.Label),
		"fillcolor=" + quote(errors.NormalizeColor(n.Color)),
		"width=" + num(d),
		"height=" + num(d),
	}
	if pos, ok := coords[n.ID]; ok {
		attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", num(pos.X), num(pos.Y)))
	}
	return attrs
}

func edgeAttrs(e style.EdgeStyle) []string {
	return []string{
		"color=" + quote(errors.NormalizeColor(e.Color)),
		"penwidth=" + num(e.Width),
	}
}

// markerDiameter converts a marker area in points² to a diameter in inches.
func markerDiameter(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return math.Sqrt(size) / pointsPerInch
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func num(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
