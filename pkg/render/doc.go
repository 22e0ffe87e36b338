// Package render draws a styled graph as a single static image using Graphviz.
//
// # Overview
//
// Rendering is a three step pipeline. Node placement is decided first, the
// styled graph is then written as DOT source, and Graphviz turns the DOT into
// an image:
//
//	Graph + Selection → style.Nodes / style.Edges → ToDOT → Render → SVG/PNG
//
// [Draw] runs the whole pipeline and writes the image to an [io.Writer], the
// display surface of the caller (a file, stdout, an HTTP response):
//
//	err := render.Draw(ctx, os.Stdout, g, sel, render.Options{
//	    Style:  style.DefaultOptions(),
//	    Format: render.FormatSVG,
//	})
//
// # Placement
//
// [Layout] picks one of three placements:
//
//   - Graphs built with fixed positions keep them.
//   - Without positions and without an engine, nodes sit evenly spaced on a
//     circle in iteration order, the first node at angle 0.
//   - An explicit engine (circo, dot, fdp, neato, sfdp, twopi) lets Graphviz
//     place the nodes.
//
// Fixed and circular coordinates are scaled into the figure box, each axis
// independently, and pinned with pos="x,y!" so that neato keeps them.
//
// # Node and Edge Attributes
//
// Node size is a marker area in points², so a node is drawn as a fixed-size
// circle of diameter sqrt(size)/72 inches. Hidden labels are written as an
// empty label so Graphviz does not fall back to the node name. Edges carry
// their color and a penwidth equal to the styled width.
//
// # Formats
//
// [FormatSVG] and [FormatPNG] are rendered in process by
// [github.com/goccy/go-graphviz]. [FormatDOT] skips Graphviz and returns the
// DOT source, which is useful for debugging or external tooling.
package render
