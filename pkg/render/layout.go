package render

import (
	"math"
	"slices"

	"github.com/matzehuels/graphlight/pkg/errors"
	"github.com/matzehuels/graphlight/pkg/graph"
)

// Graphviz layout engines accepted by [Layout].
const (
	EngineCirco = "circo"
	EngineDot   = "dot"
	EngineFdp   = "fdp"
	EngineNeato = "neato"
	EngineSfdp  = "sfdp"
	EngineTwopi = "twopi"
)

// ValidEngines lists the accepted engine names.
var ValidEngines = []string{EngineCirco, EngineDot, EngineFdp, EngineNeato, EngineSfdp, EngineTwopi}

// figureMargin is the blank border, in inches, kept around pinned coordinates.
const figureMargin = 0.5

// degenerateSpan is the coordinate span below which an axis counts as flat.
// Circular layouts leave values like sin(π) ≈ 1e-16 behind.
const degenerateSpan = 1e-9

// Placement decides where nodes go.
//
// When Coords is non-nil every node is pinned to its coordinate (in caller
// units; [ToDOT] scales them into the figure) and Engine is neato. Otherwise
// Engine places the nodes.
type Placement struct {
	Engine string
	Coords map[string]graph.Position
}

// Pinned reports whether node coordinates are fixed.
func (p Placement) Pinned() bool { return p.Coords != nil }

// Layout returns the placement for g.
//
// Fixed positions supplied at build time always win. Otherwise an empty engine
// selects the circular layout and any other value must be one of
// [ValidEngines].
func Layout(g *graph.Graph, engine string) (Placement, error) {
	if g.HasPositions() {
		return Placement{Engine: EngineNeato, Coords: g.Positions()}, nil
	}
	if engine == "" {
		return Placement{Engine: EngineNeato, Coords: Circular(g.Nodes())}, nil
	}
	if !slices.Contains(ValidEngines, engine) {
		return Placement{}, errors.New(errors.ErrCodeInvalidLayout, "unknown layout engine %q (valid: %v)", engine, ValidEngines)
	}
	return Placement{Engine: engine}, nil
}

// Circular places ids evenly on the unit circle in order, starting at angle 0
// and turning counter-clockwise. A single node sits at the origin.
func Circular(ids []string) map[string]graph.Position {
	out := make(map[string]graph.Position, len(ids))
	if len(ids) == 1 {
		out[ids[0]] = graph.Position{}
		return out
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		theta := float64(i) * step
		out[id] = graph.Position{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return out
}

// fitToBox maps coords into a width × height inch box with a fixed margin.
// Each axis is scaled independently; a degenerate axis is centred.
func fitToBox(coords map[string]graph.Position, width, height float64) map[string]graph.Position {
	if len(coords) == 0 {
		return map[string]graph.Position{}
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range coords {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	out := make(map[string]graph.Position, len(coords))
	for id, p := range coords {
		out[id] = graph.Position{
			X: scaleAxis(p.X, minX, maxX, width),
			Y: scaleAxis(p.Y, minY, maxY, height),
		}
	}
	return out
}

func scaleAxis(v, lo, hi, extent float64) float64 {
	margin := math.Min(figureMargin, extent/4)
	if hi-lo < degenerateSpan {
		return extent / 2
	}
	return margin + (v-lo)/(hi-lo)*(extent-2*margin)
}
