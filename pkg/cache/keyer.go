package cache

import "time"

// FigureKeyOpts holds every render input besides the graph itself.
// Nodes and Edges must be sorted so that equal selections hash equally.
type FigureKeyOpts struct {
	Nodes  []string `json:"nodes,omitempty"`
	Edges  []string `json:"edges,omitempty"`
	Engine string   `json:"engine,omitempty"`
	Format string   `json:"format"`
	// Style is any JSON-encodable value describing the styling options.
	Style any `json:"style"`
}

// Keyer generates cache keys.
type Keyer interface {
	// FigureKey returns the key of a rendered figure.
	FigureKey(graphHash string, opts FigureKeyOpts) string
}

// DefaultKeyer generates keys of the form "figure:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// FigureKey implements Keyer.
func (DefaultKeyer) FigureKey(graphHash string, opts FigureKeyOpts) string {
	return hashKey("figure", graphHash, opts)
}

// TTLFigure is how long rendered figures stay cached.
const TTLFigure = 7 * 24 * time.Hour
