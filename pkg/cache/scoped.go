package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several users of one
// shared backend get separate key spaces.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "graphlight:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// FigureKey generates a prefixed figure key.
func (k *ScopedKeyer) FigureKey(graphHash string, opts FigureKeyOpts) string {
	return k.prefix + k.inner.FigureKey(graphHash, opts)
}
