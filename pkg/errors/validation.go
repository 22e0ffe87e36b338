package errors

import (
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorNameRegex matches Graphviz color scheme names such as "red" or "grey40".
var colorNameRegex = regexp.MustCompile(`^[a-zA-Z]+[0-9]*$`)

// ValidateColor checks that c is a hex color ("#fcba03", "#fff") or a plain
// color name. Hex values are parsed; names are passed through to the renderer.
func ValidateColor(field, c string) error {
	if c == "" {
		return New(ErrCodeInvalidColor, "%s cannot be empty", field)
	}
	if strings.HasPrefix(c, "#") {
		if _, err := colorful.Hex(c); err != nil {
			return Wrap(ErrCodeInvalidColor, err, "%s: invalid hex color %q", field, c)
		}
		return nil
	}
	if !colorNameRegex.MatchString(c) {
		return New(ErrCodeInvalidColor, "%s: invalid color %q", field, c)
	}
	return nil
}

// NormalizeColor returns hex colors in canonical lowercase "#rrggbb" form.
// Names and unparseable values are returned unchanged.
func NormalizeColor(c string) string {
	if !strings.HasPrefix(c, "#") {
		return c
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return c
	}
	return col.Hex()
}

// ValidateNonNegative checks that v is a finite number >= 0.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidInput, "%s must be a non-negative number, got %v", field, v)
	}
	return nil
}

// ValidatePositive checks that v is a finite number > 0.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be a positive number, got %v", field, v)
	}
	return nil
}
