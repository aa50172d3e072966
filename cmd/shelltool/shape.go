package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Faultbox/shellview/internal/surface"
)

// applySets applies "field=value" overrides to p. Values are not clamped
// to the interactive ranges; Validate still applies. Segment counts must
// fit in an int32.
func applySets(p surface.ShapeParameters, sets []string) (surface.ShapeParameters, error) {
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		if !ok {
			return p, fmt.Errorf("--set %q: expected field=value", s)
		}
		f, err := surface.ParseField(name)
		if err != nil {
			return p, fmt.Errorf("--set %q: %w", s, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return p, fmt.Errorf("--set %q: %w", s, err)
		}
		if f.IsCount() && !(v >= 2 && v <= math.MaxInt32) {
			return p, fmt.Errorf("--set %q: segment count must be in [2, %d]", s, math.MaxInt32)
		}
		p = p.Set(f, v)
	}
	return p, nil
}
