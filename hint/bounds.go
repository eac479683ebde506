package hint

import "fmt"

// Bounds is the inclusive range of how many times a letter occurs in the
// secret word. Min <= Max always holds for a merged state.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Exact reports whether the occurrence count is fully known.
func (b Bounds) Exact() bool {
	return b.Min == b.Max
}

func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

func (b Bounds) Intersects(o Bounds) bool {
	return b.Min <= o.Max && o.Min <= b.Max
}

// Tighten returns the intersection of both ranges. The result may be empty
// (Min > Max) and is left for the caller to reject.
func (b Bounds) Tighten(o Bounds) Bounds {
	return Bounds{Min: max(b.Min, o.Min), Max: min(b.Max, o.Max)}
}

func (b Bounds) String() string {
	if b.Exact() {
		return fmt.Sprintf("exactly %d", b.Min)
	}
	return fmt.Sprintf("%d..%d", b.Min, b.Max)
}
