package hint

// The standard game: five letter words, six tries.
const (
	WordLength = 5
	MaxTries   = 6
)

// HardMode reports whether the round follows hard mode rules given the
// state before it: every green is kept in place and every known letter is
// used at least as often as it is known to occur.
func (s *State) HardMode(r *Round) bool {
	for i, c := range s.Green {
		if c != 0 && r.Green[i] != c {
			return false
		}
	}
	for c, b := range s.Bounds {
		if r.Bounds[c].Min < b.Min {
			return false
		}
	}
	return true
}

// SuperHardMode additionally rejects rounds that reuse a ruled out letter,
// try a letter where it is already known not to be, or use a letter more
// often than it can occur.
func (s *State) SuperHardMode(r *Round) bool {
	if !s.HardMode(r) {
		return false
	}
	if lettersOf(r.Guess).And(s.Wrong) != 0 {
		return false
	}
	for c, p := range r.Excluded {
		if old, ok := s.Excluded[c]; ok && old.Overlaps(p) {
			return false
		}
	}
	for c, b := range s.Bounds {
		if !b.Contains(r.Bounds[c].Min) {
			return false
		}
	}
	return true
}

// IsNormalGame reports whether a game fits the standard word length and try
// limit.
func IsNormalGame(length, tries int) bool {
	return length == WordLength && tries <= MaxTries
}
