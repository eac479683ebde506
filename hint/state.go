package hint

import (
	"fmt"
	"strings"
)

// State is the knowledge accumulated over every round of a session. It only
// ever tightens: greens fill in, exclusions and wrong letters grow, bounds
// narrow.
type State struct {
	Knowledge
}

// NewState starts a State from the first round.
func NewState(r *Round) *State {
	return &State{Knowledge: r.clone()}
}

func (s *State) Clone() *State {
	return &State{Knowledge: s.clone()}
}

// Merge commits a round that already passed Check. The state is re-validated
// afterwards; an error means the merged state can no longer be satisfied.
func (s *State) Merge(r *Round) error {
	if r.Length() != s.Length() {
		return invalidf("guess %q has length %d, expected %d", r.Guess, r.Length(), s.Length())
	}

	for i, c := range r.Green {
		if c != 0 && s.Green[i] == 0 {
			s.Green[i] = c
		}
	}
	for c, p := range r.Excluded {
		if cur, ok := s.Excluded[c]; ok {
			cur.Union(p)
		} else {
			s.Excluded[c] = p.Clone()
		}
	}
	s.Wrong = s.Wrong.Or(r.Wrong)
	for c, b := range r.Bounds {
		if cur, ok := s.Bounds[c]; ok {
			s.Bounds[c] = cur.Tighten(b)
		} else {
			s.Bounds[c] = b
		}
	}

	// greens from different rounds can add up past any single round's count
	for c, n := range s.greenCounts() {
		if b := s.Bounds[c]; b.Min < n {
			b.Min = n
			s.Bounds[c] = b
		}
	}

	return s.Validate()
}

// Validate checks the state invariants and that every letter still has a
// placement.
func (s *State) Validate() error {
	for _, c := range s.Wrong.Letters() {
		if _, ok := s.Excluded[c]; ok {
			return invalidf("letter %c is both absent and present", c)
		}
	}
	for i, c := range s.Green {
		if c == 0 {
			continue
		}
		if s.Wrong.Get(c) {
			return invalidf("letter %c is absent but confirmed at position %d", c, i+1)
		}
		if s.Bounds[c].Min < 1 {
			return invalidf("letter %c is confirmed at position %d but not counted", c, i+1)
		}
	}
	for _, c := range sortedLetters(s.Bounds) {
		if b := s.Bounds[c]; b.Min > b.Max {
			return invalidf("letter %c needs at least %d copies but allows at most %d", c, b.Min, b.Max)
		}
	}
	return s.validate()
}

// Template is the word with greens filled in and placeholder elsewhere.
func (s *State) Template(placeholder byte) string {
	b := make([]byte, s.Length())
	for i, c := range s.Green {
		if c == 0 {
			c = placeholder
		}
		b[i] = c
	}
	return string(b)
}

func (s *State) String() string {
	counts := make([]string, 0, len(s.Bounds))
	for _, c := range sortedLetters(s.Bounds) {
		counts = append(counts, fmt.Sprintf("%c:%s", c, s.Bounds[c]))
	}
	return fmt.Sprintf("green=%s wrong=%s bounds=[%s]", s.Template('_'), s.Wrong, strings.Join(counts, " "))
}
