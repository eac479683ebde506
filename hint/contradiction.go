package hint

import "fmt"

// Check compares a new round against the accumulated state without changing
// either. Every conflict found is reported in one ContradictionError.
func (s *State) Check(r *Round) error {
	if r.Length() != s.Length() {
		return invalidf("guess %q has length %d, expected %d", r.Guess, r.Length(), s.Length())
	}

	var conflicts []Conflict
	add := func(c byte, pos int, format string, args ...any) {
		conflicts = append(conflicts, Conflict{Letter: c, Position: pos, Reason: fmt.Sprintf(format, args...)})
	}

	for i := range s.Green {
		old, cur := s.Green[i], r.Green[i]
		if old != 0 {
			if p, ok := r.Excluded[old]; ok && p.Has(i) {
				add(old, i, "confirmed here earlier but now reported as not here")
			}
		}
		if cur != 0 {
			if p, ok := s.Excluded[cur]; ok && p.Has(i) {
				add(cur, i, "ruled out here earlier but now confirmed here")
			}
		}
		if old != 0 && cur != 0 && old != cur {
			add(cur, i, "confirmed here but %c was confirmed here earlier", old)
		}
	}

	present := r.Present()
	for _, c := range s.Wrong.And(present).Letters() {
		add(c, -1, "ruled out earlier but now reported in the word")
	}
	for _, c := range r.Wrong.And(s.Present()).Letters() {
		add(c, -1, "reported in the word earlier but now ruled out")
	}

	for _, c := range sortedLetters(r.Bounds) {
		cur := r.Bounds[c]
		old, ok := s.Bounds[c]
		if ok && !old.Intersects(cur) {
			add(c, -1, "occurs %s now but %s earlier", cur, old)
		}
	}

	if len(conflicts) > 0 {
		return &ContradictionError{Conflicts: conflicts}
	}
	return nil
}
