package hint

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed round input, or a record or state from
// which no valid placement can be derived.
type ValidationError struct {
	Round  int // 1-based round number, 0 when not tied to a round
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Round > 0 {
		return fmt.Sprintf("round %d: invalid hint: %s", e.Round, e.Reason)
	}
	return "invalid hint: " + e.Reason
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Conflict is one piece of contradicting evidence.
type Conflict struct {
	Letter   byte
	Position int // -1 when the conflict is not about a position
	Reason   string
}

func (c Conflict) String() string {
	if c.Position >= 0 {
		return fmt.Sprintf("%c at position %d: %s", c.Letter, c.Position+1, c.Reason)
	}
	return fmt.Sprintf("%c: %s", c.Letter, c.Reason)
}

// ContradictionError reports that a round conflicts with evidence already
// accumulated for the same secret word.
type ContradictionError struct {
	Round     int
	Conflicts []Conflict
}

func (e *ContradictionError) Error() string {
	var b strings.Builder
	if e.Round > 0 {
		fmt.Fprintf(&b, "round %d: ", e.Round)
	}
	b.WriteString("contradicting hint: ")
	b.WriteString(e.Conflicts[0].String())
	if n := len(e.Conflicts) - 1; n > 0 {
		fmt.Fprintf(&b, " (and %d more)", n)
	}
	return b.String()
}
