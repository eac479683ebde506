package hint

import (
	"errors"
	"iter"
	"log/slog"
)

// Attempt is one guess and the result it got.
type Attempt struct {
	Guess  string `json:"guess"`
	Result string `json:"result"`
}

// Summary is the extra information derived alongside the patterns.
type Summary struct {
	LettersForUnknownGuess  []string `json:"letters_for_unknown_guess"`
	HardModeCompatible      bool     `json:"is_hard_mode_compatible"`
	SuperHardModeCompatible bool     `json:"is_super_hard_mode_compatible"`
	NormalWordleGame        bool     `json:"is_normal_wordle_game"`
}

// Session feeds rounds one at a time into a State. A Session is not safe for
// concurrent use; run independent sessions instead.
type Session struct {
	placeholder byte
	logger      *slog.Logger

	state     *State
	rounds    int
	hard      bool
	superHard bool
}

type Option func(*Session)

// WithPlaceholder sets the symbol for unknown positions in patterns.
func WithPlaceholder(c byte) Option {
	return func(s *Session) {
		s.placeholder = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		placeholder: DefaultPlaceholder,
		logger:      slog.New(slog.DiscardHandler),
		hard:        true,
		superHard:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add processes one round: extract, validate, check against the previous
// rounds, evaluate the hard mode rules, merge. On error the session is left
// as it was before the call.
func (s *Session) Add(guess, result string) error {
	n := s.rounds + 1

	r, err := Extract(guess, result)
	if err != nil {
		return atRound(err, n)
	}
	if err := r.Validate(); err != nil {
		return atRound(err, n)
	}

	hard, superHard := true, true
	var next *State
	if s.state == nil {
		next = NewState(r)
		if err := next.Validate(); err != nil {
			return atRound(err, n)
		}
	} else {
		if err := s.state.Check(r); err != nil {
			return atRound(err, n)
		}
		hard = s.state.HardMode(r)
		superHard = hard && s.state.SuperHardMode(r)

		next = s.state.Clone()
		if err := next.Merge(r); err != nil {
			return atRound(err, n)
		}
	}

	s.state = next
	s.rounds = n
	s.hard = s.hard && hard
	s.superHard = s.superHard && superHard

	s.logger.Debug("merged round",
		"round", n,
		"guess", r.Guess,
		"result", result,
		"hard_mode", hard,
		"super_hard_mode", superHard,
		"state", s.state.String())
	return nil
}

// State returns the accumulated state, nil before the first round.
func (s *Session) State() *State {
	return s.state
}

func (s *Session) Rounds() int {
	return s.rounds
}

func (s *Session) Placeholder() byte {
	return s.placeholder
}

// Patterns enumerates the candidate patterns for the rounds added so far.
func (s *Session) Patterns() (iter.Seq[string], error) {
	if isLetter(s.placeholder) || s.placeholder == 0 {
		return nil, invalidf("placeholder %q must not be a letter", s.placeholder)
	}
	if s.state == nil {
		return nil, invalidf("no rounds")
	}
	return s.state.Patterns(s.placeholder)
}

func (s *Session) Summary() Summary {
	var letters []byte
	length := 0
	if s.state != nil {
		letters = s.state.BlindLetters()
		length = s.state.Length()
	} else {
		letters = []byte(alphabet)
	}

	sum := Summary{
		LettersForUnknownGuess:  make([]string, len(letters)),
		HardModeCompatible:      s.hard,
		SuperHardModeCompatible: s.superHard,
		NormalWordleGame:        IsNormalGame(length, s.rounds),
	}
	for i, c := range letters {
		sum.LettersForUnknownGuess[i] = string(c)
	}
	return sum
}

// ProcessAll runs every attempt through a new session and returns the
// candidate patterns with the summary. Nothing is returned if any attempt
// fails.
func ProcessAll(attempts []Attempt, opts ...Option) (iter.Seq[string], Summary, error) {
	if len(attempts) == 0 {
		return nil, Summary{}, invalidf("no attempts")
	}

	s := NewSession(opts...)
	for _, a := range attempts {
		if err := s.Add(a.Guess, a.Result); err != nil {
			return nil, Summary{}, err
		}
	}

	patterns, err := s.Patterns()
	if err != nil {
		return nil, Summary{}, err
	}
	return patterns, s.Summary(), nil
}

func atRound(err error, n int) error {
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Round == 0 {
		verr.Round = n
	}
	var cerr *ContradictionError
	if errors.As(err, &cerr) && cerr.Round == 0 {
		cerr.Round = n
	}
	return err
}
