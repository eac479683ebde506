package hint

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rupeeAttempts = []Attempt{
		{"PRIDE", "YYWWG"},
		{"SPARE", "WYWYG"},
		{"CREPE", "WYYYG"},
	}
	robinAttempts = []Attempt{
		{"PRIDE", "WYYWW"},
		{"MIRTH", "WYYWW"},
		{"FLAIR", "WWWGY"},
	}
	flairAttempts = []Attempt{
		{"PRIDE", "WYYWW"},
		{"BIRTH", "WYYWW"},
		{"INFRA", "YWYYY"},
	}
	sillyCrossAttempts = []Attempt{
		{"CROSS", "YWGYW"},
		{"CROSS", "YWGYW"},
	}
)

func collect(t *testing.T, attempts []Attempt, opts ...Option) ([]string, Summary) {
	t.Helper()
	patterns, summary, err := ProcessAll(attempts, opts...)
	require.NoError(t, err)
	return slices.Collect(patterns), summary
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		name     string
		attempts []Attempt
		want     []string
	}{
		{
			name:     "rupee",
			attempts: rupeeAttempts,
			want:     []string{"REP*E", "R*PEE"},
		},
		{
			name:     "flair",
			attempts: flairAttempts,
			want: []string{
				"RFAI*", "RA*IF", "R*AIF", "RFA*I", "RF*AI", "RA*FI",
				"R*AFI", "FA*IR", "F*AIR", "AF*IR", "*FAIR",
			},
		},
		{
			name:     "flair with a green",
			attempts: append(slices.Clone(flairAttempts), Attempt{"FAIRY", "GYYYW"}),
			want:     []string{"F*AIR"},
		},
		{
			name: "gamer",
			attempts: []Attempt{
				{"PRIDE", "WYWWY"},
				{"MUTER", "YWWGG"},
				{"AMBER", "YYWGG"},
			},
			want: []string{"*AMER"},
		},
		{
			name: "answer guessed before the last round",
			attempts: []Attempt{
				{"PRIDE", "YYWWG"},
				{"SPARE", "WYWYG"},
				{"RUPEE", "GGGGG"},
				{"CREPE", "WYYYG"},
			},
			want: []string{"RUPEE"},
		},
		{
			name: "scold",
			attempts: []Attempt{
				{"CROSS", "YWGYW"},
				{"STOIC", "GWGWY"},
				{"SHOCK", "GWGYW"},
			},
			want: []string{"SCO**"},
		},
		{
			name:     "nothing known",
			attempts: []Attempt{{"QUICK", "WWWWW"}},
			want:     []string{"*****"},
		},
		{
			name:     "single letter",
			attempts: []Attempt{{"A", "W"}},
			want:     []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := collect(t, tt.attempts, WithPlaceholder('*'))
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDefaultPlaceholder(t *testing.T) {
	got, _ := collect(t, rupeeAttempts)
	assert.ElementsMatch(t, []string{"REP?E", "R?PEE"}, got)
}

func TestPatternsRestartable(t *testing.T) {
	patterns, _, err := ProcessAll(flairAttempts)
	require.NoError(t, err)

	first := slices.Collect(patterns)
	second := slices.Collect(patterns)
	assert.Equal(t, first, second)

	n := 0
	for range patterns {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name      string
		attempts  []Attempt
		hard      bool
		superHard bool
		normal    bool
	}{
		{"rupee", rupeeAttempts, true, false, true},
		{"robin", robinAttempts, true, true, true},
		{"flair with a green", append(slices.Clone(flairAttempts), Attempt{"FAIRY", "GYYYW"}), true, false, true},
		{"repeated round", sillyCrossAttempts, true, false, true},
		{"three crosses", append(slices.Clone(sillyCrossAttempts), Attempt{"CHOSS", "YWGYW"}), true, false, true},
		{"letters dropped", []Attempt{{"PRIDE", "WYYWW"}, {"NYMPH", "YWWWW"}}, false, false, true},
		{"six letters", []Attempt{{"WORDLE", "WYWWYW"}}, true, true, false},
		{"single round", []Attempt{{"CROSS", "YWGYW"}}, true, true, true},
		{
			"seven rounds",
			[]Attempt{
				{"QUICK", "WWWWW"}, {"QUICK", "WWWWW"}, {"QUICK", "WWWWW"}, {"QUICK", "WWWWW"},
				{"QUICK", "WWWWW"}, {"QUICK", "WWWWW"}, {"QUICK", "WWWWW"},
			},
			true, false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, summary := collect(t, tt.attempts)
			assert.Equal(t, tt.hard, summary.HardModeCompatible, "hard mode")
			assert.Equal(t, tt.superHard, summary.SuperHardModeCompatible, "super hard mode")
			assert.Equal(t, tt.normal, summary.NormalWordleGame, "normal game")
		})
	}
}

func TestBlindLetters(t *testing.T) {
	_, summary := collect(t, sillyCrossAttempts)

	assert.NotContains(t, summary.LettersForUnknownGuess, "S")
	assert.NotContains(t, summary.LettersForUnknownGuess, "R")
	assert.Contains(t, summary.LettersForUnknownGuess, "C")
	assert.Contains(t, summary.LettersForUnknownGuess, "O")
	assert.Len(t, summary.LettersForUnknownGuess, 24)
	assert.True(t, slices.IsSorted(summary.LettersForUnknownGuess))
}

func TestProcessAllErrors(t *testing.T) {
	tests := []struct {
		name          string
		attempts      []Attempt
		contradiction bool
	}{
		{"no attempts", nil, false},
		{"bad symbol", []Attempt{{"CRANE", "GGGGX"}}, false},
		{"mixed lengths", []Attempt{{"CRANE", "WWWWW"}, {"CRANES", "WWWWWW"}}, false},
		{"green then yellow", []Attempt{{"ABCDE", "GWWWW"}, {"AFGHI", "YWWWW"}}, true},
		{"absent then present", []Attempt{{"PRIDE", "WWWWW"}, {"CRANE", "WYWWW"}}, true},
		{"green twice but counted once", []Attempt{{"AAZZZ", "GWWWW"}, {"QRSTA", "WWWWG"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, _, err := ProcessAll(tt.attempts)
			require.Error(t, err)
			assert.Nil(t, patterns)

			var cerr *ContradictionError
			var verr *ValidationError
			if tt.contradiction {
				assert.True(t, errors.As(err, &cerr), "got %v", err)
			} else {
				assert.True(t, errors.As(err, &verr), "got %v", err)
			}
		})
	}
}

func TestSessionAddReportsRound(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Add("ABCDE", "GWWWW"))

	err := s.Add("AFGHI", "YWWWW")
	var cerr *ContradictionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 2, cerr.Round)
	assert.Contains(t, err.Error(), "round 2")

	// the failed round left the session as it was
	assert.Equal(t, 1, s.Rounds())
	assert.Equal(t, "A????", s.State().Template('?'))
}

func TestSessionRejectsLetterPlaceholder(t *testing.T) {
	s := NewSession(WithPlaceholder('X'))
	require.NoError(t, s.Add("CRANE", "WWWWW"))

	_, err := s.Patterns()
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestEmptySessionSummary(t *testing.T) {
	s := NewSession()
	summary := s.Summary()
	assert.Len(t, summary.LettersForUnknownGuess, 26)
	assert.True(t, summary.HardModeCompatible)
	assert.False(t, summary.NormalWordleGame)

	_, err := s.Patterns()
	assert.Error(t, err)
}

// Grading random guesses against a random secret must never produce a
// contradiction, and the secret must fit one of the resulting patterns.
func TestRandomGamesAreSound(t *testing.T) {
	rng := rand.New(rand.NewPCG(20220619, 5))
	const letters = "ABCDE"

	word := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = letters[rng.IntN(len(letters))]
		}
		return string(b)
	}

	for game := 0; game < 500; game++ {
		length := 1 + rng.IntN(6)
		secret := word(length)

		s := NewSession()
		rounds := 1 + rng.IntN(6)
		for i := 0; i < rounds; i++ {
			guess := word(length)
			result, err := Grade(guess, secret)
			require.NoError(t, err)
			require.NoError(t, s.Add(guess, result), "secret %s guess %s result %s", secret, guess, result)
		}

		patterns, err := s.Patterns()
		require.NoError(t, err)

		seen := make(map[string]bool)
		matched := false
		for p := range patterns {
			assert.False(t, seen[p], "duplicate pattern %s", p)
			seen[p] = true
			if Matches(p, secret, s.Placeholder()) {
				matched = true
			}
		}
		assert.True(t, matched, "secret %s fits none of %v", secret, seen)

		for _, c := range s.Summary().LettersForUnknownGuess {
			assert.False(t, s.State().Wrong.Get(c[0]))
		}
	}
}
