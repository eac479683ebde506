// Package hint accumulates wordle guess results into positional and count
// constraints on the secret word, and enumerates the word patterns that are
// still consistent with them.
package hint

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Result symbols, one per guessed letter.
const (
	Green  = 'G' // right letter, right position
	Yellow = 'Y' // in the word, somewhere else
	Wrong  = 'W' // not in the word, or no more copies of it
)

// Knowledge is what is known about the secret word. A Round holds what a
// single guess proves, a State what all guesses so far prove together.
type Knowledge struct {
	// confirmed letter per position, 0 if unknown
	Green []byte

	// letters known to be in the word but not at these positions
	Excluded map[byte]*Positions

	// letters known to be absent from the word
	Wrong LetterSet

	// occurrence range for every letter known to be in the word
	Bounds map[byte]Bounds
}

// Round is the knowledge extracted from one guess and its result.
type Round struct {
	Guess string
	Knowledge
}

// Extract turns one guess and its G/Y/W result into a Round.
func Extract(guess, result string) (*Round, error) {
	guess = strings.ToUpper(guess)
	result = strings.ToUpper(result)

	n := len(guess)
	if n == 0 {
		return nil, invalidf("empty guess")
	}
	if n != len(result) {
		return nil, invalidf("guess %q and result %q have different lengths", guess, result)
	}
	for i := 0; i < n; i++ {
		if !isLetter(guess[i]) {
			return nil, invalidf("guess %q has non-letter %q at position %d", guess, guess[i], i+1)
		}
		switch result[i] {
		case Green, Yellow, Wrong:
		default:
			return nil, invalidf("result %q has unknown symbol %q at position %d", result, result[i], i+1)
		}
	}

	r := &Round{
		Guess: guess,
		Knowledge: Knowledge{
			Green:    make([]byte, n),
			Excluded: make(map[byte]*Positions),
			Bounds:   make(map[byte]Bounds),
		},
	}

	// greens and yellows first: a wrong letter can only be classified once
	// every other copy of it in the guess has been seen
	for i := 0; i < n; i++ {
		switch result[i] {
		case Green:
			r.Green[i] = guess[i]
		case Yellow:
			r.exclude(guess[i], i)
		}
	}

	for i := 0; i < n; i++ {
		if result[i] != Wrong {
			continue
		}
		c := guess[i]
		if _, ok := r.Excluded[c]; ok || slices.Contains(r.Green, c) {
			// another copy was green or yellow: the word has no more of
			// this letter, and in particular not here
			r.exclude(c, i)
		} else {
			r.Wrong.Set(c)
		}
	}

	hits := make(map[byte]int)
	total := 0
	var capped LetterSet
	for i := 0; i < n; i++ {
		if result[i] == Wrong {
			capped.Set(guess[i])
			continue
		}
		hits[guess[i]]++
		total++
	}
	for c, k := range hits {
		b := Bounds{Min: k, Max: n - (total - k)}
		if capped.Get(c) {
			b.Max = k
		}
		r.Bounds[c] = b
	}

	return r, nil
}

// Validate checks the round can be satisfied on its own.
func (r *Round) Validate() error {
	return r.validate()
}

func (k *Knowledge) exclude(c byte, i int) {
	p, ok := k.Excluded[c]
	if !ok {
		p = NewPositions()
		k.Excluded[c] = p
	}
	p.Add(i)
}

// Length is the word length.
func (k *Knowledge) Length() int {
	return len(k.Green)
}

// Present is the set of letters known to be in the word.
func (k *Knowledge) Present() LetterSet {
	var s LetterSet
	for _, c := range k.Green {
		if c != 0 {
			s.Set(c)
		}
	}
	for c := range k.Excluded {
		s.Set(c)
	}
	return s
}

func (k *Knowledge) greenCounts() map[byte]int {
	counts := make(map[byte]int)
	for _, c := range k.Green {
		if c != 0 {
			counts[c]++
		}
	}
	return counts
}

func (k *Knowledge) clone() Knowledge {
	ret := Knowledge{
		Green:    slices.Clone(k.Green),
		Excluded: make(map[byte]*Positions, len(k.Excluded)),
		Wrong:    k.Wrong,
		Bounds:   make(map[byte]Bounds, len(k.Bounds)),
	}
	for c, p := range k.Excluded {
		ret.Excluded[c] = p.Clone()
	}
	for c, b := range k.Bounds {
		ret.Bounds[c] = b
	}
	return ret
}

func (k *Knowledge) validate() error {
	sum := 0
	for _, b := range k.Bounds {
		sum += b.Min
	}
	if sum > k.Length() {
		return invalidf("%d letters confirmed but the word only has %d", sum, k.Length())
	}
	_, err := k.Combinations()
	return err
}
