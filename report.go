package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

// LetterInfo is what is known about one letter of the secret word.
type LetterInfo struct {
	Letter            string `json:"letter"`
	MustBeInPositions []int  `json:"must_be_in_positions"`
	CantBeInPositions []int  `json:"cant_be_in_positions"`
	MinCount          int    `json:"min_count"`
	MaxCount          int    `json:"max_count"`
	CountIsExact      bool   `json:"count_is_exact"`
}

func (l LetterInfo) Canonical() string {
	return fmt.Sprintf("%s must:%v,cant:%v,count:%d..%d",
		l.Letter, l.MustBeInPositions, l.CantBeInPositions, l.MinCount, l.MaxCount)
}

func (l LetterInfo) IsValid() bool {
	if l.MaxCount == 0 {
		return len(l.MustBeInPositions) == 0 && l.CountIsExact
	}

	if l.MinCount > l.MaxCount || len(l.MustBeInPositions) > l.MaxCount {
		return false
	}

	for _, mustPos := range l.MustBeInPositions {
		if slices.Contains(l.CantBeInPositions, mustPos) {
			return false
		}
	}

	return true
}

func (l LetterInfo) InTarget() bool {
	return l.MinCount > 0
}

func (l LetterInfo) CouldBeInPosition(pos int) bool {
	return l.MaxCount > 0 && !slices.Contains(l.CantBeInPositions, pos)
}

func (l LetterInfo) PossiblePositions(length int) []int {
	possible := []int{}
	for pos := 0; pos < length; pos++ {
		if l.CouldBeInPosition(pos) {
			possible = append(possible, pos)
		}
	}
	return possible
}

// letterInfos lists every letter the state says anything about, present
// letters first.
func letterInfos(s *hint.State) []LetterInfo {
	var present, absent []LetterInfo

	for _, c := range SortedKeys(s.Bounds) {
		b := s.Bounds[c]
		info := LetterInfo{
			Letter:            string(c),
			MustBeInPositions: []int{},
			CantBeInPositions: []int{},
			MinCount:          b.Min,
			MaxCount:          b.Max,
			CountIsExact:      b.Exact(),
		}
		excluded := s.Excluded[c]
		for i, g := range s.Green {
			switch {
			case g == c:
				info.MustBeInPositions = append(info.MustBeInPositions, i)
			case g != 0 || (excluded != nil && excluded.Has(i)):
				// taken by another letter, or ruled out
				info.CantBeInPositions = append(info.CantBeInPositions, i)
			}
		}
		present = append(present, info)
	}

	for _, c := range s.Wrong.Letters() {
		cant := make([]int, s.Length())
		for i := range cant {
			cant[i] = i
		}
		absent = append(absent, LetterInfo{
			Letter:            string(c),
			MustBeInPositions: []int{},
			CantBeInPositions: cant,
			CountIsExact:      true,
		})
	}

	return append(present, absent...)
}

type Report struct {
	Attempts []hint.Attempt `json:"attempts"`
	Patterns []string       `json:"patterns"`
	Summary  hint.Summary   `json:"summary"`
	Letters  []LetterInfo   `json:"letters"`
	Metadata map[string]any `json:"metadata"`
}

func buildReport(attempts []hint.Attempt, s *hint.Session) (Report, error) {
	patterns, err := s.Patterns()
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Attempts: attempts,
		Patterns: slices.Collect(patterns),
		Summary:  s.Summary(),
		Letters:  letterInfos(s.State()),
		Metadata: map[string]any{
			"word_length": s.State().Length(),
			"rounds":      s.Rounds(),
			"placeholder": string(s.Placeholder()),
		},
	}
	if r.Patterns == nil {
		r.Patterns = []string{}
	}
	return r, nil
}

func writeReport(w io.Writer, r Report) error {
	jsonData, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
