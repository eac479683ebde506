package hint

import (
	"iter"

	"golang.org/x/exp/slices"
)

// DefaultPlaceholder marks a position with no known letter in a pattern.
const DefaultPlaceholder = '?'

// Remaining is how many more copies of each letter must be placed outside
// the green positions. Letters fully covered by greens are left out.
func (k *Knowledge) Remaining() map[byte]int {
	need := make(map[byte]int)
	for c, b := range k.Bounds {
		if b.Min > 0 {
			need[c] = b.Min
		}
	}
	for _, c := range k.Green {
		if c == 0 {
			continue
		}
		if n, ok := need[c]; ok {
			if n <= 1 {
				delete(need, c)
			} else {
				need[c] = n - 1
			}
		}
	}
	return need
}

// Free returns the positions without a green letter.
func (k *Knowledge) Free() []int {
	var free []int
	for i, c := range k.Green {
		if c == 0 {
			free = append(free, i)
		}
	}
	return free
}

// Combinations lists, for every letter that still needs placing, every set
// of positions it could take. Each set is sorted and the sets are in
// lexicographic order.
func (k *Knowledge) Combinations() (map[byte][][]int, error) {
	need := k.Remaining()
	free := k.Free()

	ret := make(map[byte][][]int, len(need))
	for _, c := range sortedLetters(need) {
		candidates := free
		if p, ok := k.Excluded[c]; ok {
			candidates = make([]int, 0, len(free))
			for _, i := range free {
				if !p.Has(i) {
					candidates = append(candidates, i)
				}
			}
		}
		combos := choose(candidates, need[c])
		if len(combos) == 0 {
			return nil, invalidf("no valid placement for letter %c", c)
		}
		ret[c] = combos
	}
	return ret, nil
}

// Patterns returns every word pattern consistent with the knowledge: greens
// in place, each remaining letter at one of its combinations, no two letters
// sharing a position, placeholder everywhere else. The sequence can be
// ranged over any number of times.
func (k *Knowledge) Patterns(placeholder byte) (iter.Seq[string], error) {
	combos, err := k.Combinations()
	if err != nil {
		return nil, err
	}
	letters := sortedLetters(combos)

	template := make([]byte, k.Length())
	for i, c := range k.Green {
		if c == 0 {
			c = placeholder
		}
		template[i] = c
	}

	return func(yield func(string) bool) {
		word := slices.Clone(template)
		taken := make([]bool, len(word))
		for i, c := range k.Green {
			taken[i] = c != 0
		}

		var place func(n int) bool
		place = func(n int) bool {
			if n == len(letters) {
				return yield(string(word))
			}
			c := letters[n]
		next:
			for _, combo := range combos[c] {
				for _, i := range combo {
					if taken[i] {
						continue next
					}
				}
				for _, i := range combo {
					taken[i] = true
					word[i] = c
				}
				ok := place(n + 1)
				for _, i := range combo {
					taken[i] = false
					word[i] = placeholder
				}
				if !ok {
					return false
				}
			}
			return true
		}
		place(0)
	}, nil
}

// Matches reports whether word fits pattern, treating placeholder as any
// letter.
func Matches(pattern, word string, placeholder byte) bool {
	if len(pattern) != len(word) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != placeholder && pattern[i] != word[i] {
			return false
		}
	}
	return true
}

// BlindLetters returns the letters still worth trying in a guess made
// without regard to the known positions: not ruled out, and not already
// pinned to an exact count.
func (k *Knowledge) BlindLetters() []byte {
	var ret []byte
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if k.Wrong.Get(c) {
			continue
		}
		if b, ok := k.Bounds[c]; ok && b.Exact() {
			continue
		}
		ret = append(ret, c)
	}
	return ret
}

// choose returns every k-element subset of items, preserving item order.
func choose(items []int, k int) [][]int {
	if k < 0 || k > len(items) {
		return nil
	}
	var ret [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			ret = append(ret, slices.Clone(cur))
			return
		}
		for i := start; i <= len(items)-(k-len(cur)); i++ {
			cur = append(cur, items[i])
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)
	return ret
}

func sortedLetters[V any](m map[byte]V) []byte {
	ret := make([]byte, 0, len(m))
	for c := range m {
		ret = append(ret, c)
	}
	slices.Sort(ret)
	return ret
}
