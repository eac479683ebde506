package hint

import "math/bits"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LetterSet is a set of the uppercase letters A-Z, one bit per letter.
type LetterSet uint32

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func (s *LetterSet) Set(c byte) {
	*s |= 1 << (c - 'A')
}

func (s LetterSet) Get(c byte) bool {
	if !isLetter(c) {
		return false
	}
	return s&(1<<(c-'A')) != 0
}

func (s LetterSet) And(other LetterSet) LetterSet {
	return s & other
}

func (s LetterSet) Or(other LetterSet) LetterSet {
	return s | other
}

func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	ret := make([]byte, 0, s.Count())
	for i := 0; i < len(alphabet); i++ {
		if s&(1<<i) != 0 {
			ret = append(ret, alphabet[i])
		}
	}
	return ret
}

func (s LetterSet) String() string {
	return string(s.Letters())
}

func lettersOf(word string) LetterSet {
	var s LetterSet
	for i := 0; i < len(word); i++ {
		if isLetter(word[i]) {
			s.Set(word[i])
		}
	}
	return s
}
