package hint

import "strings"

// Grade computes the result a game would show for guess against secret.
// Greens are decided first; the remaining copies of each secret letter are
// then handed out as yellows from left to right.
func Grade(guess, secret string) (string, error) {
	guess = strings.ToUpper(guess)
	secret = strings.ToUpper(secret)

	if len(secret) == 0 {
		return "", invalidf("empty secret")
	}
	if len(guess) != len(secret) {
		return "", invalidf("guess %q and secret %q have different lengths", guess, secret)
	}

	out := make([]byte, len(guess))
	left := make(map[byte]int)
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			out[i] = Green
		} else {
			left[secret[i]]++
		}
	}
	for i := 0; i < len(guess); i++ {
		if out[i] == Green {
			continue
		}
		if left[guess[i]] > 0 {
			out[i] = Yellow
			left[guess[i]]--
		} else {
			out[i] = Wrong
		}
	}
	return string(out), nil
}
