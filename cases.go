package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

// Case is one group of attempts from a case file.
type Case struct {
	// text after '=' on the header line: the answer, or a description
	Header   string
	Attempts []hint.Attempt

	// line of the first attempt, for error messages
	Line int
}

// Answer returns the header if it is a word the attempts could be graded
// against.
func (c Case) Answer() (string, bool) {
	answer := strings.ToUpper(c.Header)
	if answer == "" || len(c.Attempts) == 0 || len(answer) != len(c.Attempts[0].Guess) {
		return "", false
	}
	for i := 0; i < len(answer); i++ {
		if b := answer[i]; b < 'A' || b > 'Z' {
			return "", false
		}
	}
	return answer, true
}

func (c Case) Name() string {
	if c.Header != "" {
		return c.Header
	}
	return fmt.Sprintf("line %d", c.Line)
}

// ParseCases reads the case file format: one "GUESS RESULT" per line, cases
// separated by blank lines or "=header" lines, "#" starting a comment line.
func ParseCases(r io.Reader) ([]Case, error) {
	var cases []Case
	var cur Case

	flush := func() {
		if len(cur.Attempts) > 0 {
			cases = append(cases, cur)
		}
		cur = Case{}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			// a header may be followed by blank lines before its attempts
			if len(cur.Attempts) > 0 {
				flush()
			}
		case strings.HasPrefix(line, "#"):
			// comment
		case strings.HasPrefix(line, "="):
			flush()
			cur.Header = strings.TrimSpace(line[1:])
		default:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected \"GUESS RESULT\", got %q", lineNo, line)
			}
			if len(cur.Attempts) == 0 {
				cur.Line = lineNo
			}
			cur.Attempts = append(cur.Attempts, hint.Attempt{
				Guess:  strings.ToUpper(fields[0]),
				Result: strings.ToUpper(fields[1]),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return cases, nil
}

func readCases(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := ParseCases(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
