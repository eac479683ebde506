package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

var tileColors = map[byte]string{
	hint.Green:  "[_green_][white]",
	hint.Yellow: "[_yellow_][black]",
	hint.Wrong:  "[_dark_gray_][white]",
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true)
	summaryBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

type renderer struct {
	colors colorstring.Colorize
	hidden string
}

func newRenderer(cfg Config) *renderer {
	color := cfg.Color == "always" || (cfg.Color == "auto" && term.IsTerminal(int(os.Stdout.Fd())))
	return &renderer{
		colors: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
		hidden: cfg.KeyboardHidden,
	}
}

// Attempt renders a guess as coloured tiles. Without colour the result
// string is appended so nothing is lost.
func (r *renderer) Attempt(a hint.Attempt) string {
	var b strings.Builder
	for i := 0; i < len(a.Guess) && i < len(a.Result); i++ {
		b.WriteString(tileColors[a.Result[i]])
		fmt.Fprintf(&b, " %c ", a.Guess[i])
		b.WriteString("[reset]")
	}
	out := r.colors.Color(b.String())
	if r.colors.Disable {
		out = strings.TrimSpace(out) + "   " + a.Result
	}
	return out
}

// Keyboard lays out letters the way they sit on a keyboard, hiding the rest.
func (r *renderer) Keyboard(letters []string) []string {
	shown := make(map[string]bool, len(letters))
	for _, l := range letters {
		shown[l] = true
	}

	rows := make([]string, len(keyboardRows))
	width := 0
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			if k := row[j : j+1]; shown[k] {
				keys[j] = k
			} else {
				keys[j] = r.hidden
			}
		}
		rows[i] = strings.Join(keys, " ")
		width = max(width, uniseg.StringWidth(rows[i]))
	}

	for i, row := range rows {
		pad := (width + 2 - uniseg.StringWidth(row)) / 2
		rows[i] = strings.Repeat(" ", pad) + row
	}
	return rows
}

func (r *renderer) Summary(sum hint.Summary, patterns int) string {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	lines := []string{
		summaryTitle.Render(fmt.Sprintf("%d possible pattern(s)", patterns)),
		"hard mode compatible:       " + yesNo(sum.HardModeCompatible),
		"super hard mode compatible: " + yesNo(sum.SuperHardModeCompatible),
		"normal wordle game:         " + yesNo(sum.NormalWordleGame),
	}
	return summaryBox.Render(strings.Join(lines, "\n"))
}
