package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/go-wordle-nospoiler/hint"
)

var (
	configPath      string
	colorFlag       string
	placeholderFlag string
	logLevelFlag    string
	workersFlag     int
	caseFile        string
	jsonOutput      bool

	cfg Config

	rootCmd = &cobra.Command{
		Use:   "nospoiler",
		Short: "Turn wordle results into the word patterns they still allow",
		Long: `nospoiler collects what a series of wordle guesses proves about the
secret word and lists the patterns it can still have, without ever
guessing the word itself.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [GUESS RESULT]...",
		Short: "List the patterns allowed by guesses and their G/Y/W results",
		Example: `  nospoiler solve PRIDE YYWWG SPARE WYWYG CREPE WYYYG
  nospoiler solve --file testdata/cases.txt --json`,
		RunE: runSolve,
	}

	gradeCmd = &cobra.Command{
		Use:   "grade GUESS SECRET",
		Short: "Print the G/Y/W result of a guess against a known secret",
		Args:  cobra.ExactArgs(2),
		RunE:  runGrade,
	}

	verifyCmd = &cobra.Command{
		Use:   "verify FILE...",
		Short: "Check every case in case files: results match their answers and the answers fit a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVerify,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "colour output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&placeholderFlag, "placeholder", "", "symbol for unknown positions")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error")

	solveCmd.Flags().StringVarP(&caseFile, "file", "f", "", "solve every case in a case file")
	solveCmd.Flags().BoolVar(&jsonOutput, "json", false, "print a JSON report")
	verifyCmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "cases to check at once")

	rootCmd.AddCommand(solveCmd, gradeCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if colorFlag != "" {
		cfg.Color = colorFlag
	}
	if placeholderFlag != "" {
		cfg.Placeholder = placeholderFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if workersFlag > 0 {
		cfg.Workers = workersFlag
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := cfg.level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration loaded", "path", configPath, "placeholder", cfg.Placeholder, "color", cfg.Color)
	return nil
}

func sessionOptions() []hint.Option {
	p, _ := cfg.placeholder()
	return []hint.Option{
		hint.WithPlaceholder(p),
		hint.WithLogger(slog.Default()),
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	var cases []Case
	switch {
	case caseFile != "" && len(args) > 0:
		return errors.New("give either attempts or --file, not both")
	case caseFile != "":
		var err error
		if cases, err = readCases(caseFile); err != nil {
			return err
		}
	default:
		attempts, err := attemptsFromArgs(args)
		if err != nil {
			return err
		}
		cases = []Case{{Attempts: attempts, Line: 1}}
	}

	out := cmd.OutOrStdout()
	r := newRenderer(cfg)
	for i, c := range cases {
		if i > 0 && !jsonOutput {
			fmt.Fprintln(out)
		}
		if err := solveCase(out, r, c); err != nil {
			if len(cases) > 1 {
				return fmt.Errorf("%s: %w", c.Name(), err)
			}
			return err
		}
	}
	return nil
}

func attemptsFromArgs(args []string) ([]hint.Attempt, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errors.New("expected pairs of GUESS RESULT")
	}
	attempts := make([]hint.Attempt, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		attempts = append(attempts, hint.Attempt{
			Guess:  strings.ToUpper(args[i]),
			Result: strings.ToUpper(args[i+1]),
		})
	}
	return attempts, nil
}

func solveCase(out io.Writer, r *renderer, c Case) error {
	s := hint.NewSession(sessionOptions()...)
	for _, a := range c.Attempts {
		if err := s.Add(a.Guess, a.Result); err != nil {
			return err
		}
	}

	if jsonOutput {
		report, err := buildReport(c.Attempts, s)
		if err != nil {
			return err
		}
		return writeReport(out, report)
	}

	patterns, err := s.Patterns()
	if err != nil {
		return err
	}
	list := slices.Collect(patterns)
	summary := s.Summary()

	if c.Header != "" {
		fmt.Fprintf(out, "= %s\n", c.Header)
	}
	for _, a := range c.Attempts {
		fmt.Fprintln(out, r.Attempt(a))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Patterns:")
	for _, p := range list {
		fmt.Fprintln(out, "  "+p)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Letters for a blind guess:")
	for _, row := range r.Keyboard(summary.LettersForUnknownGuess) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out, r.Summary(summary, len(list)))
	return nil
}

func runGrade(cmd *cobra.Command, args []string) error {
	result, err := hint.Grade(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), newRenderer(cfg).Attempt(hint.Attempt{
		Guess:  strings.ToUpper(args[0]),
		Result: result,
	}))
	return nil
}

type verifyResult struct {
	name     string
	patterns int
	err      error
}

// verifyCase re-grades the attempts when the case names its answer, solves
// the case and checks the answer fits one of the patterns.
func verifyCase(c Case, opts ...hint.Option) verifyResult {
	res := verifyResult{name: c.Name()}

	answer, hasAnswer := c.Answer()
	if hasAnswer {
		for i, a := range c.Attempts {
			got, err := hint.Grade(a.Guess, answer)
			if err != nil {
				res.err = fmt.Errorf("attempt %d: %w", i+1, err)
				return res
			}
			if got != a.Result {
				res.err = fmt.Errorf("attempt %d: %s against %s grades %s, case says %s", i+1, a.Guess, answer, got, a.Result)
				return res
			}
		}
	}

	s := hint.NewSession(opts...)
	for _, a := range c.Attempts {
		if err := s.Add(a.Guess, a.Result); err != nil {
			res.err = err
			return res
		}
	}
	patterns, err := s.Patterns()
	if err != nil {
		res.err = err
		return res
	}

	matched := false
	for p := range patterns {
		res.patterns++
		if hasAnswer && hint.Matches(p, answer, s.Placeholder()) {
			matched = true
		}
	}
	if hasAnswer && !matched {
		res.err = fmt.Errorf("answer %s fits none of the %d patterns", answer, res.patterns)
	}
	return res
}

func runVerify(cmd *cobra.Command, args []string) error {
	var cases []Case
	for _, path := range args {
		cs, err := readCases(path)
		if err != nil {
			return err
		}
		cases = append(cases, cs...)
	}
	if len(cases) == 0 {
		return errors.New("no cases found")
	}

	bar := progressbar.NewOptions64(int64(len(cases)),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("verifying cases"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	p, _ := cfg.placeholder()
	results := make([]verifyResult, len(cases))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, c := range cases {
		g.Go(func() error {
			results[i] = verifyCase(c, hint.WithPlaceholder(p))
			bar.Add(1)
			return nil
		})
	}
	g.Wait()
	bar.Finish()

	out := cmd.OutOrStdout()
	var passed []verifyResult
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", res.name, res.err)
			continue
		}
		passed = append(passed, res)
	}

	fmt.Fprintf(out, "%d of %d cases passed\n", len(passed), len(cases))
	if tightest, ok := MinBy(passed, func(r verifyResult) int { return r.patterns }); ok {
		fmt.Fprintf(out, "tightest case: %s (%d pattern(s))\n", tightest.name, tightest.patterns)
	}
	if len(passed) != len(cases) {
		return fmt.Errorf("%d case(s) failed", len(cases)-len(passed))
	}
	return nil
}
