// Package main provides the mdiff CLI for comparing text files with move
// detection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/fang"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/mdiff"
	"go.jacobcolvin.com/mdiff/fangs"
	"go.jacobcolvin.com/mdiff/seqmatch"
	"go.jacobcolvin.com/mdiff/style"
)

func main() {
	cfg := loadConfig()

	var (
		lineSM     string
		inlineSM   string
		cutoff     float64
		charMode   string
		colorMode  string
		ignoreCase bool
		light      bool
		tui        bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "mdiff <source> <target>",
		Short: "Compare two text files, revealing moved blocks",
		Long: "mdiff compares two text files and prints a side-by-side diff.\n" +
			"Unlike classical diff it detects block displacement: lines that\n" +
			"only changed position are marked as moves instead of being shown\n" +
			"as a deletion plus an insertion.",
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			setupLogging(debug)

			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			target, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read target: %w", err)
			}

			d := differ{
				lineSM:     seqmatch.Name(lineSM),
				inlineSM:   seqmatch.Name(inlineSM),
				cutoff:     cutoff,
				charMode:   charMode,
				colorMode:  colorMode,
				ignoreCase: ignoreCase,
				mode:       styleMode(light),
			}

			if tui {
				return d.runTUI(args[0], args[1], string(source), string(target))
			}

			return d.runConsole(os.Stdout, string(source), string(target))
		},
	}

	cmd.Flags().StringVarP(&lineSM, "line-sm", "l", cfg.LineMatcher, "line-level matcher: standard|heckel|displacement")
	cmd.Flags().StringVarP(&inlineSM, "inline-sm", "i", cfg.InlineMatcher, "character-level matcher: standard|heckel|displacement")
	cmd.Flags().Float64VarP(&cutoff, "cutoff", "c", cfg.Cutoff, "similarity cutoff for inline refinement, in [0.0, 1.0]")
	cmd.Flags().StringVar(&charMode, "char-mode", cfg.CharMode, "character set: ascii|utf8")
	cmd.Flags().StringVar(&colorMode, "color-mode", cfg.ColorMode, "color output: auto|on|off")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "compare case-insensitively")
	cmd.Flags().BoolVar(&light, "light", false, "use the light color scheme")
	cmd.Flags().BoolVarP(&tui, "tui", "t", false, "view the diff in an interactive pager")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithColorSchemeFunc(fangs.ColorSchemeFunc(style.Default(style.Dark))),
		fang.WithErrorHandler(fangs.ErrorHandler),
	)
	if err != nil {
		os.Exit(1)
	}
}

// differ holds one resolved CLI invocation.
type differ struct {
	lineSM     seqmatch.Name
	inlineSM   seqmatch.Name
	cutoff     float64
	charMode   string
	colorMode  string
	ignoreCase bool
	mode       style.Mode
}

// options resolves the matcher names and assembles the [mdiff.DiffLines]
// options.
func (d differ) options() ([]mdiff.Option, error) {
	lineMatcher, err := seqmatch.New(d.lineSM)
	if err != nil {
		return nil, fmt.Errorf("line matcher: %w", err)
	}

	inlineMatcher, err := seqmatch.New(d.inlineSM)
	if err != nil {
		return nil, fmt.Errorf("inline matcher: %w", err)
	}

	opts := []mdiff.Option{
		mdiff.WithCutoff(d.cutoff),
		mdiff.WithLineMatcher(lineMatcher),
		mdiff.WithInlineMatcher(inlineMatcher),
	}
	if d.ignoreCase {
		opts = append(opts, mdiff.WithCaseFold())
	}

	return opts, nil
}

// diff runs the configured matchers over the inputs.
func (d differ) diff(source, target string) (*mdiff.Diff, error) {
	opts, err := d.options()
	if err != nil {
		return nil, err
	}

	return mdiff.DiffLines(source, target, opts...)
}

// printer builds the printer matching the configured output style.
func (d differ) printer(colored bool) *mdiff.Printer {
	styles := style.Plain()
	if colored {
		styles = style.Default(d.mode)
	}

	charset := mdiff.UnicodeCharset()
	if d.charMode == "ascii" {
		charset = mdiff.ASCIICharset()
	}

	return mdiff.NewPrinter(
		mdiff.WithStyles(styles),
		mdiff.WithCharset(charset),
	)
}

// runConsole renders the diff to w in one shot.
func (d differ) runConsole(w *os.File, source, target string) error {
	diff, err := d.diff(source, target)
	if err != nil {
		return err
	}

	colored := d.colorMode == "on"
	if d.colorMode == "auto" {
		colored = isatty.IsTerminal(w.Fd())
	}

	err = d.printer(colored).Fprint(w, diff)
	if err != nil {
		return err
	}

	mustN(fmt.Fprintln(w))

	return nil
}

// runTUI opens the diff in the interactive pager.
func (d differ) runTUI(sourceName, targetName, source, target string) error {
	opts, err := d.options()
	if err != nil {
		return err
	}

	m := newModel(sourceName, targetName, source, target, d, opts)

	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		m.viewport.SetWidth(w)
		m.viewport.SetHeight(h - 1)
	}

	_, err = tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	return nil
}

func styleMode(light bool) style.Mode {
	if light {
		return style.Light
	}

	return style.Dark
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func mustN(_ int, err error) {
	if err != nil {
		panic(err)
	}
}
