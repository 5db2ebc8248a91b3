package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/lowsh/core/config"
	"github.com/josephlewis42/lowsh/core/reader"
	"github.com/josephlewis42/lowsh/core/shell"
	"github.com/josephlewis42/lowsh/core/term"
)

var (
	modeFlag   string
	showTokens bool

	errColor = color.New(color.FgRed)
)

var lowerCmd = &cobra.Command{
	Use:   "lower SCRIPT",
	Short: "Lower a script into evaluator-ready trees.",
	Long: `Reads a script line by line and prints the lowered tree of each
command line. Blank lines and lines starting with "#" are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		mode, builtins, err := resolveOptions(shell.Batch)
		if err != nil {
			return err
		}

		contents, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		return lowerLines(cmd.OutOrStdout(), cmd.ErrOrStderr(), string(contents), mode, builtins)
	},
}

// resolveOptions picks the lowering mode from the --mode flag, then the
// configuration, then the given fallback, and the builtin set from the
// configuration when one loads.
func resolveOptions(fallback shell.Mode) (shell.Mode, shell.Builtins, error) {
	builtins := shell.DefaultBuiltins()

	cfg, err := loadConfig()
	if err != nil {
		cfg = nil // no configuration, use the fallbacks
	} else {
		color.NoColor = !cfg.Color
		builtins = cfg.ShellBuiltins()
	}

	switch modeFlag {
	case config.ModeInteractive:
		return shell.Interactive, builtins, nil
	case config.ModeBatch:
		return shell.Batch, builtins, nil
	case "":
		// fall through to the configuration
	default:
		return fallback, builtins, fmt.Errorf("unknown mode %q", modeFlag)
	}

	if cfg == nil {
		return fallback, builtins, nil
	}
	mode, err := cfg.LoweringMode()
	return mode, builtins, err
}

func lowerLines(out, errOut io.Writer, contents string, mode shell.Mode, builtins shell.Builtins) error {
	var firstErr error

	scanner := bufio.NewScanner(strings.NewReader(contents))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		node, err := lowerLine(line, mode, builtins, out)
		if err != nil {
			errColor.Fprintf(errOut, "line %d: %v\n", lineNo, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		fmt.Fprint(out, term.Dump(node))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return firstErr
}

func lowerLine(line string, mode shell.Mode, builtins shell.Builtins, out io.Writer) (term.Node, error) {
	toks, err := reader.Read(line)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	if showTokens {
		for i, t := range toks {
			fmt.Fprintf(out, "%d: %s (%s)\n", i, t, t.OpClass())
		}
	}
	return shell.LowerWith(toks, mode, builtins)
}

func init() {
	lowerCmd.Flags().StringVar(&modeFlag, "mode", "", "lowering mode: interactive or batch")
	lowerCmd.Flags().BoolVar(&showTokens, "tokens", false, "also print the classified token stream")
	rootCmd.AddCommand(lowerCmd)
}
