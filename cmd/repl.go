package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/lowsh/core/shell"
	"github.com/josephlewis42/lowsh/core/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively lower command lines.",
	Long: `Reads command lines and prints the lowered tree of each one,
without executing anything.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		mode, builtins, err := resolveOptions(shell.Interactive)
		if err != nil {
			return err
		}

		prompt := "lowsh> "
		if cfg, err := loadConfig(); err == nil {
			prompt = cfg.Prompt
		}

		rl, err := readline.New(prompt)
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil // Input closed, quit.

			case err == readline.ErrInterrupt:
				continue

			case err != nil:
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			node, err := lowerLine(line, mode, builtins, cmd.OutOrStdout())
			if err != nil {
				errColor.Fprintln(cmd.ErrOrStderr(), err)
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), term.Dump(node))
		}
	},
}

func init() {
	replCmd.Flags().StringVar(&modeFlag, "mode", "", "lowering mode: interactive or batch")
	rootCmd.AddCommand(replCmd)
}
