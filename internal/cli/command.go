// SPDX-License-Identifier: MIT

// Package cli builds the commands running the linescan puzzles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/linescan"
)

const missingInputMsg = "Specify an input file"

// Command errors.
var (
	ErrFailedInputs = errors.New("failed to solve some inputs")
)

// NewPuzzleCommand builds the command solving a single Puzzle for one input file.
//
// A missing argument prints the usage & succeeds.
func NewPuzzleCommand(p linescan.Puzzle, cfg *linescan.Config) *cobra.Command {
	return &cobra.Command{
		Use:           p.Name + " <input-file-path>",
		Short:         p.Description,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), missingInputMsg)
				return cmd.Usage()
			}

			path := args[0]
			cfg.Logger.Infof("Processing file %q", path)

			total, err := p.SolveFile(cmd.Context(), cfg, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Result: %d\n", total)

			return nil
		},
	}
}

// NewRootCommand builds the `aoc` command holding every Puzzle as a sub-command.
func NewRootCommand(cfg *linescan.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve line scanning puzzles",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	for _, p := range linescan.Puzzles() {
		root.AddCommand(NewPuzzleCommand(p, cfg))
	}
	root.AddCommand(newListCommand(), newBatchCommand(cfg))

	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range linescan.Puzzles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Name, p.Description)
			}
		},
	}
}

func newBatchCommand(cfg *linescan.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <puzzle> <input-file-path>...",
		Short: "Solve a puzzle for several input files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := linescan.Lookup(args[0])
			if err != nil {
				return err
			}

			results, err := p.SolveFiles(cmd.Context(), cfg, args[1:]...)
			if err != nil {
				return err
			}

			failures := 0
			for _, resl := range results {
				if resl.Err != nil {
					failures++
					cfg.Logger.WithField("input", resl.Path).Error(resl.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", resl.Path, resl.Total)
			}
			if failures > 0 {
				return fmt.Errorf("%w: %d of %d", ErrFailedInputs, failures, len(results))
			}

			return nil
		},
	}
}

// Execute runs cmd, terminating the process on failure.
func Execute(ctx context.Context, cmd *cobra.Command, logger logrus.FieldLogger) {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Fatal(err)
	}
}

// Main runs the named Puzzle as a standalone program.
func Main(name string) {
	logger := logrus.New()

	p, err := linescan.Lookup(name)
	if err != nil {
		logger.Fatal(err)
	}

	cfg := linescan.DefConfig()
	cfg.Logger = logger

	cmd := NewPuzzleCommand(p, cfg)
	cmd.Use = filepath.Base(os.Args[0]) + " <input-file-path>"
	Execute(context.Background(), cmd, logger)
}

// RootMain runs the `aoc` program.
func RootMain() {
	logger := logrus.New()

	cfg := linescan.DefConfig()
	cfg.Logger = logger

	Execute(context.Background(), NewRootCommand(cfg), logger)
}
