// Package cmd implements the snipmd command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

type statusFunc func(format string, args ...interface{})

type filterFunc func(lang snippet.Language) bool

type options struct {
	dir    string
	lang   []string
	quiet  bool
	keep   bool
	filter filterFunc
	status statusFunc
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// Execute runs the snipmd CLI with the given arguments and output streams.
// It returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return 1
	}

	return 0
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "snipmd",
		Short:         "Work with multi-language snippet envelopes in Markdown files",
		SilenceUsage:  true,
		SilenceErrors: false,

		DisableAutoGenTag: true,
	}

	root.AddCommand(
		listCmd(opts),
		extractCmd(opts),
		packCmd(opts),
		execCmd(opts),
		renderCmd(opts),
	)

	return root
}

func langFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", nil, "only sub-blocks whose language matches a glob pattern")

	cmd.PreRunE = chainPreRun(cmd.PreRunE, func(cmd *cobra.Command, _ []string) error {
		f, err := filter(opts.lang)
		if err != nil {
			return err
		}

		opts.filter = f

		return nil
	})
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status output")

	cmd.PreRunE = chainPreRun(cmd.PreRunE, func(cmd *cobra.Command, _ []string) error {
		opts.createStatus(cmd.ErrOrStderr())

		return nil
	})
}

func dirFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory for extracted files")
}

func chainPreRun(prev func(*cobra.Command, []string) error, next func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	if prev == nil {
		return next
	}

	return func(cmd *cobra.Command, args []string) error {
		if err := prev(cmd, args); err != nil {
			return err
		}

		return next(cmd, args)
	}
}

// filter compiles the language glob patterns. No patterns means every
// language passes.
func filter(patterns []string) (filterFunc, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid --lang pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return func(lang snippet.Language) bool {
		if len(globs) == 0 {
			return true
		}

		for _, g := range globs {
			if g.Match(string(lang)) {
				return true
			}
		}

		return false
	}, nil
}

func checkargs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		n = at
	}

	if n > 1 {
		return errTooManyArgs
	}

	return nil
}

// readSource reads the Markdown document named by args, or stdin when the
// name is "-" or absent.
func readSource(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())

		return data, "-", err
	}

	data, err := os.ReadFile(args[0])

	return data, args[0], err
}

var errTooManyArgs = fmt.Errorf("expected at most one filename")
