package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/ezerfernandes/snipmd/internal/mdext"
	"github.com/ezerfernandes/snipmd/internal/snippet"
)

type bodyInfo struct {
	index    int
	lang     snippet.Language
	tempPath string
}

func execCmd(opts *options) *cobra.Command {
	var update bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] [filename] [-- command]",
		Aliases: []string{"e"},
		Short:   "Execute a shell command on each snippet sub-block",
		Long: `Write every matching sub-block to a temporary file and run the command
once per file. The command may use {} for the file path, {lang} for the
language, {index} for the snippet index and {dir} for the temporary
directory. With --update, modified files are written back into the
Markdown document.`,
		Args: checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp(".", "snipmd-exec-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			filename := "-"
			if len(args) > 0 {
				filename = args[0]
			}

			src, _, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			return execRun(filename, src, opts, scr, update)
		},

		DisableAutoGenTag: true,
	}

	dirFlag(cmd, opts)
	langFlag(cmd, opts)
	quietFlag(cmd, opts)

	cmd.Flags().BoolVar(&update, "update", false, "write modified sub-blocks back into the document")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "don't remove temporary directory")

	return cmd
}

// script splits the command words after "--" from the leading arguments.
func script(cmd *cobra.Command, args []string) (string, []string) {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		return "", args
	}

	return strings.Join(args[at:], " "), args[:at]
}

func execRun(filename string, src []byte, opts *options, scr string, update bool) error {
	absDir, err := filepath.Abs(opts.dir)
	if err != nil {
		return err
	}

	index := 0

	var failures int

	modified, result, err := mdext.Walk(src, func(region *mdext.Region) error {
		snippetIdx := index
		index++

		for _, child := range region.Node.Children() {
			if !opts.filter(child.Language) {
				continue
			}

			info, werr := writeBodyToTemp(child, snippetIdx, absDir)
			if werr != nil {
				opts.status("warning: failed to write snippet %d %s body: %v\n", snippetIdx, child.Language, werr)

				continue
			}

			expanded := expandCommand(scr, info, absDir)

			opts.status("--- snippet %d (%s) : L%d-%d : %s ---\n", info.index, info.lang, region.StartLine, region.EndLine, filepath.Base(filename))

			exitCode, execErr := runCommand(expanded, absDir)
			if execErr != nil {
				return execErr
			}

			if exitCode != 0 {
				failures++

				if update {
					opts.status("warning: snippet %d %s exited with %d, skipping update\n", info.index, info.lang, exitCode)

					continue
				}
			}

			if update {
				newBody, readErr := os.ReadFile(info.tempPath)
				if readErr != nil {
					return readErr
				}

				child.Content = strings.TrimSuffix(string(newBody), "\n")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if update && modified {
		if filename == "-" {
			return errUpdateStdin
		}

		if err := os.WriteFile(filename, result, fileMode); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d sub-block(s) failed", failures)
	}

	return nil
}

func writeBodyToTemp(child *snippet.LangNode, index int, dir string) (*bodyInfo, error) {
	info := &bodyInfo{
		index:    index,
		lang:     child.Language,
		tempPath: filepath.Join(dir, bodyFilename(index, child.Language)),
	}

	if err := os.WriteFile(info.tempPath, []byte(child.Content+"\n"), fileMode); err != nil {
		return nil, err
	}

	return info, nil
}

func expandCommand(scr string, info *bodyInfo, dir string) string {
	expanded := strings.ReplaceAll(scr, "{}", info.tempPath)
	expanded = strings.ReplaceAll(expanded, "{lang}", string(info.lang))
	expanded = strings.ReplaceAll(expanded, "{index}", fmt.Sprint(info.index))
	expanded = strings.ReplaceAll(expanded, "{dir}", dir)

	return expanded
}

func runCommand(command, dir string) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(os.Stdin, os.Stdout, os.Stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

var (
	errMissingCommand = fmt.Errorf("command is required after '--'")
	errUpdateStdin    = fmt.Errorf("--update requires a filename, not stdin")
)
