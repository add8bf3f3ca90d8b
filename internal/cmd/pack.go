package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

func packCmd(opts *options) *cobra.Command {
	var (
		flagWords string
		output    string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "pack [flags] body-file...",
		Short: "Build one snippet envelope from js/css/html body files",
		Long: `Build one snippet envelope from body files. The language of each file is
taken from its extension (.js, .css, .html). Envelope flags are given as
name=value words, for example:

    snipmd pack --flags "console=true babel=false" demo.js demo.css`,
		Args: cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()

				out = f
			}

			return packRun(os.DirFS("."), args, flagWords, out)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVar(&flagWords, "flags", "", "envelope flags as name=value words")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}

func packRun(fsys fs.FS, paths []string, flagWords string, out io.Writer) error {
	flags, err := parseFlagWords(flagWords)
	if err != nil {
		return err
	}

	node := snippet.NewSnippetNode(flags)

	for _, path := range paths {
		lang, err := bodyLanguage(path)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(fsys, filepath.ToSlash(path))
		if err != nil {
			return err
		}

		child, err := snippet.NewLangNode(lang, strings.TrimSuffix(string(data), "\n"))
		if err != nil {
			return err
		}

		if err := node.AddChild(child); err != nil {
			return err
		}
	}

	_, err = io.WriteString(out, snippet.Serialize(node))

	return err
}

// parseFlagWords splits the --flags value into shell-style words, each
// name=value with a tri-state value.
func parseFlagWords(input string) (snippet.Flags, error) {
	var flags snippet.Flags

	if len(input) == 0 {
		return flags, nil
	}

	words, err := shlex.Split(input)
	if err != nil {
		return flags, err
	}

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx < 0 {
			return flags, fmt.Errorf("flag word %q is not name=value", word)
		}

		name, value := word[:idx], snippet.TriState(word[idx+1:])
		if !value.Valid() {
			return flags, fmt.Errorf("flag %s must be true, false or null, got %q", name, value)
		}

		switch name {
		case "hide":
			flags.Hide = value
		case "console":
			flags.Console = value
		case "babel":
			flags.Babel = value
		case "babelPresetReact":
			flags.BabelPresetReact = value
		case "babelPresetTS":
			flags.BabelPresetTS = value
		default:
			return flags, fmt.Errorf("unknown flag %q", name)
		}
	}

	return flags, nil
}

func bodyLanguage(path string) (snippet.Language, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	lang := snippet.Language(ext)
	if !lang.Valid() {
		return "", fmt.Errorf("cannot infer language from %q: extension must be .js, .css or .html", path)
	}

	return lang, nil
}
