package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snipmd/internal/mdext"
)

func renderCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "render [flags] [filename]",
		Short: "Render a Markdown file to HTML with snippet envelopes expanded",
		Args:  checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if output != "" && output != "-" {
				f, ferr := os.Create(output)
				if ferr != nil {
					return ferr
				}
				defer f.Close()

				out = f
			}

			return mdext.New().Convert(src, out)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}
