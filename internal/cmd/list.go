package cmd

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snipmd/internal/mdext"
)

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List snippet envelopes found in a Markdown file",
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			regions, err := mdext.Extract(src)
			if err != nil {
				return err
			}

			return listRegions(cmd, regions)
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func listRegions(cmd *cobra.Command, regions []*mdext.Region) error {
	if len(regions) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no snippets found")

		return nil
	}

	tbl := table.New("#", "Lines", "Languages", "Hide", "Console", "Babel", "React", "TS").
		WithWriter(cmd.OutOrStdout())

	for i, region := range regions {
		langs := make([]string, 0, len(region.Languages()))
		for _, l := range region.Languages() {
			langs = append(langs, string(l))
		}

		flags := region.Node.Flags

		tbl.AddRow(
			i,
			fmt.Sprintf("L%d-%d", region.StartLine, region.EndLine),
			strings.Join(langs, ","),
			flags.Hide,
			flags.Console,
			flags.Babel,
			flags.BabelPresetReact,
			flags.BabelPresetTS,
		)
	}

	tbl.Print()

	return nil
}
