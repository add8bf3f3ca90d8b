package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezerfernandes/snipmd/internal/mdext"
	"github.com/ezerfernandes/snipmd/internal/snippet"
)

func extractCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "extract [flags] [filename]",
		Aliases: []string{"x"},
		Short:   "Write each snippet sub-block to its own file",
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

			return extractRegions(regions, opts)
		},

		DisableAutoGenTag: true,
	}

	dirFlag(cmd, opts)
	langFlag(cmd, opts)
	quietFlag(cmd, opts)

	return cmd
}

func extractRegions(regions []*mdext.Region, opts *options) error {
	if err := os.MkdirAll(opts.dir, dirMode); err != nil {
		return err
	}

	written := 0

	for i, region := range regions {
		for _, child := range region.Node.Children() {
			if !opts.filter(child.Language) {
				continue
			}

			path := filepath.Join(opts.dir, bodyFilename(i, child.Language))

			if err := os.WriteFile(path, []byte(child.Content+"\n"), fileMode); err != nil {
				return err
			}

			opts.status("wrote %s (snippet %d, L%d-%d)\n", path, i, region.StartLine, region.EndLine)

			written++
		}
	}

	if written == 0 {
		opts.status("no sub-blocks matched\n")
	}

	return nil
}

func bodyFilename(index int, lang snippet.Language) string {
	return fmt.Sprintf("%d_%s.%s", index, lang, lang)
}
