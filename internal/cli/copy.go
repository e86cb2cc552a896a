// Package cli — copy.go implements the "file-ops copy" command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// NewCopyCommand creates the "copy" cobra command.
func NewCopyCommand() *cobra.Command {
	flags := &opFlags{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy matched files and directories to a destination",
		Long: `Copy every matched item to the destination directory, preserving each
item's path relative to the source directory. Intermediate destination
directories are created on demand.

Examples:
  # Copy all PDF and DOCX files to another location
  file-ops copy --dest-dir /path/to/dest --extensions pdf,docx

  # Copy everything except files containing "backup" in the name
  file-ops copy --dest-dir /path/to/dest --exclude-contains backup

  # Copy JPG files plus directories named "thumbnails"
  file-ops copy --source-dir ./photos --dest-dir ./out --extensions jpg --include-dirs --target-dirs thumbnails`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, model.OpCopy, flags)
		},
	}

	addOperationFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.destDir, "dest-dir", "", "Destination directory (required)")
	return cmd
}
