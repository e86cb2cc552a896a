// Package cli — move.go implements the "file-ops move" command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// NewMoveCommand creates the "move" cobra command.
func NewMoveCommand() *cobra.Command {
	flags := &opFlags{}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move matched files and directories to a destination",
		Long: `Move every matched item to the destination directory, preserving each
item's path relative to the source directory. Moves that cannot be done
with a rename (for example across filesystems) fall back to copy+delete.

Examples:
  # Move all .bak files into an archive tree
  file-ops move --source-dir ./work --dest-dir ./archive --extensions bak

  # Move directories named "thumbnails" along with JPG files
  file-ops move --source-dir ./photos --dest-dir ./out --extensions jpg --include-dirs --target-dirs thumbnails`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, model.OpMove, flags)
		},
	}

	addOperationFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.destDir, "dest-dir", "", "Destination directory (required)")
	return cmd
}
