// Package cli — delete.go implements the "file-ops delete" command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Rumi381/script-fileManagement/internal/model"
)

// NewDeleteCommand creates the "delete" cobra command.
func NewDeleteCommand() *cobra.Command {
	flags := &opFlags{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete matched files and directories",
		Long: `Delete every file and directory matched by the configured criteria.

Files are removed first, then directory trees, so removing a directory can
never race with file deletions beneath it.

Examples:
  # Delete all .tmp files under the current directory
  file-ops delete --extensions tmp

  # Delete everything containing .msg, including report.msg.1
  file-ops delete --extensions msg --contains-extension

  # Delete all files EXCEPT .txt and .md (keep only text files)
  file-ops delete --extensions txt,md --exclude-all-but

  # Preview a pattern-file cleanup without touching anything
  file-ops delete --patterns-file cleanup.txt --dry-run

  # Back up the tree, then delete without prompting
  file-ops delete --source-dir ./build --extensions log,tmp --backup --no-confirm`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so errors flow to the Execute
		// error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, model.OpDelete, flags)
		},
	}

	addOperationFlags(cmd, flags)
	return cmd
}
