package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"memoflow/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long: `Delete a note by ID.

Warning: This operation cannot be undone.

Examples:
  memoflow-cli delete 1f0c2a7e-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		deleteCmd := commands.NewDeleteNoteCommand(GetRepo(), id)
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
