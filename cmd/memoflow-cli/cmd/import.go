package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memoflow/internal/application/commands"
	"memoflow/internal/config"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import notes exported from the browser board",
	Long: `Import the JSON array of memos saved by the browser version of the board
(fields id, title, content, color, labels). Notes keep their IDs, so
importing the same file twice updates instead of duplicating.

Examples:
  memoflow-cli import memos.json
  memoflow-cli import - < memos.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		memos, err := commands.DecodeBrowserMemos(in)
		if err != nil {
			return err
		}

		importCmd := commands.NewImportNotesCommand(GetRepo(), memos)
		result, err := importCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default memoflow.toml",
	Long: `Write a default memoflow.toml to --config, or to the default location
when the flag is omitted. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.Path()
		}
		if err := config.InitFile(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initConfigCmd)
}
