package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"memoflow/internal/application/commands"
	"memoflow/internal/domain"
)

var (
	noteTitle   string
	noteContent string
	noteLabels  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Long: `Create a new note with a random palette color.

At least one of --title, --content or --labels must be non-empty.
A blank title becomes "Untitled".

Examples:
  memoflow-cli create --title "Groceries" --content "milk, eggs" --labels home
  memoflow-cli create -t Standup -l "work, daily"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		draft := domain.NoteDraft{
			Title:   noteTitle,
			Content: noteContent,
			Labels:  noteLabels,
		}

		createCmd := commands.NewCreateNoteCommand(GetRepo(), draft)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", result.Message, result.Note.ID)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long: `Edit a note's title, content or labels. Flags left unset keep their
current value; the color never changes.

Examples:
  memoflow-cli edit 1f0c... --content "milk, eggs, bread"
  memoflow-cli edit 1f0c... --labels ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		current, err := GetRepo().Get(ctx, id)
		if err != nil {
			return err
		}

		draft := domain.NoteDraft{
			Title:   current.Title,
			Content: current.Content,
			Labels:  current.LabelString(),
		}
		flags := cmd.Flags()
		if flags.Changed("title") {
			draft.Title = noteTitle
		}
		if flags.Changed("content") {
			draft.Content = noteContent
		}
		if flags.Changed("labels") {
			draft.Labels = noteLabels
		}

		editCmd := commands.NewUpdateNoteCommand(GetRepo(), id, draft)
		result, err := editCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	for _, c := range []*cobra.Command{createCmd, editCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "note title")
		c.Flags().StringVarP(&noteContent, "content", "b", "", "note body")
		c.Flags().StringVarP(&noteLabels, "labels", "l", "", "comma-separated labels")
	}
}
