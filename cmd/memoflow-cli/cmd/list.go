package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"memoflow/internal/application/commands"
	"memoflow/internal/domain"
)

var listLabel string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Long: `List notes, newest first, optionally restricted to one label.

Examples:
  memoflow-cli list
  memoflow-cli list --label work`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListNotesCommand(GetRepo(), listLabel)
		notes, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, n := range notes {
			fmt.Println(formatNoteLine(n))
		}
		return nil
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List all labels in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		labels, err := commands.NewListLabelsCommand(GetRepo()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, l := range labels {
			fmt.Println(l)
		}
		return nil
	},
}

// formatNoteLine renders "id  title  [labels]  content" on one line
func formatNoteLine(n domain.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s", n.ID, n.Title)
	if len(n.Labels) > 0 {
		fmt.Fprintf(&b, "  [%s]", n.LabelString())
	}
	if content := strings.Join(strings.Fields(n.Content), " "); content != "" {
		b.WriteString("  ")
		b.WriteString(content)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(labelsCmd)
	listCmd.Flags().StringVarP(&listLabel, "label", "l", "", "only list notes with this label")
}
