package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"memoflow/internal/application/commands"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// RegisterReadTools adds all read-only note tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.NoteRepository) {
	s.AddTool(listNotesTool(), listNotesHandler(repo))
	s.AddTool(listLabelsTool(), listLabelsHandler(repo))
	s.AddTool(getNoteTool(), getNoteHandler(repo))
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List sticky notes, newest first. Optionally restrict to one label."),
		mcp.WithString("label",
			mcp.Description("Only list notes carrying this label. Omit or pass \"all\" for every note."),
		),
	)
}

func listNotesHandler(repo ports.NoteSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		label := req.GetString("label", "")

		notes, err := commands.NewListNotesCommand(repo, label).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(notes, formatNote)
	}
}

// --- list_labels ---

func listLabelsTool() mcp.Tool {
	return mcp.NewTool("list_labels",
		mcp.WithDescription("List every label used across notes, sorted."),
	)
}

func listLabelsHandler(repo ports.NoteSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		labels, err := commands.NewListLabelsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(labels, func(l string) string { return l })
	}
}

// --- get_note ---

func getNoteTool() mcp.Tool {
	return mcp.NewTool("get_note",
		mcp.WithDescription("Read one note by ID."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func getNoteHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		note, err := repo.Get(ctx, id)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatNote(*note)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatNote renders a header line followed by the indented content
func formatNote(n domain.Note) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s  %s", n.ID, n.Title, n.Color)
	if len(n.Labels) > 0 {
		fmt.Fprintf(&sb, "  [%s]", n.LabelString())
	}
	for _, line := range strings.Split(n.Content, "\n") {
		if line == "" {
			continue
		}
		sb.WriteString("\n  ")
		sb.WriteString(line)
	}
	return sb.String()
}
