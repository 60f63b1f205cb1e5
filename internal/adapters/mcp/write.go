package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"memoflow/internal/application/commands"
	"memoflow/internal/domain"
	"memoflow/internal/ports"
)

// RegisterWriteTools adds all write note tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.NoteRepository) {
	s.AddTool(createNoteTool(), createNoteHandler(repo))
	s.AddTool(updateNoteTool(), updateNoteHandler(repo))
	s.AddTool(deleteNoteTool(), deleteNoteHandler(repo))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a sticky note with a random palette color. At least one of title, content or labels must be non-empty; a blank title becomes \"Untitled\"."),
		mcp.WithString("title",
			mcp.Description("Note title"),
		),
		mcp.WithString("content",
			mcp.Description("Note body"),
		),
		mcp.WithString("labels",
			mcp.Description("Comma-separated labels (e.g. \"work, ideas\")"),
		),
	)
}

func createNoteHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		draft := domain.NoteDraft{
			Title:   req.GetString("title", ""),
			Content: req.GetString("content", ""),
			Labels:  req.GetString("labels", ""),
		}

		result, err := commands.NewCreateNoteCommand(repo, draft).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Note.ID)), nil
	}
}

// --- update_note ---

func updateNoteTool() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription("Update a note. Omitted fields keep their current value; the color never changes."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("content",
			mcp.Description("New body"),
		),
		mcp.WithString("labels",
			mcp.Description("New comma-separated labels; pass an empty string to clear"),
		),
	)
}

func updateNoteHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		current, err := repo.Get(ctx, id)
		if err != nil {
			return toolError(err)
		}

		draft := domain.NoteDraft{
			Title:   req.GetString("title", current.Title),
			Content: req.GetString("content", current.Content),
			Labels:  req.GetString("labels", current.LabelString()),
		}

		result, err := commands.NewUpdateNoteCommand(repo, id, draft).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_note ---

func deleteNoteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Permanently delete a note by ID."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func deleteNoteHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		result, err := commands.NewDeleteNoteCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
