package mcp

import "github.com/mark3labs/mcp-go/mcp"

var saveToolDef = mcp.NewTool("note_save",
	mcp.WithDescription("Save a note through the note screen. Omit id to create a note; pass id to overwrite its title and content. "+
		"A note whose title and content are both blank is discarded and nothing is written."),
	mcp.WithNumber("id", mcp.Description("Id of the note to edit. Omit to create a new note."), mcp.Min(1)),
	mcp.WithString("title", mcp.Description("Note title.")),
	mcp.WithString("content", mcp.Description("Note body. Markdown is rendered in the web UI.")),
	mcp.WithIdempotentHintAnnotation(false),
)

var deleteToolDef = mcp.NewTool("note_delete",
	mcp.WithDescription("Delete a note permanently. The delete prompt is answered with confirm; "+
		"confirm=false leaves the note in place."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Id of the note to delete."), mcp.Min(1)),
	mcp.WithBoolean("confirm", mcp.Description("Answer to \"Are You Sure!\". Defaults to false."), mcp.DefaultBool(false)),
	mcp.WithDestructiveHintAnnotation(true),
)

var fetchToolDef = mcp.NewTool("note_fetch",
	mcp.WithDescription("Fetch one note with its full content."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Note id."), mcp.Min(1)),
	mcp.WithReadOnlyHintAnnotation(true),
)

var listToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List note summaries, most recently updated first."),
	mcp.WithNumber("limit", mcp.Description("Page size (default list_limit from config, max 100)."), mcp.Max(100)),
	mcp.WithNumber("offset", mcp.Description("Items to skip."), mcp.DefaultNumber(0), mcp.Min(0)),
	mcp.WithReadOnlyHintAnnotation(true),
)

var searchToolDef = mcp.NewTool("note_search",
	mcp.WithDescription("Find notes whose title or content contains the query (case-insensitive)."),
	mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for, up to 200 characters.")),
	mcp.WithNumber("limit", mcp.Description("Page size (default list_limit from config, max 100)."), mcp.Max(100)),
	mcp.WithNumber("offset", mcp.Description("Items to skip."), mcp.DefaultNumber(0), mcp.Min(0)),
	mcp.WithReadOnlyHintAnnotation(true),
)
