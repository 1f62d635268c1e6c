// Package assist exposes the console's canned knowledge base as MCP tools so
// an external assistant sees the same answers the console shows.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwulff/careconsole/internal/console"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// KnowledgeBase is the read-only data the tools answer from.
type KnowledgeBase struct {
	Transcript  []console.TranscriptMessage
	RecentCalls []console.RecentCall
	Summary     console.CallSummary
}

// DefaultKnowledgeBase returns the built-in call data.
func DefaultKnowledgeBase() KnowledgeBase {
	return KnowledgeBase{
		Transcript:  console.DefaultTranscript(),
		RecentCalls: console.RecentCalls(),
		Summary:     console.DefaultSummary(),
	}
}

// NewServer builds an MCP server with the knowledge-base tools registered.
func NewServer(kb KnowledgeBase, version string) *server.MCPServer {
	s := server.NewMCPServer("careconsole", version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("quick_question",
		mcp.WithDescription("Answer one of the console quick questions: "+strings.Join(console.QuickQuestions, ", ")),
		mcp.WithString("label", mcp.Required(), mcp.Description("Quick question label")),
	), kb.quickQuestion)

	s.AddTool(mcp.NewTool("recent_calls",
		mcp.WithDescription("List the customer's previous calls"),
	), kb.recentCalls)

	s.AddTool(mcp.NewTool("call_summary",
		mcp.WithDescription("Show the wrap-up summary for the active call"),
	), kb.callSummary)

	s.AddTool(mcp.NewTool("transcript",
		mcp.WithDescription("Show the active call transcript"),
	), kb.transcript)

	return s
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(kb KnowledgeBase, version string) error {
	if err := server.ServeStdio(NewServer(kb, version)); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}
	return nil
}

func (kb KnowledgeBase) quickQuestion(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, err := req.RequireString("label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(console.QuickAnswer(label)), nil
}

func (kb KnowledgeBase) recentCalls(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FormatRecentCalls(kb.RecentCalls)), nil
}

func (kb KnowledgeBase) callSummary(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FormatSummary(kb.Summary)), nil
}

func (kb KnowledgeBase) transcript(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FormatTranscript(kb.Transcript)), nil
}

// FormatRecentCalls renders one line per call.
func FormatRecentCalls(calls []console.RecentCall) string {
	if len(calls) == 0 {
		return "No previous calls."
	}
	var b strings.Builder
	for _, c := range calls {
		fmt.Fprintf(&b, "%s  %s  %s  %-9s  %s\n", c.ID, c.Date, c.Duration, c.Status, c.Issue)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTranscript renders "[ts] Speaker: message" lines.
func FormatTranscript(lines []console.TranscriptMessage) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "[%s] %s: %s\n", l.Timestamp, l.Speaker, l.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSummary renders the wrap-up record as plain text.
func FormatSummary(s console.CallSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\n", s.CustomerName)
	fmt.Fprintf(&b, "Rating: %d/5\n", s.Rating)
	fmt.Fprintf(&b, "Primary reason: %s\n", s.PrimaryReason)
	writeList(&b, "Secondary reasons", s.SecondaryReasons)
	fmt.Fprintf(&b, "Summary: %s\n", s.Summary)
	writeList(&b, "Cases created", s.CasesCreated)
	writeList(&b, "Customer activities", s.CustomerActivities)
	writeList(&b, "Suggestions for improvement", s.Improvements)
	return strings.TrimRight(b.String(), "\n")
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "  - %s\n", it)
	}
}
