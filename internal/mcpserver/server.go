// Package mcpserver exposes the topic engine to LLM clients over MCP: one
// tool for topic sections, one for the word cloud. Both operate on a
// transcript JSON export on disk.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pluggentipsar/intervju-transkribering/internal/topics"
	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// New builds the MCP server with both tools registered.
func New(version string) *server.MCPServer {
	s := server.NewMCPServer("intervju-transkribering-topics", version)
	s.AddTool(sectionsTool(), handleSections)
	s.AddTool(wordCloudTool(), handleWordCloud)
	return s
}

func sectionsTool() mcp.Tool {
	return mcp.NewTool("topic_sections",
		mcp.WithDescription("Partition a transcript into topic-coherent sections with representative keywords."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a transcript JSON export"),
		),
		mcp.WithString("sensitivity",
			mcp.Description("Segmentation granularity: low, medium or high (default medium)"),
		),
		mcp.WithString("field",
			mcp.Description("Text field to analyze: original or anonymized (default original)"),
		),
	)
}

func wordCloudTool() mcp.Tool {
	return mcp.NewTool("word_cloud",
		mcp.WithDescription("Rank the most frequent content words of a whole transcript."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a transcript JSON export"),
		),
		mcp.WithNumber("size",
			mcp.Description("Table size: 25, 50 or 100 (default 50)"),
		),
		mcp.WithString("field",
			mcp.Description("Text field to analyze: original or anonymized (default original)"),
		),
	)
}

func handleSections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sensitivity := topics.SensitivityMedium
	if raw := req.GetString("sensitivity", ""); raw != "" {
		sensitivity, err = topics.ParseSensitivity(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load transcript: %v", err)), nil
	}

	sections := topics.Sections(tr.Segments, fieldArg(req), sensitivity)
	return jsonResult(sections)
}

func handleWordCloud(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	size := int(req.GetFloat("size", topics.WordCloudMedium))
	if size <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid size %d", size)), nil
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load transcript: %v", err)), nil
	}

	cloud := topics.WordCloud(tr.Segments, fieldArg(req), size)
	return jsonResult(cloud)
}

func fieldArg(req mcp.CallToolRequest) transcript.TextField {
	if req.GetString("field", "") == string(transcript.FieldAnonymized) {
		return transcript.FieldAnonymized
	}
	return transcript.FieldOriginal
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}
