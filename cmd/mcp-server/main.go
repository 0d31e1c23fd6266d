package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Amehran/Multi-Agent-Mobile-UI-Assistant/src"
)

const (
	toolValidateCode     = "validate_compose_code"
	toolAutoFixCode      = "auto_fix_compose_code"
	toolCheckCompilation = "check_compilation"
	toolReadProject      = "read_project_structure"
	toolFetchFigma       = "fetch_figma_design"
	toolSearchExamples   = "search_compose_examples"
)

func main() {
	s := server.NewMCPServer(
		"Mobile UI Assistant MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerTools(s *server.MCPServer) {
	// Tool 1: Validate Compose code
	s.AddTool(mcp.Tool{
		Name:        toolValidateCode,
		Description: "Check Jetpack Compose code for missing imports and accessibility issues",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "Kotlin Jetpack Compose source to validate",
				},
			},
			Required: []string{"code"},
		},
	}, handleValidateCode)

	// Tool 2: Auto-fix missing imports
	s.AddTool(mcp.Tool{
		Name:        toolAutoFixCode,
		Description: "Insert any missing Compose imports and return the fixed code",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "Kotlin Jetpack Compose source to fix",
				},
			},
			Required: []string{"code"},
		},
	}, handleAutoFixCode)

	// Tool 3: Compilation check
	s.AddTool(mcp.Tool{
		Name:        toolCheckCompilation,
		Description: "Run syntax heuristics and, when available, the Kotlin compiler against the code",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "Kotlin Jetpack Compose source to check",
				},
			},
			Required: []string{"code"},
		},
	}, handleCheckCompilation)

	// Tool 4: Project introspection
	s.AddTool(mcp.Tool{
		Name:        toolReadProject,
		Description: "Scan an Android project for Kotlin files and existing composable functions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Root directory of the Android project",
				},
			},
			Required: []string{"path"},
		},
	}, handleReadProject)

	// Tool 5: Figma design tokens
	s.AddTool(mcp.Tool{
		Name:        toolFetchFigma,
		Description: "Fetch design tokens (colors, typography, spacing) from a Figma file, falling back to a built-in design system",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_key": map[string]interface{}{
					"type":        "string",
					"description": "Figma file key; when empty the mock design system is returned",
				},
				"as_theme": map[string]interface{}{
					"type":        "boolean",
					"description": "Return a Compose theme snippet instead of raw tokens",
					"default":     false,
				},
			},
		},
	}, handleFetchFigma)

	// Tool 6: Compose example search
	s.AddTool(mcp.Tool{
		Name:        toolSearchExamples,
		Description: "Search public Compose sample repositories for composables matching a description",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language UI description to search for",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of examples to return",
					"default":     3,
				},
			},
			Required: []string{"query"},
		},
	}, handleSearchExamples)
}

func handleValidateCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")
	if strings.TrimSpace(code) == "" {
		return mcp.NewToolResultError("code must not be empty"), nil
	}

	findings := src.ValidateComposeCode(code)
	if len(findings) == 0 {
		return mcp.NewToolResultText("✅ No issues found"), nil
	}

	var b strings.Builder
	for _, f := range findings {
		fmt.Fprintf(&b, "%s (line %d): %s\n", f.Severity, f.Line, f.Message)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func handleAutoFixCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")
	if strings.TrimSpace(code) == "" {
		return mcp.NewToolResultError("code must not be empty"), nil
	}

	fixed := src.AutoFixComposeCode(code)
	if fixed == code {
		return mcp.NewToolResultText("No fixes needed\n\n" + fixed), nil
	}
	return mcp.NewToolResultText("Added missing imports\n\n" + fixed), nil
}

func handleCheckCompilation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")
	if strings.TrimSpace(code) == "" {
		return mcp.NewToolResultError("code must not be empty"), nil
	}

	outcome := src.CheckCompilation(ctx, code)
	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func handleReadProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path must not be empty"), nil
	}

	structure, err := src.ReadProjectStructure(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read project: %v", err)), nil
	}

	out, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func handleFetchFigma(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileKey := request.GetString("file_key", "")
	asTheme := request.GetBool("as_theme", false)

	client := src.NewFigmaClient(os.Getenv("FIGMA_ACCESS_TOKEN"))
	spec := client.FetchDesign(ctx, fileKey)

	if asTheme {
		return mcp.NewToolResultText(src.ComposeThemeFromDesign(spec)), nil
	}

	out, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func handleSearchExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query must not be empty"), nil
	}
	limit := int(request.GetFloat("limit", 3))

	searcher := src.NewExampleSearcher(os.Getenv("GITHUB_TOKEN"))
	examples := searcher.SearchExamples(ctx, query, limit)
	if len(examples) == 0 {
		return mcp.NewToolResultText("No examples found"), nil
	}

	var b strings.Builder
	for _, ex := range examples {
		fmt.Fprintf(&b, "// %s\n// %s\n%s\n\n", ex.Description, ex.SourceURL, ex.Code)
	}
	return mcp.NewToolResultText(b.String()), nil
}
