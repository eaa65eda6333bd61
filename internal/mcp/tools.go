// ABOUTME: MCP tool definitions and handlers for the CuraQ article queue
// ABOUTME: Five tools: list, search, fetch, status update, and save

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/curaq/curaq-mcp/internal/api"
	"github.com/curaq/curaq-mcp/internal/render"
)

const (
	defaultListLimit = 20
	maxListLimit     = 50

	defaultSearchLimit = 10
	maxSearchLimit     = 30
)

// Validation messages returned before any network call is made.
const (
	msgQueryRequired     = "A search query is required. Provide the \"query\" argument with the text to search for."
	msgArticleIDRequired = "An article ID is required. Provide the \"article_id\" argument. Use list_articles or search_articles to find IDs."
	msgActionRequired    = "An action is required. Provide the \"action\" argument as \"read\" or \"delete\"."
	msgURLRequired       = "A URL is required. Provide the \"url\" argument with the address of the page to save."
)

// Tool registration

func (s *Server) registerTools() {
	s.registerListArticlesTool()
	s.registerSearchArticlesTool()
	s.registerGetArticleTool()
	s.registerUpdateArticleStatusTool()
	s.registerSaveArticleTool()
}

func (s *Server) registerListArticlesTool() {
	tool := mcp.Tool{
		Name:        "list_articles",
		Description: "List unread articles from the CuraQ reading queue, ordered by priority. Each entry shows the title, estimated reading time, URL, tags, and article ID. Use the ID with get_article to read the full summary, or with update_article_status to mark it read or delete it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of articles to return. Default: 20, maximum: 50. Example: 10",
					"default":     20,
					"maximum":     50,
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, guard(s.handleListArticles))
}

func (s *Server) registerSearchArticlesTool() {
	tool := mcp.Tool{
		Name:        "search_articles",
		Description: "Search saved articles. Semantic mode (the default) matches by meaning, so natural-language questions work well. Keyword mode matches the literal text. Returns the same article summary lines as list_articles.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The search text. Example: 'articles about database indexing'",
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Search mode: 'semantic' matches by meaning, 'keyword' matches the literal text. Default: 'semantic'",
					"enum":        []string{"keyword", "semantic"},
					"default":     "semantic",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return. Default: 10, maximum: 30. Example: 5",
					"default":     10,
					"maximum":     30,
				},
			},
			Required: []string{"query"},
		},
	}
	s.mcpServer.AddTool(tool, guard(s.handleSearchArticles))
}

func (s *Server) registerGetArticleTool() {
	tool := mcp.Tool{
		Name:        "get_article",
		Description: "Get the full details of a single saved article: title, URL, read status, reading time, tags, content type, AI summary, and the article's event history. Use list_articles or search_articles first to find the article ID.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"article_id": map[string]interface{}{
					"type":        "string",
					"description": "The article ID. Example: 'art_8f2k1x'",
				},
			},
			Required: []string{"article_id"},
		},
	}
	s.mcpServer.AddTool(tool, guard(s.handleGetArticle))
}

func (s *Server) registerUpdateArticleStatusTool() {
	tool := mcp.Tool{
		Name:        "update_article_status",
		Description: "Mark a saved article as read, or delete it from the queue. Deleting cannot be undone from here, though re-saving the same URL restores the article. Use list_articles to find article IDs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"article_id": map[string]interface{}{
					"type":        "string",
					"description": "The article ID to update. Example: 'art_8f2k1x'",
				},
				"action": map[string]interface{}{
					"type":        "string",
					"description": "What to do with the article: 'read' marks it as read, 'delete' removes it.",
					"enum":        []string{"read", "delete"},
				},
			},
			Required: []string{"article_id", "action"},
		},
	}
	s.mcpServer.AddTool(tool, guard(s.handleUpdateArticleStatus))
}

func (s *Server) registerSaveArticleTool() {
	tool := mcp.Tool{
		Name:        "save_article",
		Description: "Save a new article to the CuraQ queue by URL. The backend fetches the page, generates an AI summary and tags, and estimates reading time. Optionally provide a title override, or the page content as markdown when the URL is not publicly reachable.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The address of the page to save. Example: 'https://example.com/post'",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Optional title override. If omitted, the backend extracts one from the page.",
				},
				"markdown": map[string]interface{}{
					"type":        "string",
					"description": "Optional page content as markdown, for pages the backend cannot fetch itself.",
				},
			},
			Required: []string{"url"},
		},
	}
	s.mcpServer.AddTool(tool, guard(s.handleSaveArticle))
}

// Handler implementations. Every path returns a single text result;
// backend failures and validation failures are content, not protocol
// errors.

func (s *Server) handleListArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	limit := limitArg(args, "limit", defaultListLimit, maxListLimit)

	resp, err := s.client.ListArticles(ctx, limit)
	if err != nil {
		return mcp.NewToolResultText(render.TransportFailure(err)), nil
	}

	return mcp.NewToolResultText(render.ListArticles(resp.Status, resp.Body)), nil
}

func (s *Server) handleSearchArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query, ok := stringArg(args, "query")
	if !ok || query == "" {
		return mcp.NewToolResultText(msgQueryRequired), nil
	}

	// Unrecognized modes are forwarded, not rejected; anything that is
	// not exactly "keyword" gets semantic behavior.
	mode, _ := stringArg(args, "mode")
	effectiveMode := "semantic"
	if mode == "keyword" {
		effectiveMode = "keyword"
	}

	limit := limitArg(args, "limit", defaultSearchLimit, maxSearchLimit)

	resp, err := s.client.SearchArticles(ctx, query, mode, limit)
	if err != nil {
		return mcp.NewToolResultText(render.TransportFailure(err)), nil
	}

	return mcp.NewToolResultText(render.SearchArticles(query, effectiveMode, resp.Status, resp.Body)), nil
}

func (s *Server) handleGetArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id, ok := stringArg(args, "article_id")
	if !ok || id == "" {
		return mcp.NewToolResultText(msgArticleIDRequired), nil
	}

	resp, err := s.client.GetArticle(ctx, id)
	if err != nil {
		return mcp.NewToolResultText(render.TransportFailure(err)), nil
	}

	return mcp.NewToolResultText(render.ArticleDetail(id, resp.Status, resp.Body)), nil
}

func (s *Server) handleUpdateArticleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id, ok := stringArg(args, "article_id")
	if !ok || id == "" {
		return mcp.NewToolResultText(msgArticleIDRequired), nil
	}

	action, ok := stringArg(args, "action")
	if !ok || action == "" {
		return mcp.NewToolResultText(msgActionRequired), nil
	}

	var resp *api.Response
	var err error
	switch action {
	case "read":
		resp, err = s.client.MarkArticleRead(ctx, id)
	case "delete":
		resp, err = s.client.DeleteArticle(ctx, id)
	default:
		return mcp.NewToolResultText(fmt.Sprintf("Unsupported action %q. Use \"read\" to mark the article as read or \"delete\" to remove it.", action)), nil
	}
	if err != nil {
		return mcp.NewToolResultText(render.TransportFailure(err)), nil
	}

	return mcp.NewToolResultText(render.UpdateStatus(action, id, resp.Status, resp.Body)), nil
}

func (s *Server) handleSaveArticle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	pageURL, ok := stringArg(args, "url")
	if !ok || pageURL == "" {
		return mcp.NewToolResultText(msgURLRequired), nil
	}

	saveReq := api.SaveArticleRequest{URL: pageURL}
	if title, ok := stringArg(args, "title"); ok {
		saveReq.Title = &title
	}
	if markdown, ok := stringArg(args, "markdown"); ok {
		saveReq.Markdown = &markdown
	}

	resp, err := s.client.SaveArticle(ctx, saveReq)
	if err != nil {
		return mcp.NewToolResultText(render.TransportFailure(err)), nil
	}

	return mcp.NewToolResultText(render.SaveArticle(pageURL, resp.Status, resp.Body)), nil
}
