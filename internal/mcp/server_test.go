// ABOUTME: Tests for server construction and tool discovery
// ABOUTME: Verifies the five descriptors, their schemas, and stable ordering

package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaq/curaq-mcp/internal/api"
	"github.com/curaq/curaq-mcp/internal/config"
)

func listTools(t *testing.T, s *Server) []mcp.Tool {
	t.Helper()

	raw := s.mcpServer.HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`,
	))
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var resp struct {
		Result struct {
			Tools []mcp.Tool `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp.Result.Tools
}

func discoveryServer(t *testing.T) *Server {
	t.Helper()
	client := api.NewClient(&config.Config{Token: "test-token", APIURL: "http://127.0.0.1:0"})
	return NewServer(client, "test")
}

func TestToolDiscovery_FiveToolsStableOrder(t *testing.T) {
	s := discoveryServer(t)

	// tools/list returns tools sorted by name.
	want := []string{
		"get_article",
		"list_articles",
		"save_article",
		"search_articles",
		"update_article_status",
	}

	first := listTools(t, s)
	require.Len(t, first, 5)
	for i, tool := range first {
		assert.Equal(t, want[i], tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	// Discovery is deterministic across requests.
	second := listTools(t, s)
	require.Len(t, second, 5)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}

func TestToolDiscovery_RequiredParameters(t *testing.T) {
	s := discoveryServer(t)

	required := map[string][]string{
		"list_articles":         nil,
		"search_articles":       {"query"},
		"get_article":           {"article_id"},
		"update_article_status": {"article_id", "action"},
		"save_article":          {"url"},
	}

	for _, tool := range listTools(t, s) {
		assert.ElementsMatch(t, required[tool.Name], tool.InputSchema.Required, "tool %s", tool.Name)
	}
}

func TestToolDiscovery_ActionEnum(t *testing.T) {
	s := discoveryServer(t)

	for _, tool := range listTools(t, s) {
		if tool.Name != "update_article_status" {
			continue
		}
		prop, ok := tool.InputSchema.Properties["action"].(map[string]interface{})
		require.True(t, ok, "action property must be an object schema")
		assert.Contains(t, prop, "enum")
		return
	}
	t.Fatal("update_article_status tool not found")
}
