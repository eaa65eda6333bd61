// ABOUTME: Tests for the root command
// ABOUTME: Verifies startup fails fast without the required token

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_MissingTokenIsFatal(t *testing.T) {
	t.Setenv("CURAQ_MCP_TOKEN", "")

	rootCmd.SetArgs([]string{})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CURAQ_MCP_TOKEN")
}

func TestRoot_Metadata(t *testing.T) {
	assert.Equal(t, "curaq-mcp", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "CURAQ_API_URL")
}
