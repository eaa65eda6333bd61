// ABOUTME: Root Cobra command for the CuraQ MCP server
// ABOUTME: Loads environment configuration and serves the article tools on stdio

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/curaq/curaq-mcp/internal/api"
	"github.com/curaq/curaq-mcp/internal/config"
	"github.com/curaq/curaq-mcp/internal/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "curaq-mcp",
	Short: "MCP server for the CuraQ saved-article queue",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

This lets AI agents like Claude read and manage your CuraQ reading
queue: list unread articles, search them by keyword or meaning, fetch
summaries, mark articles read, delete them, and save new ones.

Configuration comes from the environment:
  CURAQ_MCP_TOKEN   API token from the CuraQ settings page (required)
  CURAQ_API_URL     backend base URL (default: https://curaq.app)

The server communicates via JSON-RPC on stdin/stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		api.UserAgent = "curaq-mcp/" + Version

		client := api.NewClient(cfg)
		server := mcp.NewServer(client, Version)

		// stdout carries the protocol, so the startup notice goes to stderr.
		faint := color.New(color.Faint).SprintFunc()
		fmt.Fprintln(os.Stderr, faint("Starting CuraQ MCP server (stdio)..."))

		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}
