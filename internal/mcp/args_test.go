// ABOUTME: Tests for argument-bag extraction helpers
// ABOUTME: Covers the leniency policy for optional numbers and strict strings

package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringArg(t *testing.T) {
	args := map[string]any{
		"present": "value",
		"empty":   "",
		"number":  42.0,
		"boolean": true,
	}

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{"present string", "present", "value", true},
		{"empty string is still a string", "empty", "", true},
		{"number is not a string", "number", "", false},
		{"boolean is not a string", "boolean", "", false},
		{"absent key", "missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringArg(args, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLimitArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"absent uses default", map[string]any{}, 20},
		{"json number", map[string]any{"limit": 35.0}, 35},
		{"plain int", map[string]any{"limit": 35}, 35},
		{"above cap", map[string]any{"limit": 999.0}, 50},
		{"negative falls back", map[string]any{"limit": -5.0}, 20},
		{"zero falls back", map[string]any{"limit": 0.0}, 20},
		{"string falls back", map[string]any{"limit": "ten"}, 20},
		{"bool falls back", map[string]any{"limit": true}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, limitArg(tt.args, "limit", 20, 50))
		})
	}
}
