package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []tcase{
		{
			name: "document",
			args: map[string]any{
				"site":   "https://www.jamesdawson.dev",
				"output": "server",
				"adapter": map[string]any{
					"kind":         "serverless",
					"webAnalytics": map[string]any{"enabled": true},
				},
				"integrations": []any{"mdx", "sitemap", "tailwind"},
			},
			expected: map[string]any{
				"site":                         "https://www.jamesdawson.dev",
				"output":                       "server",
				"adapter.kind":                 "serverless",
				"adapter.webAnalytics.enabled": true,
				"integrations":                 []any{"mdx", "sitemap", "tailwind"},
			},
			tokenizer: DotJoiner,
		},
		{
			name: "empty maps kept",
			args: map[string]any{
				"adapter": map[string]any{"options": map[string]any{}},
			},
			expected: map[string]any{
				"adapter.options": map[string]any{},
			},
			tokenizer: DotJoiner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Flatten(tt.args, tt.tokenizer))
		})
	}
}

type tcase struct {
	name      string
	args      map[string]any
	tokenizer func([]string) string
	expected  map[string]any
}
