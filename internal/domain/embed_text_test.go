package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatEmbedText(t *testing.T) {
	tests := map[string]struct {
		fields   EmbedFields
		expected string
	}{
		"name-and-description-only": {
			fields:   EmbedFields{Name: "Weather Bot", Description: "Reports the weather"},
			expected: "Weather Bot\n\nReports the weather",
		},
		"empty-description-is-kept": {
			fields:   EmbedFields{Name: "Weather Bot", MCPTools: []string{"forecast"}},
			expected: "Weather Bot\n\n\n\nMCP Tools: forecast",
		},
		"all-fields-in-fixed-order": {
			fields: EmbedFields{
				Name:         "Agent",
				Description:  "Does things",
				OutputModes:  []string{"text"},
				InputModes:   []string{"text", "image"},
				A2ASkills:    []string{"translate"},
				MCPResources: []string{"docs://readme"},
				MCPPrompts:   []string{"summarize"},
				MCPTools:     []string{"search", "fetch"},
			},
			expected: "Agent\n\nDoes things\n\n" +
				"MCP Tools: fetch, search\n\n" +
				"MCP Prompts: summarize\n\n" +
				"MCP Resources: docs://readme\n\n" +
				"A2A Skills: translate\n\n" +
				"Input modes: image, text\n\n" +
				"Output modes: text",
		},
		"duplicates-removed": {
			fields: EmbedFields{
				Name:      "Agent",
				A2ASkills: []string{"b", "a", "b", "a"},
			},
			expected: "Agent\n\n\n\nA2A Skills: a, b",
		},
		"byte-order-sort": {
			fields: EmbedFields{
				Name:     "Agent",
				MCPTools: []string{"b", "B", "a", "_x"},
			},
			expected: "Agent\n\n\n\nMCP Tools: B, _x, a, b",
		},
		"empty-lists-skipped": {
			fields: EmbedFields{
				Name:        "Agent",
				Description: "desc",
				MCPTools:    []string{},
				OutputModes: []string{"json"},
			},
			expected: "Agent\n\ndesc\n\nOutput modes: json",
		},
		"all-empty": {
			fields:   EmbedFields{},
			expected: "\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEmbedText(tt.fields))
		})
	}
}

func TestFormatEmbedText_Deterministic(t *testing.T) {
	a := EmbedFields{
		Name:         "Agent",
		Description:  "desc",
		MCPTools:     []string{"c", "a", "b"},
		MCPPrompts:   []string{"p2", "p1"},
		MCPResources: []string{"r"},
		A2ASkills:    []string{"s1", "s2", "s1"},
		InputModes:   []string{"text", "audio"},
		OutputModes:  []string{"text"},
	}
	b := EmbedFields{
		Name:         "Agent",
		Description:  "desc",
		MCPTools:     []string{"b", "c", "a", "a"},
		MCPPrompts:   []string{"p1", "p2", "p2"},
		MCPResources: []string{"r", "r"},
		A2ASkills:    []string{"s2", "s1"},
		InputModes:   []string{"audio", "text"},
		OutputModes:  []string{"text", "text"},
	}

	assert.Equal(t, FormatEmbedText(a), FormatEmbedText(b))
}

func TestFormatEmbedText_DoesNotMutateInput(t *testing.T) {
	tools := []string{"z", "a", "z"}
	FormatEmbedText(EmbedFields{Name: "Agent", MCPTools: tools})
	assert.Equal(t, []string{"z", "a", "z"}, tools)
}

func TestFormatEmbedText_Truncation(t *testing.T) {
	tests := map[string]struct {
		description string
		wantLen     int
	}{
		"under-limit": {
			description: strings.Repeat("a", 100),
			wantLen:     len("Agent\n\n") + 100,
		},
		"exactly-limit": {
			description: strings.Repeat("a", MaxEmbedTextLength-len("Agent\n\n")),
			wantLen:     MaxEmbedTextLength,
		},
		"over-limit": {
			description: strings.Repeat("a", MaxEmbedTextLength*2),
			wantLen:     MaxEmbedTextLength,
		},
		"multibyte-over-limit": {
			description: strings.Repeat("é", MaxEmbedTextLength),
			wantLen:     MaxEmbedTextLength,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := FormatEmbedText(EmbedFields{Name: "Agent", Description: tt.description})
			assert.Equal(t, tt.wantLen, utf8.RuneCountInString(got))
			assert.True(t, utf8.ValidString(got))
			assert.True(t, strings.HasPrefix(got, "Agent\n\n"))
			assert.False(t, strings.HasSuffix(got, "..."))
		})
	}
}

func TestFormatEmbedTextParts(t *testing.T) {
	got := FormatEmbedTextParts(
		"Agent",
		"desc",
		[]string{"tool-b", "tool-a"},
		[]string{"skill"},
		[]string{"text"},
		nil,
	)

	expected := FormatEmbedText(EmbedFields{
		Name:        "Agent",
		Description: "desc",
		MCPTools:    []string{"tool-a", "tool-b"},
		A2ASkills:   []string{"skill"},
		InputModes:  []string{"text"},
	})
	assert.Equal(t, expected, got)
	assert.NotContains(t, got, "MCP Prompts")
	assert.NotContains(t, got, "MCP Resources")
	assert.NotContains(t, got, "Output modes")
}
