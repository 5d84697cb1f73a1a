package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// EmbedTextFormatVersion identifies the layout produced by FormatEmbedText.
	// Bump it whenever the output changes so stored embeddings can be refreshed.
	EmbedTextFormatVersion = "2"

	// MaxEmbedTextLength is the maximum number of characters sent to the embedding model.
	MaxEmbedTextLength = 30000

	embedSectionSeparator = "\n\n"
	embedValueSeparator   = ", "
)

// EmbedFields holds the agent attributes that take part in the embedding text.
type EmbedFields struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MCPTools     []string `json:"mcpTools,omitempty"`
	MCPPrompts   []string `json:"mcpPrompts,omitempty"`
	MCPResources []string `json:"mcpResources,omitempty"`
	A2ASkills    []string `json:"a2aSkills,omitempty"`
	InputModes   []string `json:"inputModes,omitempty"`
	OutputModes  []string `json:"outputModes,omitempty"`
}

// FormatEmbedText renders fields as deterministic embedding text.
//
// Name and description always lead. Each non-empty list is deduplicated, sorted and
// emitted as a labelled line in a fixed order, so two agents that differ only in list
// order or duplicates produce identical text. The result is cut to MaxEmbedTextLength
// characters.
func FormatEmbedText(fields EmbedFields) string {
	sections := []string{fields.Name, fields.Description}

	labelled := []struct {
		label  string
		values []string
	}{
		{"MCP Tools", fields.MCPTools},
		{"MCP Prompts", fields.MCPPrompts},
		{"MCP Resources", fields.MCPResources},
		{"A2A Skills", fields.A2ASkills},
		{"Input modes", fields.InputModes},
		{"Output modes", fields.OutputModes},
	}
	for _, l := range labelled {
		if len(l.values) == 0 {
			continue
		}
		joined := strings.Join(NewStringSet(l.values...).Sorted(), embedValueSeparator)
		sections = append(sections, l.label+": "+joined)
	}

	return truncateRunes(strings.Join(sections, embedSectionSeparator), MaxEmbedTextLength)
}

// FormatEmbedTextParts is the positional form of FormatEmbedText kept for callers
// that predate MCP prompts and resources.
func FormatEmbedTextParts(name, description string, mcpTools, a2aSkills, inputModes, outputModes []string) string {
	return FormatEmbedText(EmbedFields{
		Name:        name,
		Description: description,
		MCPTools:    mcpTools,
		A2ASkills:   a2aSkills,
		InputModes:  inputModes,
		OutputModes: outputModes,
	})
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
