package modelrunner

import (
	"fmt"
	"strings"
)

// PromptFormatter wraps canonical agent text in the document prefix a given
// embedding model was trained with.
type PromptFormatter interface {
	FormatDocument(text string) string
}

// promptFormatterFor returns the PromptFormatter for model.
func promptFormatterFor(model string) PromptFormatter {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaPrompts{}
	}
	return plainPrompts{}
}

// gemmaPrompts follows the retrieval prompt format of the Gemma embedding models.
type gemmaPrompts struct{}

func (gemmaPrompts) FormatDocument(text string) string {
	return fmt.Sprintf("title: none | text: %s", text)
}

// plainPrompts sends the text unchanged.
type plainPrompts struct{}

func (plainPrompts) FormatDocument(text string) string { return text }
