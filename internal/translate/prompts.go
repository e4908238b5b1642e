package translate

import "fmt"

// GetTranslatePrompt builds the system prompt for chat-completion
// providers. The prompt pins down the two things models tend to break:
// output must be the bare translation, and HTML markup must be preserved.
func GetTranslatePrompt(targetLang string, format Format) string {
	base := fmt.Sprintf(
		"You are a professional translator. Translate the user's text into the language with ISO 639-1 code %q. "+
			"Output only the translation, with no explanations, notes, or quotation marks.",
		targetLang,
	)
	if format == FormatHTML {
		base += " The text is HTML. Preserve every tag, attribute, and entity exactly as given and translate only the human-readable text between tags."
	}
	return base
}
