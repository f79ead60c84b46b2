package driven

import "context"

// TranslationProvider is the narrow interface over an external translation
// service. Implementations must distinguish "service unreachable" (an error
// wrapping domain.ErrTranslationUnavailable) from "no translation needed"
// (source equals target), which is not an error.
type TranslationProvider interface {
	// Detect returns the language code of the given text.
	Detect(ctx context.Context, text string) (string, error)

	// Translate converts text from source to target language. A source of
	// domain.LangAuto lets the provider detect it.
	Translate(ctx context.Context, text, source, target string) (string, error)
}
