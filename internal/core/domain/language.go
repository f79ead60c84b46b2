package domain

// LangAuto asks the translation provider to detect the source language.
const LangAuto = "auto"

// Translation is one cached translation cache entry. The key triple
// (Text, SourceLang, TargetLang) maps to the same TranslatedText forever:
// entries are appended, never invalidated.
type Translation struct {
	// Text is the original text that was translated.
	Text string `json:"text"`

	// SourceLang is the source language hint the caller supplied,
	// possibly LangAuto.
	SourceLang string `json:"source_lang"`

	// TargetLang is the explicit target language.
	TargetLang string `json:"target_lang"`

	// TranslatedText is the provider's translation.
	TranslatedText string `json:"translated_text"`

	// CreatedAtUnix is when the entry was first written, in Unix seconds.
	CreatedAtUnix int64 `json:"created_at_unix"`
}

// QueryLogEntry records one processed query for later inspection.
type QueryLogEntry struct {
	// ID is a unique identifier for the entry.
	ID string `json:"id"`

	// Query is the raw query as typed.
	Query string `json:"query"`

	// TranslatedQuery is the query after translation.
	TranslatedQuery string `json:"translated_query"`

	// ResultCount is how many documents were returned.
	ResultCount int `json:"result_count"`

	// CreatedAtUnix is when the query ran, in Unix seconds.
	CreatedAtUnix int64 `json:"created_at_unix"`
}
