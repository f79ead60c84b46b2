package domain

// Document represents one corpus entry. Documents are immutable: they are
// created once at corpus load and live for the process lifetime.
type Document struct {
	// ID is the document's position in the corpus. Position defines
	// identity, so a reordered corpus invalidates previously issued IDs.
	ID int

	// Text is the raw document text as loaded.
	Text string

	// Tokens is the normalized token sequence, derived once by the
	// preprocessor and cached here.
	Tokens []string
}

// Corpus is an ordered sequence of documents. Order matters only because
// position is identity.
type Corpus []Document
