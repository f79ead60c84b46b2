package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates an index build was attempted over zero documents.
	// This is fatal at build time: no vocabulary can be derived.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrTranslationUnavailable indicates the external translation provider
	// could not be reached or returned an error. The pipeline is the only
	// layer that decides whether to fall back to the untranslated query.
	ErrTranslationUnavailable = errors.New("translation unavailable")

	// ErrUnknownLanguage indicates a language code the system has no
	// resources for. Preprocessing and translation fall back to defaults
	// rather than failing on it.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidParameter indicates a caller-supplied parameter outside its
	// valid range, e.g. a non-positive top-k. Rejected immediately, never
	// coerced. A top-k larger than the corpus is NOT an error and is
	// clamped to the corpus size instead.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrIndexNotBuilt indicates a search was attempted before any index
	// was built or loaded.
	ErrIndexNotBuilt = errors.New("index not built")
)
