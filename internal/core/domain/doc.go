// Package domain defines the core business entities for clir.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One corpus entry, identified by its position
//   - ScoredResult: A (document ID, cosine similarity) ranking entry
//   - SearchResponse: What the pipeline hands to the presentation layer
//   - Metrics: Retrieval quality figures for one evaluated query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
