// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusLoader: Supplies the ordered raw document corpus
//   - BlobStore: Opaque byte blob persistence for the serialized index
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TranslationProvider: External translation service. Without it, queries
//     are assumed to already be in the corpus language.
//   - TranslationCache: Persistent translation cache. Without it, every
//     translation goes to the provider.
//   - QueryLog: Records processed queries. Without it, nothing is logged.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driven
