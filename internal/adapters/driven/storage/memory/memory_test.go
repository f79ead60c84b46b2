package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

func TestTranslationCache_GetMiss(t *testing.T) {
	cache := NewTranslationCache()

	entry, ok, err := cache.Get(context.Background(), "hello", "auto", "en")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestTranslationCache_PutGet(t *testing.T) {
	cache := NewTranslationCache()
	ctx := context.Background()

	err := cache.Put(ctx, domain.Translation{
		Text:           "नमस्ते",
		SourceLang:     "auto",
		TargetLang:     "en",
		TranslatedText: "hello",
	})
	require.NoError(t, err)

	entry, ok, err := cache.Get(ctx, "नमस्ते", "auto", "en")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.TranslatedText)
}

func TestTranslationCache_AppendOnly(t *testing.T) {
	// A key written once keeps its first value forever.
	cache := NewTranslationCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.Translation{
		Text: "bonjour", SourceLang: "fr", TargetLang: "en", TranslatedText: "hello",
	}))
	require.NoError(t, cache.Put(ctx, domain.Translation{
		Text: "bonjour", SourceLang: "fr", TargetLang: "en", TranslatedText: "different",
	}))

	entry, ok, err := cache.Get(ctx, "bonjour", "fr", "en")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.TranslatedText)
	assert.Equal(t, 1, cache.Len())
}

func TestTranslationCache_KeyIncludesLanguages(t *testing.T) {
	cache := NewTranslationCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.Translation{
		Text: "pain", SourceLang: "fr", TargetLang: "en", TranslatedText: "bread",
	}))

	_, ok, err := cache.Get(ctx, "pain", "en", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobStore_GetMissing(t *testing.T) {
	store := NewBlobStore()

	_, err := store.Get(context.Background(), "tfidf/index")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_PutGetDelete(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tfidf/index", []byte{1, 2, 3}))

	data, err := store.Get(ctx, "tfidf/index")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	require.NoError(t, store.Delete(ctx, "tfidf/index"))
	_, err = store.Get(ctx, "tfidf/index")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "tfidf/index"))
}

func TestBlobStore_GetReturnsCopy(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "blob", []byte{1, 2, 3}))

	data, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	data[0] = 99

	again, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, byte(1), again[0])
}

func TestQueryLog_AppendRecent(t *testing.T) {
	log := NewQueryLog()
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, domain.QueryLogEntry{ID: "a", Query: "first", CreatedAtUnix: 100}))
	require.NoError(t, log.Append(ctx, domain.QueryLogEntry{ID: "b", Query: "second", CreatedAtUnix: 200}))
	require.NoError(t, log.Append(ctx, domain.QueryLogEntry{ID: "c", Query: "third", CreatedAtUnix: 300}))

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}
