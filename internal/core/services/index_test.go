package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clir-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

func TestIndexService_Build(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	svc := NewIndexService(loader, memory.NewBlobStore(), "english")

	info, err := svc.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, info.DocumentCount)
	assert.Greater(t, info.VocabularySize, 0)

	docs := svc.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, 0, docs[0].ID)
	assert.Equal(t, testCorpus()[0], docs[0].Text)
}

func TestIndexService_BuildEmptyCorpus(t *testing.T) {
	loader := &mockLoader{docs: nil}
	svc := NewIndexService(loader, memory.NewBlobStore(), "english")

	_, err := svc.Build(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestIndexService_LoadRestoresPersistedIndex(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	blobs := memory.NewBlobStore()
	ctx := context.Background()

	first := NewIndexService(loader, blobs, "english")
	_, err := first.Build(ctx)
	require.NoError(t, err)

	// A fresh service over the same blob store restores without building.
	second := NewIndexService(loader, blobs, "english")
	info, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, info.DocumentCount)

	idx1, err := first.Index(ctx)
	require.NoError(t, err)
	idx2, err := second.Index(ctx)
	require.NoError(t, err)

	query := []string{"capit", "india"}
	r1, err := idx1.Search(query, 3)
	require.NoError(t, err)
	r2, err := idx2.Search(query, 3)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "restored index must rank identically")
}

func TestIndexService_LoadWithoutBlobBuilds(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	svc := NewIndexService(loader, memory.NewBlobStore(), "english")

	info, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, info.DocumentCount)
}

func TestIndexService_LoadRebuildsOnCorpusChange(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	blobs := memory.NewBlobStore()
	ctx := context.Background()

	svc := NewIndexService(loader, blobs, "english")
	_, err := svc.Build(ctx)
	require.NoError(t, err)

	// Grow the corpus behind the persisted index.
	loader.docs = append(testCorpus(), "The Ganges river flows through northern India")

	fresh := NewIndexService(loader, blobs, "english")
	info, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, info.DocumentCount)
	assert.Len(t, fresh.Documents(), 4)
}

func TestIndexService_LoadRebuildsOnCorruptBlob(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	blobs := memory.NewBlobStore()
	ctx := context.Background()

	require.NoError(t, blobs.Put(ctx, IndexBlobKey, []byte("not an index")))

	svc := NewIndexService(loader, blobs, "english")
	info, err := svc.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, info.DocumentCount)
}

func TestIndexService_IndexLazyLoads(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	svc := NewIndexService(loader, memory.NewBlobStore(), "english")

	idx, err := svc.Index(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, idx.DocCount())
	assert.Equal(t, 1, loader.loadCalls)
}

func TestIndexService_NilBlobStore(t *testing.T) {
	loader := &mockLoader{docs: testCorpus()}
	svc := NewIndexService(loader, nil, "english")

	info, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, info.DocumentCount)
}
