package transfer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"taxiads/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(token string) *entity.UploadSession {
	now := time.Now()

	return &entity.UploadSession{
		Token:           token,
		AdvertisementID: "ad-1",
		Name:            "Summer promo",
		Filename:        "promo.mp4",
		TotalSize:       12,
		ChunkSize:       4,
		TotalChunks:     3,
		Received:        make(map[int]struct{}),
		Status:          entity.UploadStatusReceiving,
		CreatedAt:       now,
		LastActivityAt:  now,
	}
}

func TestSessionStore_MarkReceivedIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()
	store.Put(newTestSession("tok-1"))

	count, ok := store.MarkReceived("tok-1", 0)
	require.True(t, ok)
	assert.Equal(t, 1, count)

	// Re-sending the same chunk must not inflate the received count.
	count, ok = store.MarkReceived("tok-1", 0)
	require.True(t, ok)
	assert.Equal(t, 1, count)

	count, ok = store.MarkReceived("tok-1", 2)
	require.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestSessionStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()
	store.Put(newTestSession("tok-1"))

	session, ok := store.Get("tok-1")
	require.True(t, ok)

	// Mutating the copy must not leak into the store.
	session.Received[1] = struct{}{}

	fresh, ok := store.Get("tok-1")
	require.True(t, ok)
	assert.Empty(t, fresh.Received)
}

func TestSessionStore_PurgeIdle(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()

	stale := newTestSession("tok-stale")
	stale.LastActivityAt = time.Now().Add(-time.Hour)
	store.Put(stale)

	merging := newTestSession("tok-merging")
	merging.Status = entity.UploadStatusCompleting
	merging.LastActivityAt = time.Now().Add(-time.Hour)
	store.Put(merging)

	fresh := newTestSession("tok-fresh")
	store.Put(fresh)

	purged := store.PurgeIdle(30 * time.Minute)
	require.Len(t, purged, 1)
	assert.Equal(t, "tok-stale", purged[0].Token)

	_, ok := store.Get("tok-stale")
	assert.False(t, ok)
	_, ok = store.Get("tok-merging")
	assert.True(t, ok)
	_, ok = store.Get("tok-fresh")
	assert.True(t, ok)
}

func TestChunkStore_SaveAndMerge(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewChunkStore(filepath.Join(root, "uploads"))

	chunks := [][]byte{[]byte("aaaa"), []byte("bbbb"), []byte("cc")}
	for index, chunk := range chunks {
		written, err := store.SaveChunk("tok-1", index, bytes.NewReader(chunk))
		require.NoError(t, err)
		assert.Equal(t, int64(len(chunk)), written)
	}

	destPath := filepath.Join(root, "videos", "promo.mp4")
	require.NoError(t, store.Merge("tok-1", len(chunks), destPath, 10))

	merged, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbbcc", string(merged))
}

func TestChunkStore_SaveChunkOverwriteKeepsRetriesHarmless(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewChunkStore(root)

	_, err := store.SaveChunk("tok-1", 0, bytes.NewReader([]byte("old")))
	require.NoError(t, err)
	_, err = store.SaveChunk("tok-1", 0, bytes.NewReader([]byte("new")))
	require.NoError(t, err)

	destPath := filepath.Join(root, "merged.bin")
	require.NoError(t, store.Merge("tok-1", 1, destPath, 3))

	merged, err := os.ReadFile(destPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(merged))
}

func TestChunkStore_MergeSizeMismatchLeavesNoPartialAsset(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewChunkStore(root)

	_, err := store.SaveChunk("tok-1", 0, bytes.NewReader([]byte("abcd")))
	require.NoError(t, err)

	destPath := filepath.Join(root, "videos", "promo.mp4")
	err = store.Merge("tok-1", 1, destPath, 999)
	require.Error(t, err)

	_, statErr := os.Stat(destPath)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(destPath + ".part")
	assert.True(t, os.IsNotExist(statErr))
}

func TestChunkStore_MergeMissingChunkFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewChunkStore(root)

	_, err := store.SaveChunk("tok-1", 0, bytes.NewReader([]byte("abcd")))
	require.NoError(t, err)

	// Chunk 1 was never uploaded.
	err = store.Merge("tok-1", 2, filepath.Join(root, "out.bin"), 0)
	require.Error(t, err)
}

func TestChunkStore_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewChunkStore(root)

	_, err := store.SaveChunk("tok-1", 0, bytes.NewReader([]byte("abcd")))
	require.NoError(t, err)

	require.NoError(t, store.Remove("tok-1"))
	require.NoError(t, store.Remove("tok-1"))
}
