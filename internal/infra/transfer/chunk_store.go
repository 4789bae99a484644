package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ChunkStore persists upload chunks on disk, one directory per session token,
// and merges them into the final asset on completion.
type ChunkStore struct {
	root string
}

// NewChunkStore creates a chunk store rooted at the given directory.
func NewChunkStore(root string) *ChunkStore {
	return &ChunkStore{root: root}
}

func (c *ChunkStore) sessionDir(token string) string {
	return filepath.Join(c.root, token)
}

func (c *ChunkStore) chunkPath(token string, index int) string {
	return filepath.Join(c.sessionDir(token), fmt.Sprintf("chunk_%06d", index))
}

// SaveChunk writes one chunk to disk and returns its size. Rewriting an
// existing index overwrites the prior bytes, which keeps retries harmless.
func (c *ChunkStore) SaveChunk(token string, index int, reader io.Reader) (int64, error) {
	if err := os.MkdirAll(c.sessionDir(token), 0o750); err != nil {
		return 0, errors.Wrap(err, "failed to create session directory")
	}

	file, err := os.Create(c.chunkPath(token, index))
	if err != nil {
		return 0, errors.Wrap(err, "failed to create chunk file")
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		return 0, errors.Wrap(err, "failed to write chunk")
	}

	return written, nil
}

// Merge concatenates the session's chunks in index order into destPath. The
// merge goes through a temp file that is renamed only after every chunk copied
// and the total size matched, so a failed merge never leaves a partial asset
// behind.
func (c *ChunkStore) Merge(token string, totalChunks int, destPath string, expectedSize int64) (retErr error) {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
		return errors.Wrap(err, "failed to create asset directory")
	}

	tempPath := destPath + ".part"
	dest, err := os.Create(tempPath)
	if err != nil {
		return errors.Wrap(err, "failed to create merge target")
	}
	defer func() {
		dest.Close()
		if retErr != nil {
			os.Remove(tempPath)
		}
	}()

	var merged int64
	for index := 0; index < totalChunks; index++ {
		written, err := c.appendChunk(dest, token, index)
		if err != nil {
			return err
		}
		merged += written
	}

	if expectedSize > 0 && merged != expectedSize {
		return errors.Errorf("merged size %d does not match declared size %d", merged, expectedSize)
	}

	if err := dest.Close(); err != nil {
		return errors.Wrap(err, "failed to flush merged asset")
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		return errors.Wrap(err, "failed to move merged asset into place")
	}

	return nil
}

func (c *ChunkStore) appendChunk(dest io.Writer, token string, index int) (int64, error) {
	chunk, err := os.Open(c.chunkPath(token, index))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open chunk %d", index)
	}
	defer chunk.Close()

	written, err := io.Copy(dest, chunk)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to append chunk %d", index)
	}

	return written, nil
}

// Remove deletes the session's chunk directory. Idempotent.
func (c *ChunkStore) Remove(token string) error {
	if err := os.RemoveAll(c.sessionDir(token)); err != nil {
		return errors.Wrap(err, "failed to remove session chunks")
	}

	return nil
}
