package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	dibkb "github.com/dibkb/dibkb-scraper"
	"github.com/dibkb/dibkb-scraper/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	t.Parallel()

	t.Run("same content hashes identically", func(t *testing.T) {
		t.Parallel()

		a := fs.ContentHash("<html><body>page</body></html>")
		b := fs.ContentHash("<html><body>page</body></html>")
		assert.Equal(t, a, b)
	})

	t.Run("different content hashes differently", func(t *testing.T) {
		t.Parallel()

		a := fs.ContentHash("<html>one</html>")
		b := fs.ContentHash("<html>two</html>")
		assert.NotEqual(t, a, b)
	})

	t.Run("digest is 16 hex characters", func(t *testing.T) {
		t.Parallel()

		h := fs.ContentHash("content")
		assert.Len(t, h, 16)
	})
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ dibkb.DumpWriter = &fs.Writer{}
}

func TestWriter_WriteDump(t *testing.T) {
	t.Parallel()

	t.Run("writes dump to <name>.html under base dir", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		dump, err := w.WriteDump(context.Background(), "B0ABCDEFGH", "<html><body>product</body></html>")
		require.NoError(t, err)

		assert.Equal(t, "B0ABCDEFGH", dump.Name)
		assert.Equal(t, filepath.Join(baseDir, "B0ABCDEFGH.html"), dump.Path)
		assert.Equal(t, fs.ContentHash("<html><body>product</body></html>"), dump.ContentHash)

		content, err := os.ReadFile(dump.Path)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>product</body></html>", string(content))
	})

	t.Run("creates base directory if missing", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "dumps", "nested")
		w := fs.NewWriter(baseDir)

		dump, err := w.WriteDump(context.Background(), "B0ABCDEFGH", "<html></html>")
		require.NoError(t, err)

		_, err = os.Stat(dump.Path)
		require.NoError(t, err)
	})

	t.Run("overwrites an existing dump for the same name", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		_, err := w.WriteDump(context.Background(), "B0ABCDEFGH", "<html>old</html>")
		require.NoError(t, err)

		dump, err := w.WriteDump(context.Background(), "B0ABCDEFGH", "<html>new</html>")
		require.NoError(t, err)

		content, err := os.ReadFile(dump.Path)
		require.NoError(t, err)
		assert.Equal(t, "<html>new</html>", string(content))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteDump(context.Background(), "", "<html></html>")
		require.Error(t, err)
		assert.Equal(t, dibkb.EINVALID, dibkb.ErrorCode(err))
	})

	t.Run("rejects name with path separators", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteDump(context.Background(), "../escape", "<html></html>")
		require.Error(t, err)
		assert.Equal(t, dibkb.EINVALID, dibkb.ErrorCode(err))
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteDump(context.Background(), "B0ABCDEFGH", "")
		require.Error(t, err)
		assert.Equal(t, dibkb.EINVALID, dibkb.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := w.WriteDump(ctx, "B0ABCDEFGH", "<html></html>")
		require.Error(t, err)
	})
}
