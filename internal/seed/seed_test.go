package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alucardeht/braze-mcp/internal/config"
	"github.com/alucardeht/braze-mcp/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNotesEmptySeedDirIsNoop(t *testing.T) {
	st := newTestStore(t)

	n, err := Notes(st, config.NotesConfig{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNotesLoadsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep.md"), []byte("nested"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.bin"), []byte{0x00, 0x01}, 0o644))

	st := newTestStore(t)
	n, err := Notes(st, config.NotesConfig{
		SeedDir: dir,
		Include: []string{"**/*.txt", "**/*.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := st.GetNote("welcome")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	content, err = st.GetNote("deep")
	require.NoError(t, err)
	assert.Equal(t, "nested", content)

	_, err = st.GetNote("ignore")
	assert.Error(t, err)
}

func TestDecodeText(t *testing.T) {
	// Plain UTF-8 passes through.
	out, err := DecodeText([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", out)

	// UTF-8 BOM is stripped.
	out, err = DecodeText(append([]byte{0xEF, 0xBB, 0xBF}, []byte("bom")...))
	require.NoError(t, err)
	assert.Equal(t, "bom", out)

	// UTF-16 LE with BOM.
	out, err = DecodeText([]byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	// UTF-16 BE with BOM.
	out, err = DecodeText([]byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'})
	require.NoError(t, err)
	assert.Equal(t, "hi", out)

	// Invalid UTF-8 falls back to Latin-1.
	out, err = DecodeText([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", out)
}
