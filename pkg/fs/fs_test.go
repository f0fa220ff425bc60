package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytes(t *testing.T) {
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", HashBytes([]byte("abc")))
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", HashBytes(nil))
	assert.NotEqual(t, HashBytes([]byte("a")), HashBytes([]byte("b")))
}

func TestGetFileFormat(t *testing.T) {
	assert.Equal(t, FormatJpeg, GetFileFormat("lake.JPEG"))
	assert.Equal(t, FormatPng, GetFileFormat("a/b/c.png"))
	assert.Equal(t, FormatWebp, GetFileFormat("x.webp"))
	assert.Equal(t, FormatOther, GetFileFormat("notes.txt"))
	assert.True(t, FormatWebp.IsImage())
	assert.False(t, FormatJson.IsImage())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "a.jpg")
	assert.NoError(t, os.WriteFile(fileName, []byte("x"), 0o644))

	assert.True(t, FileExists(fileName))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(""))
	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(fileName))
}
