package gallery

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoprism/gallery/internal/config"
)

func writeTestJpeg(t *testing.T, fileName string, w, h int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(fileName), os.ModePerm))

	f, err := os.Create(fileName)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	require.NoError(t, f.Close())
}

func TestThumbs_Start(t *testing.T) {
	conf := config.NewTestConfig(t.TempDir())

	writeTestJpeg(t, filepath.Join(conf.FullPath(), "p1.jpg"), 1200, 800)
	writeTestJpeg(t, filepath.Join(conf.FullPath(), "trips", "p2.jpeg"), 300, 300)
	require.NoError(t, os.WriteFile(filepath.Join(conf.FullPath(), "README.txt"), []byte("skip me"), 0o644))

	w := NewThumbs(conf)

	t.Run("Create", func(t *testing.T) {
		result, err := w.Start(ThumbsOptionsDefault())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, 0, result.Failed)
		assert.FileExists(t, filepath.Join(conf.ThumbsPath(), "p1.jpg"))
		assert.FileExists(t, filepath.Join(conf.ThumbsPath(), "p2.jpeg"))
		assert.NoFileExists(t, filepath.Join(conf.ThumbsPath(), "README.txt"))
	})
	t.Run("UpToDate", func(t *testing.T) {
		result, err := w.Start(ThumbsOptionsDefault())

		require.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 2, result.Skipped)
	})
	t.Run("Outdated", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(filepath.Join(conf.FullPath(), "p1.jpg"), future, future))

		result, err := w.Start(ThumbsOptionsDefault())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})
	t.Run("Force", func(t *testing.T) {
		result, err := w.Start(ThumbsOptionsForce())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Created)
	})
	t.Run("NotAnImage", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(conf.FullPath(), "notes.png"), []byte("nope"), 0o644))

		result, err := w.Start(ThumbsOptionsDefault())

		require.NoError(t, err)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 3, result.Skipped)
		assert.NoFileExists(t, filepath.Join(conf.ThumbsPath(), "notes.png"))
	})
	t.Run("Corrupt", func(t *testing.T) {
		corrupt := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
		require.NoError(t, os.WriteFile(filepath.Join(conf.FullPath(), "corrupt.jpg"), corrupt, 0o644))

		result, err := w.Start(ThumbsOptionsDefault())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 3, result.Skipped)
	})
}

func TestThumbs_Errors(t *testing.T) {
	t.Run("MissingFolder", func(t *testing.T) {
		w := NewThumbs(config.NewTestConfig(t.TempDir()))

		_, err := w.Start(ThumbsOptionsDefault())
		assert.Error(t, err)
	})
	t.Run("ReadOnly", func(t *testing.T) {
		conf := config.NewTestConfig(t.TempDir())
		conf.Options().ReadOnly = true

		w := NewThumbs(conf)

		_, err := w.Start(ThumbsOptionsDefault())
		assert.EqualError(t, err, "thumbs: read-only mode enabled")
		assert.Error(t, w.Create("x.jpg"))
	})
}

func TestThumbs_Create(t *testing.T) {
	conf := config.NewTestConfig(t.TempDir())
	src := filepath.Join(conf.FullPath(), "upload.jpg")
	writeTestJpeg(t, src, 100, 50)

	w := NewThumbs(conf)

	require.NoError(t, w.Create(src))
	assert.FileExists(t, w.ThumbName(src))
	assert.Equal(t, filepath.Join(conf.ThumbsPath(), "upload.jpg"), w.ThumbName(src))
}

func TestThumbsOptions(t *testing.T) {
	opt := ThumbsOptionsDefault()
	assert.True(t, opt.SkipUnchanged())

	opt = ThumbsOptionsForce()
	assert.False(t, opt.SkipUnchanged())
}
