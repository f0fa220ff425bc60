package thumb

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/photoprism/gallery/pkg/fs"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// Options configure thumbnail creation.
type Options struct {
	MaxWidth int
	Quality  int
}

// DefaultOptions returns the default thumbnail options.
func DefaultOptions() Options {
	return Options{MaxWidth: MaxWidth, Quality: JpegQuality}
}

// Create writes a thumbnail of src to dst. WebP images are copied, as there is no encoder for them.
func Create(src, dst string, opt Options) error {
	if opt.MaxWidth <= 0 {
		opt.MaxWidth = MaxWidth
	}

	if opt.Quality <= 0 || opt.Quality > 100 {
		opt.Quality = JpegQuality
	}

	format := fs.GetFileFormat(dst)

	if !format.IsImage() {
		return fmt.Errorf("thumb: unsupported format %s", sanitize.Log(filepath.Ext(dst)))
	}

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}

	if format == fs.FormatWebp {
		log.Debugf("thumb: copying %s", sanitize.Log(filepath.Base(src)))
		return copyFile(src, dst)
	}

	img, _, err := Open(src)

	if err != nil {
		return fmt.Errorf("thumb: %s in %s", err, sanitize.Log(filepath.Base(src)))
	}

	img = Resample(img, opt.MaxWidth)

	return save(img, dst, format, opt.Quality)
}

func save(img image.Image, dst string, format fs.FileFormat, quality int) error {
	f, err := os.Create(dst)

	if err != nil {
		return err
	}

	switch format {
	case fs.FormatJpeg:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	case fs.FormatPng:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(f, img)
	default:
		err = fmt.Errorf("thumb: can't encode %s", format)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(dst)
	}

	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)

	if err != nil {
		return err
	}

	defer in.Close()

	out, err := os.Create(dst)

	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
