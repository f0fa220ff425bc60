package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents an image file format.
type FileFormat string

const (
	FormatJpeg  FileFormat = "jpg"
	FormatPng   FileFormat = "png"
	FormatWebp  FileFormat = "webp"
	FormatJson  FileFormat = "json"
	FormatOther FileFormat = ""
)

// Extensions maps lowercase file extensions to formats.
var Extensions = map[string]FileFormat{
	".jpg":  FormatJpeg,
	".jpeg": FormatJpeg,
	".png":  FormatPng,
	".webp": FormatWebp,
	".json": FormatJson,
}

// GetFileFormat returns the format of a file based on its extension.
func GetFileFormat(fileName string) FileFormat {
	if f, ok := Extensions[strings.ToLower(filepath.Ext(fileName))]; ok {
		return f
	}

	return FormatOther
}

// IsImage returns true if the format is a supported gallery image.
func (f FileFormat) IsImage() bool {
	switch f {
	case FormatJpeg, FormatPng, FormatWebp:
		return true
	default:
		return false
	}
}

// FileExists returns true if a regular file exists at the path.
func FileExists(fileName string) bool {
	if fileName == "" {
		return false
	}

	info, err := os.Stat(fileName)

	return err == nil && !info.IsDir()
}

// PathExists returns true if a directory exists at the path.
func PathExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
