package thumb

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// Open reads and decodes an image from disk.
func Open(fileName string) (img image.Image, format string, err error) {
	if fileName == "" {
		return nil, "", fmt.Errorf("filename missing")
	}

	data, err := os.ReadFile(fileName)

	if err != nil {
		return nil, "", err
	}

	if !filetype.IsImage(data) {
		return nil, "", fmt.Errorf("not an image")
	}

	return image.Decode(bytes.NewReader(data))
}

// Sniff returns the MIME type of a file based on its content, or an empty string if unknown.
func Sniff(fileName string) string {
	f, err := os.Open(fileName)

	if err != nil {
		return ""
	}

	defer f.Close()

	// 262 bytes are enough for all known signatures.
	head := make([]byte, 262)
	n, _ := f.Read(head)

	kind, err := filetype.Match(head[:n])

	if err != nil || kind == filetype.Unknown {
		return ""
	}

	return kind.MIME.Value
}
