package fs

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashBytes returns the SHA1 hash of data as string.
func HashBytes(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}
