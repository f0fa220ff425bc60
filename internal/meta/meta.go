/*
Package meta parses gallery manifest documents.

A manifest is either a bare JSON array of photo records or an object with a
"photos" array. Absent optional fields default to empty values.
*/
package meta

import (
	"github.com/photoprism/gallery/internal/event"
)

var log = event.Log
