package meta

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/tidwall/gjson"

	"github.com/photoprism/gallery/internal/entity"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// Manifest represents a parsed photo manifest.
type Manifest struct {
	Photos entity.Photos
	Raw    []byte
}

// JSON parses a manifest document and returns the photos it contains.
func JSON(data []byte, sourceName string) (result Manifest, err error) {
	err = result.JSON(data, sourceName)

	return result, err
}

// JSON parses a manifest document into m.
func (m *Manifest) JSON(data []byte, sourceName string) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("metadata: %s in %s (json panic)\nstack: %s", e, sanitize.Log(sourceName), debug.Stack())
		}
	}()

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json in %s", sanitize.Log(sourceName))
	}

	doc := gjson.ParseBytes(data)

	var photos []byte

	switch {
	case doc.IsArray():
		photos = data
	case doc.IsObject() && doc.Get("photos").IsArray():
		photos = []byte(doc.Get("photos").Raw)
	default:
		log.Warnf("metadata: unknown json in %s", sanitize.Log(sourceName))
		return fmt.Errorf("unknown json in %s", sanitize.Log(sourceName))
	}

	var list entity.Photos

	if err = json.Unmarshal(photos, &list); err != nil {
		return fmt.Errorf("%s in %s", err, sanitize.Log(sourceName))
	}

	if list == nil {
		list = entity.Photos{}
	}

	m.Photos = list
	m.Raw = data

	return nil
}
