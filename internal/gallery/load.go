package gallery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/photoprism/gallery/internal/event"
	"github.com/photoprism/gallery/internal/meta"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// MaxManifestSize is the maximum size in bytes of a manifest fetched over http.
var MaxManifestSize int64 = 32 << 20

// Load reads the manifest from a file name or http(s) URL and returns the photo store.
// Nothing is retried, the caller's context is the only deadline.
func Load(ctx context.Context, source string) (*Store, error) {
	start := time.Now()

	data, err := fetch(ctx, source)

	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}

	m, err := meta.JSON(data, source)

	if err != nil {
		return nil, fmt.Errorf("gallery: %w", err)
	}

	s := NewStore(m.Photos, m.Raw, source)

	log.Infof("gallery: loaded %s from %s [%s]", english.Plural(s.Count(), "photo", "photos"), sanitize.Log(source), time.Since(start))

	event.Publish("gallery.loaded", event.Data{
		"count":  s.Count(),
		"hash":   s.Hash(),
		"source": source,
	})

	return s, nil
}

func fetch(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, fmt.Errorf("manifest source missing")
	}

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)

	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s returned %s", sanitize.Log(source), resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxManifestSize+1))

	if err != nil {
		return nil, err
	}

	if int64(len(data)) > MaxManifestSize {
		return nil, fmt.Errorf("manifest %s exceeds %s", sanitize.Log(source), humanize.IBytes(uint64(MaxManifestSize)))
	}

	return data, nil
}
