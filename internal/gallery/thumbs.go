package gallery

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/djherbis/times"
	"github.com/karrick/godirwalk"

	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/thumb"
	"github.com/photoprism/gallery/pkg/fs"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// ThumbsResult counts the files handled by a thumbnail run.
type ThumbsResult struct {
	Created int
	Skipped int
	Failed  int
}

// Thumbs creates thumbnails for the full resolution gallery images.
type Thumbs struct {
	conf *config.Config
	mu   sync.Mutex
}

// NewThumbs returns a new thumbnail generator.
func NewThumbs(conf *config.Config) *Thumbs {
	return &Thumbs{conf: conf}
}

// Start walks the full resolution folder and creates missing or outdated thumbnails.
func (w *Thumbs) Start(opt ThumbsOptions) (result ThumbsResult, err error) {
	if w.conf.ReadOnly() {
		return result, errors.New("thumbs: read-only mode enabled")
	}

	// Only one run at a time.
	w.mu.Lock()
	defer w.mu.Unlock()

	fullPath := w.conf.FullPath()
	root := filepath.Join(fullPath, strings.Trim(opt.Path, "/"))

	if !fs.PathExists(root) {
		return result, fmt.Errorf("thumbs: folder %s not found", sanitize.Log(root))
	}

	if w.conf.ThumbsMissing() {
		log.Infof("thumbs: creating folder %s", sanitize.Log(w.conf.ThumbsPath()))
	}

	workers := opt.Workers

	if workers < 1 {
		workers = 1
	}

	jobs := make(chan ThumbJob)
	results := make(chan error)
	done := make(chan struct{})

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			ThumbsWorker(jobs)
			wg.Done()
		}()
	}

	go func() {
		for err := range results {
			if err != nil {
				result.Failed++
			} else {
				result.Created++
			}
		}

		close(done)
	}()

	thumbOpt := thumb.Options{MaxWidth: opt.MaxWidth, Quality: opt.Quality}

	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(fileName string, info *godirwalk.Dirent) error {
			if info.IsDir() || !fs.GetFileFormat(fileName).IsImage() {
				return nil
			}

			// Files named like images that aren't images are left alone.
			if !strings.HasPrefix(thumb.Sniff(fileName), "image/") {
				log.Debugf("thumbs: %s is not an image, skipped", sanitize.Log(filepath.Base(fileName)))
				result.Skipped++
				return nil
			}

			dst := w.ThumbName(fileName)

			if opt.SkipUnchanged() && upToDate(fileName, dst) {
				result.Skipped++
				return nil
			}

			jobs <- ThumbJob{src: fileName, dst: dst, opt: thumbOpt, result: results}

			return nil
		},
		Unsorted:            false,
		FollowSymbolicLinks: true,
	})

	close(jobs)
	wg.Wait()
	close(results)
	<-done

	return result, err
}

// Create creates a single thumbnail, e.g. after an upload.
func (w *Thumbs) Create(fileName string) error {
	if w.conf.ReadOnly() {
		return errors.New("thumbs: read-only mode enabled")
	}

	return thumb.Create(fileName, w.ThumbName(fileName), thumb.DefaultOptions())
}

// ThumbName returns the thumbnail file name, thumbnails use the same base name as the original.
func (w *Thumbs) ThumbName(fileName string) string {
	return filepath.Join(w.conf.ThumbsPath(), filepath.Base(fileName))
}

// upToDate tests if the thumbnail is at least as recent as the original.
func upToDate(src, dst string) bool {
	dstTimes, err := times.Stat(dst)

	if err != nil {
		return false
	}

	srcTimes, err := times.Stat(src)

	if err != nil {
		return false
	}

	return !dstTimes.ModTime().Before(srcTimes.ModTime())
}
