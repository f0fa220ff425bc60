package gallery

import (
	"path/filepath"
	"strings"

	"github.com/photoprism/gallery/internal/thumb"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// ThumbJob describes one thumbnail to be created.
type ThumbJob struct {
	src    string
	dst    string
	opt    thumb.Options
	result chan<- error
}

// ThumbsWorker creates thumbnails until the jobs channel is closed.
func ThumbsWorker(jobs <-chan ThumbJob) {
	for job := range jobs {
		if job.src == "" || job.dst == "" {
			continue
		}

		err := thumb.Create(job.src, job.dst, job.opt)

		if err != nil {
			log.Errorf("thumbs: %s for %s", strings.TrimSpace(err.Error()), sanitize.Log(filepath.Base(job.src)))
		} else {
			log.Infof("thumbs: %s -> thumbs/%s", sanitize.Log(filepath.Base(job.src)), sanitize.Log(filepath.Base(job.dst)))
		}

		if job.result != nil {
			job.result <- err
		}
	}
}
