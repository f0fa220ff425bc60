package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/webdav"

	"github.com/photoprism/gallery/internal/auto"
	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/pkg/fs"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// WebDAVFull is the WebDAV path of the full resolution image folder.
const WebDAVFull = "/webdav"

// SetFileTime sets the modification time of an uploaded file from a unix milliseconds header value.
func SetFileTime(fileName string, tHeader string) {
	if msec, err := strconv.ParseInt(tHeader, 10, 64); err != nil {
		log.Errorf("webdav: parse file time error %s", err.Error())
	} else {
		t := time.UnixMilli(msec)
		if err = os.Chtimes(fileName, t, t); err != nil {
			log.Errorf("webdav: change file time error: %v", err)
		}
	}
}

// WebDAV handles any requests to /webdav/*
func WebDAV(path string, router *gin.RouterGroup, conf *config.Config) {
	if router == nil {
		log.Error("webdav: router is nil")
		return
	}

	if conf == nil {
		log.Error("webdav: conf is nil")
		return
	}

	if !conf.ReadOnly() {
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			log.Errorf("webdav: %s", err)
		}
	}

	srv := &webdav.Handler{
		Prefix:     router.BasePath(),
		FileSystem: webdav.Dir(path),
		LockSystem: webdav.NewMemLS(),
		Logger: func(r *http.Request, err error) {
			if err != nil {
				switch r.Method {
				case MethodPut, MethodPost, MethodPatch, MethodDelete, MethodCopy, MethodMove:
					log.Errorf("webdav: %s in %s %s", sanitize.Log(err.Error()), sanitize.Log(r.Method), sanitize.Log(r.URL.String()))
				case MethodPropfind:
					log.Tracef("webdav: %s in %s %s", sanitize.Log(err.Error()), sanitize.Log(r.Method), sanitize.Log(r.URL.String()))
				default:
					log.Debugf("webdav: %s in %s %s", sanitize.Log(err.Error()), sanitize.Log(r.Method), sanitize.Log(r.URL.String()))
				}

				return
			}

			fileName := filepath.Join(path, filepath.FromSlash(strings.TrimPrefix(r.URL.Path, router.BasePath())))

			switch r.Method {
			case MethodPut, MethodPost, MethodPatch, MethodCopy, MethodMove:
				log.Infof("webdav: %s %s", sanitize.Log(r.Method), sanitize.Log(r.URL.String()))

				if r.Header.Get("X-Gallery-Time") != "" {
					SetFileTime(fileName, r.Header.Get("X-Gallery-Time"))
				}

				if r.Method == MethodPut && fs.GetFileFormat(fileName).IsImage() {
					auto.ShouldThumb(fileName)
				}
			case MethodDelete:
				log.Infof("webdav: %s %s", sanitize.Log(r.Method), sanitize.Log(r.URL.String()))
			default:
				log.Tracef("webdav: %s %s", sanitize.Log(r.Method), sanitize.Log(r.URL.String()))
			}
		},
	}

	handler := func(c *gin.Context) {
		srv.ServeHTTP(c.Writer, c.Request)
	}

	methods := WebDAVReadMethods

	if !conf.ReadOnly() {
		methods = append(append([]string{}, WebDAVReadMethods...), WebDAVWriteMethods...)
	}

	for _, m := range methods {
		router.Handle(m, "/*path", handler)
	}
}
