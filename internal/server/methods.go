package server

import "net/http"

const (
	MethodHead      = http.MethodHead
	MethodGet       = http.MethodGet
	MethodPut       = http.MethodPut
	MethodPost      = http.MethodPost
	MethodPatch     = http.MethodPatch
	MethodDelete    = http.MethodDelete
	MethodOptions   = http.MethodOptions
	MethodMkcol     = "MKCOL"
	MethodCopy      = "COPY"
	MethodMove      = "MOVE"
	MethodLock      = "LOCK"
	MethodUnlock    = "UNLOCK"
	MethodPropfind  = "PROPFIND"
	MethodProppatch = "PROPPATCH"
)

// WebDAVReadMethods are registered in read-only mode.
var WebDAVReadMethods = []string{MethodHead, MethodGet, MethodOptions, MethodPropfind}

// WebDAVWriteMethods are registered in addition if writing is allowed.
var WebDAVWriteMethods = []string{MethodPut, MethodPost, MethodPatch, MethodDelete, MethodMkcol, MethodCopy, MethodMove, MethodLock, MethodUnlock, MethodProppatch}
