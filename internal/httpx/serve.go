package httpx

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/honicky/anndata-duckdb-extension/internal"
)

// responsePlan is the pivot everything after range parsing is computed from:
// the status line, the header set and the exact byte window to stream.
type responsePlan struct {
	status       int
	contentType  string
	contentRange string // set only on 206
	offset       int64
	length       int64 // Content-Length and the exact body size for GET
	sendBody     bool
}

// planResponse maps (method, range outcome, file size) onto a response plan.
//
// GET and HEAD disagree on purpose when the Range header is unusable: GET
// answers 416 with no descriptive headers, HEAD falls back to describing the
// full resource with a 200. Download clients probe with exactly that HEAD
// before issuing ranged GETs, so the asymmetry is load-bearing and must not
// be unified quietly.
func planResponse(method string, outcome RangeOutcome, br ByteRange, size int64, contentType string) responsePlan {
	switch outcome {
	case RangeValid:
		return responsePlan{
			status:       http.StatusPartialContent,
			contentType:  contentType,
			contentRange: br.ContentRange(size),
			offset:       int64(br.Start),
			length:       int64(br.Length()),
			sendBody:     method == http.MethodGet,
		}
	case RangeInvalid:
		if method == http.MethodGet {
			return responsePlan{status: http.StatusRequestedRangeNotSatisfiable}
		}
		return responsePlan{
			status:      http.StatusOK,
			contentType: contentType,
			length:      size,
		}
	default: // RangeNone
		return responsePlan{
			status:      http.StatusOK,
			contentType: contentType,
			length:      size,
			sendBody:    method == http.MethodGet,
		}
	}
}

// writeHeaders emits the plan's status line and header set. A bare 416
// carries no descriptive headers at all.
func writeHeaders(w http.ResponseWriter, plan responsePlan) {
	if plan.status == http.StatusRequestedRangeNotSatisfiable {
		w.WriteHeader(plan.status)
		return
	}
	h := w.Header()
	h.Set("Accept-Ranges", "bytes")
	h.Set("Content-Type", plan.contentType)
	h.Set("Content-Length", strconv.FormatInt(plan.length, 10))
	if plan.contentRange != "" {
		h.Set("Content-Range", plan.contentRange)
	}
	w.WriteHeader(plan.status)
}

// serveFixture handles one GET or HEAD request against the serving root.
// The file is stat'ed fresh on every request; nothing is cached across
// requests, so concurrent regeneration of a fixture is picked up
// immediately.
func serveFixture(c *gin.Context, root string) {
	target, ok := resolvePath(root, c.Request.URL.Path)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		c.Status(http.StatusNotFound)
		return
	}
	size := info.Size()

	br, outcome := ParseRange(c.GetHeader("Range"), size)
	plan := planResponse(c.Request.Method, outcome, br, size, internal.ContentTypeFor(target))

	if !plan.sendBody {
		writeHeaders(c.Writer, plan)
		return
	}

	// Scoped acquisition: the handle lives exactly as long as this
	// request and is released on every exit path below.
	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			// Deleted between stat and open.
			c.Status(http.StatusNotFound)
		} else {
			internal.LogError("open %s: %v", target, err)
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	defer f.Close()

	if plan.offset > 0 {
		if _, err := f.Seek(plan.offset, io.SeekStart); err != nil {
			internal.LogError("seek %s: %v", target, err)
			c.Status(http.StatusInternalServerError)
			return
		}
	}

	writeHeaders(c.Writer, plan)
	if _, err := io.CopyN(c.Writer, f, plan.length); err != nil {
		// Headers are out, so this cannot be turned into an error
		// status anymore; client disconnects land here too. Never
		// retried: the byte window is only valid against the size we
		// stat'ed above.
		internal.LogWarn("stream %s aborted after partial write: %v", c.Request.URL.Path, err)
	}
}

// resolvePath maps a request path onto the serving root. Requests naming
// ".." anywhere in the path, and the bare root, do not resolve.
func resolvePath(root, reqPath string) (string, bool) {
	for _, seg := range strings.Split(reqPath, "/") {
		if seg == ".." {
			return "", false
		}
	}
	clean := path.Clean("/" + reqPath)
	if clean == "/" {
		return "", false
	}
	target := filepath.Join(root, filepath.FromSlash(clean))
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return "", false
	}
	return target, true
}
