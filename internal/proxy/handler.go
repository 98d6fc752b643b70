package proxy

import (
	"io"
	"net/http"
	"time"
)

// handleFeed ignores method, path, query and body; every request gets the feed.
func (p *Proxy) handleFeed(w http.ResponseWriter, r *http.Request) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	defer func() {
		p.logLine("http", r.Method, r.URL.RequestURI(), sw.status, sw.written, time.Since(start))
	}()

	resp := p.Fetch(r.Context())

	writeHeaders(sw, resp.Headers)
	sw.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(sw, resp.Body)
}
