package proxy

import (
	"fmt"
	"net/http"
	"time"
)

type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

func fmtDur(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%4dms", d.Milliseconds())
	}
	sec := float64(d) / float64(time.Second)
	return fmt.Sprintf("%6.2fs", sec)
}

func (p *Proxy) logLine(kind, method, path string, status, bytes int, dur time.Duration) {
	if method == "" {
		method = "-"
	}
	p.logf("%-6s method=%-4s status=%3d bytes=%8d dur=%9s path=%s",
		kind, method, status, bytes, fmtDur(dur), path)
}

// responseHeaders is attached to every response, success or error.
func responseHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type",
		"Content-Type":                 "application/json",
	}
}

func writeHeaders(w http.ResponseWriter, h map[string]string) {
	for k, v := range h {
		w.Header().Set(k, v)
	}
}
