package handler

import (
	"net/http"

	"instagram-proxy/internal/config"
	"instagram-proxy/internal/logging"
	"instagram-proxy/internal/proxy"
)

var defaultHandler http.Handler

func init() {
	p := proxy.New(proxy.Config{
		Logger: logging.MustNew(config.LogLevel()),
	})
	defaultHandler = p.Handler()
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultHandler.ServeHTTP(w, r)
}
