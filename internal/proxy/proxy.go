package proxy

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"instagram-proxy/internal/config"
	"instagram-proxy/internal/instagram"
)

// MediaFetcher represents the subset of *instagram.Client used by the proxy.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, token string) (*instagram.MediaPage, error)
}

// Config provides all the dependencies required to build a Proxy.
type Config struct {
	Fetcher MediaFetcher
	Token   func() string
	Paths   []string
	Logger  *zap.SugaredLogger
}

// Proxy serves the Instagram media feed with the access token kept server-side.
type Proxy struct {
	fetcher MediaFetcher
	token   func() string
	paths   []string
	logger  *zap.SugaredLogger
}

// New constructs a Proxy from the provided configuration, applying sensible defaults.
// Token is consulted on every invocation and defaults to config.AccessToken.
func New(cfg Config) *Proxy {
	p := &Proxy{
		fetcher: cfg.Fetcher,
		token:   cfg.Token,
		paths:   append([]string(nil), cfg.Paths...),
		logger:  cfg.Logger,
	}

	if p.logger == nil {
		p.logger = zap.NewNop().Sugar()
	}
	if p.token == nil {
		p.token = config.AccessToken
	}
	if len(p.paths) == 0 {
		p.paths = []string{"/.netlify/functions/instagram"}
	}
	if p.fetcher == nil {
		p.fetcher = instagram.NewClient(instagram.Options{
			BaseURL: config.APIBase(),
			Timeout: config.Duration(config.TimeoutEnv, config.DefaultTimeout),
			Logger:  p.logger,
		})
	}

	return p
}

// Register attaches the feed handler to the provided mux.
func (p *Proxy) Register(mux *http.ServeMux) {
	for _, path := range p.paths {
		mux.HandleFunc(path, p.handleFeed)
	}
}

// Handler answers every request with the feed, regardless of path.
func (p *Proxy) Handler() http.Handler {
	return http.HandlerFunc(p.handleFeed)
}

func (p *Proxy) logf(format string, args ...any) {
	p.logger.Infof(format, args...)
}
