package config

import (
	"os"
	"strings"
	"time"
)

const (
	AccessTokenEnv = "INSTAGRAM_ACCESS_TOKEN"
	APIBaseEnv     = "INSTAGRAM_API_BASE"
	TimeoutEnv     = "INSTAGRAM_TIMEOUT"
	LogLevelEnv    = "LOG_LEVEL"

	DefaultAPIBase = "https://graph.instagram.com"
	DefaultTimeout = 10 * time.Second
)

// GetEnv returns the trimmed value of an environment variable or a default when unset.
func GetEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// AccessToken returns the Instagram access token, or "" when it is not configured.
// It is read on every call so a function instance picks up the current environment.
func AccessToken() string {
	return GetEnv(AccessTokenEnv, "")
}

// APIBase returns the Graph API origin without a trailing slash.
func APIBase() string {
	return strings.TrimRight(EnsureURL(GetEnv(APIBaseEnv, DefaultAPIBase), "https"), "/")
}

// Duration parses a Go duration ("8s", "1500ms") or a bare number of seconds.
func Duration(key string, def time.Duration) time.Duration {
	v := GetEnv(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if d, err := time.ParseDuration(v + "s"); err == nil && d > 0 {
		return d
	}
	return def
}

// LogLevel returns the lower-cased LOG_LEVEL, defaulting to "info".
func LogLevel() string {
	return strings.ToLower(GetEnv(LogLevelEnv, "info"))
}

// EnsureURL normalises an input into a URL, applying a default scheme when necessary.
func EnsureURL(v, defaultScheme string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	if defaultScheme == "" {
		defaultScheme = "https"
	}
	return defaultScheme + "://" + v
}

// DerivePublicURL attempts to build a public URL for the service based on environment hints.
func DerivePublicURL(bindAddr, host, port string) string {
	if u := EnsureURL(os.Getenv("PUBLIC_URL"), ""); u != "" {
		return u
	}
	if u := EnsureURL(os.Getenv("URL"), ""); u != "" {
		return u
	}

	p := strings.TrimSpace(port)
	h := strings.TrimSpace(host)
	if p == "" {
		if i := strings.LastIndex(bindAddr, ":"); i != -1 {
			p = bindAddr[i+1:]
		}
	}
	if h == "" {
		if i := strings.LastIndex(bindAddr, ":"); i > 0 {
			h = bindAddr[:i]
		}
	}
	if h == "0.0.0.0" || h == "::" || h == "[::]" || h == "" {
		h = "localhost"
	}
	if p == "" {
		p = "8888"
	}
	return "http://" + h + ":" + p
}
