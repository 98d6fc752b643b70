package instagram

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// Fields requested from me/media, in the order the API documents them.
	Fields       = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"
	DefaultLimit = 20

	redacted = "REDACTED"
)

// MediaURL builds the me/media listing URL. The Graph API only accepts the
// token as a query parameter, so it is embedded here rather than sent as a header.
func MediaURL(base, token string, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/me/media?fields=")
	b.WriteString(Fields)
	b.WriteString("&limit=")
	b.WriteString(strconv.Itoa(limit))
	b.WriteString("&access_token=")
	b.WriteString(url.QueryEscape(token))
	return b.String()
}

// RedactToken removes every occurrence of token, raw or query-escaped, from s.
func RedactToken(s, token string) string {
	if token == "" {
		return s
	}
	if esc := url.QueryEscape(token); esc != token {
		s = strings.ReplaceAll(s, esc, redacted)
	}
	return strings.ReplaceAll(s, token, redacted)
}
