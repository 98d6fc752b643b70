package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"instagram-proxy/internal/config"
	"instagram-proxy/internal/feed"
	"instagram-proxy/internal/instagram"
)

// MsgTokenNotConfigured is the error body text when no access token is set.
const MsgTokenNotConfigured = "Instagram token not configured in environment variables."

// Response is the HTTP-shaped result of one invocation.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

type mediaBody struct {
	Media []feed.Item `json:"media"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Fetch runs one invocation: check the token, call me/media once and reshape
// the result. Every outcome, including a panic in the fetcher, becomes a JSON
// body with the fixed response headers.
func (p *Proxy) Fetch(ctx context.Context) (resp Response) {
	token := p.token()
	if token == "" {
		p.logger.Errorw("access token missing", "env", config.AccessTokenEnv)
		return errorResponse(http.StatusInternalServerError, MsgTokenNotConfigured)
	}

	defer func() {
		if r := recover(); r != nil {
			msg := instagram.RedactToken(fmt.Sprint(r), token)
			p.logger.Errorw("media fetch panicked", "error", msg)
			resp = errorResponse(http.StatusInternalServerError, msg)
		}
	}()

	page, err := p.fetcher.FetchMedia(ctx, token)
	if err != nil {
		var apiErr *instagram.APIError
		if errors.As(err, &apiErr) {
			p.logger.Warnw("instagram api error",
				"status", apiErr.StatusCode,
				"type", apiErr.Type,
				"code", apiErr.Code,
				"fbtrace_id", apiErr.TraceID,
				"message", apiErr.Message,
			)
			return errorResponse(apiErr.StatusCode, apiErr.Message)
		}
		msg := instagram.RedactToken(err.Error(), token)
		p.logger.Errorw("media fetch failed", "error", msg)
		return errorResponse(http.StatusInternalServerError, msg)
	}

	return jsonResponse(http.StatusOK, mediaBody{Media: feed.FromPage(page)})
}

func jsonResponse(status int, v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}
	return Response{StatusCode: status, Headers: responseHeaders(), Body: string(b)}
}

func errorResponse(status int, msg string) Response {
	b, _ := json.Marshal(errorBody{Error: msg})
	return Response{StatusCode: status, Headers: responseHeaders(), Body: string(b)}
}
