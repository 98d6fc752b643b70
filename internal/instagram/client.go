package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://graph.instagram.com"

	// GenericErrorMessage is reported when an error response carries no error.message.
	GenericErrorMessage = "Instagram API error"
)

// APIError is a non-2xx answer from the Graph API.
type APIError struct {
	StatusCode int
	Message    string
	Type       string
	Code       int
	TraceID    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("instagram: status %d: %s", e.StatusCode, e.Message)
}

// Options configures a Client. Zero values fall back to the Graph API defaults.
type Options struct {
	BaseURL    string
	Limit      int
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

// Client calls the Graph API me/media edge.
type Client struct {
	baseURL string
	limit   int
	http    *resty.Client
	logger  *zap.SugaredLogger
}

// NewClient builds a resty-backed Client, applying defaults for unset options.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(opts.Timeout).
		SetLogger(opts.Logger).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "instagram-proxy/1.0")

	return &Client{
		baseURL: opts.BaseURL,
		limit:   opts.Limit,
		http:    rc,
		logger:  opts.Logger,
	}
}

// FetchMedia requests one page of the token owner's media.
// A non-2xx answer with a JSON body is returned as *APIError.
func (c *Client) FetchMedia(ctx context.Context, token string) (*MediaPage, error) {
	target := MediaURL(c.baseURL, token, c.limit)
	c.logger.Infow("instagram request", "url", RedactToken(target, token))

	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = RedactToken(uerr.URL, token)
		}
		return nil, fmt.Errorf("instagram: request media: %w", err)
	}

	if !resp.IsSuccess() {
		apiErr, err := parseAPIError(resp.StatusCode(), resp.Body())
		if err != nil {
			return nil, fmt.Errorf("instagram: decode error response (status %d): %w", resp.StatusCode(), err)
		}
		return nil, apiErr
	}

	var page MediaPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("instagram: decode media: %w", err)
	}
	return &page, nil
}

// parseAPIError reads a Graph error body leniently. Only malformed JSON is an
// error; any other shape yields the generic message at the upstream status.
func parseAPIError(status int, body []byte) (*APIError, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	apiErr := &APIError{StatusCode: status, Message: GenericErrorMessage}
	obj, _ := raw.(map[string]any)
	ge, _ := obj["error"].(map[string]any)
	if msg, ok := ge["message"].(string); ok && msg != "" {
		apiErr.Message = msg
	}
	apiErr.Type, _ = ge["type"].(string)
	if code, ok := ge["code"].(float64); ok {
		apiErr.Code = int(code)
	}
	apiErr.TraceID, _ = ge["fbtrace_id"].(string)
	return apiErr, nil
}
