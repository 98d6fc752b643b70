package proxy

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// HandleEvent is the Netlify/Lambda entry point. The event is only read for the
// access log. The returned error is always nil so the platform never turns a
// failed fetch into an opaque 502.
func (p *Proxy) HandleEvent(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()
	resp := p.Fetch(ctx)
	p.logLine("lambda", event.HTTPMethod, event.Path, resp.StatusCode, len(resp.Body), time.Since(start))

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}
