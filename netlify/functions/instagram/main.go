package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"instagram-proxy/internal/config"
	"instagram-proxy/internal/logging"
	"instagram-proxy/internal/proxy"
)

func newProxy() *proxy.Proxy {
	return proxy.New(proxy.Config{
		Logger: logging.MustNew(config.LogLevel()),
	})
}

func main() {
	lambda.Start(newProxy().HandleEvent)
}
