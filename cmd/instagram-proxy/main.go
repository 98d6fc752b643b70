package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"instagram-proxy/internal/config"
	"instagram-proxy/internal/logging"
	"instagram-proxy/internal/proxy"
)

func main() {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Fatalf("load .env: %v", err)
		}
	}

	logger, err := logging.New(config.LogLevel())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	p := proxy.New(proxy.Config{Logger: logger})

	mux := http.NewServeMux()
	p.Register(mux)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	if addr == "" {
		host := config.GetEnv("HOST", "0.0.0.0")
		port := config.GetEnv("PORT", "8888")
		port = strings.TrimPrefix(port, ":")
		addr = host + ":" + port
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          zap.NewStdLog(logger.Desugar()),
	}

	if config.AccessToken() == "" {
		logger.Warnf("%s is not set; the feed will answer 500", config.AccessTokenEnv)
	}
	publicURL := config.DerivePublicURL(addr, config.GetEnv("HOST", ""), config.GetEnv("PORT", ""))
	logger.Infof("instagram proxy listening: bind=%s url=%s/.netlify/functions/instagram", addr, publicURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server: %v", err)
	}
}
