// Package api wires the handlers into the HTTP server.
package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/north-cloud/content-creator/infrastructure/gin"
	infralogger "github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/config"
	"github.com/jonesrussell/north-cloud/content-creator/internal/handler"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
	"github.com/jonesrussell/north-cloud/content-creator/internal/ui"
)

// writeTimeoutMargin covers everything around the two upstream calls.
const writeTimeoutMargin = 30 * time.Second

// WriteTimeout bounds a response that waits on a text call and an image
// call, each limited by upstreamTimeout. It never drops below the builder
// default.
func WriteTimeout(upstreamTimeout time.Duration) time.Duration {
	return max(2*upstreamTimeout+writeTimeoutMargin, infragin.DefaultWriteTimeout)
}

// NewServer creates the HTTP server.
func NewServer(
	cfg *config.Config,
	generator handler.ContentGenerator,
	tel *telemetry.Provider,
	log infralogger.Logger,
) (*infragin.Server, error) {
	tmpl, err := ui.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	routes := Routes{
		Templates: tmpl,
		Content:   handler.NewContentHandler(generator, log),
		UI:        handler.NewUIHandler(generator, log),
		Telemetry: tel,
		JWTSecret: cfg.Auth.JWTSecret,
	}

	builder := infragin.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithAddress(cfg.Service.Host).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithCORSOrigins(cfg.Service.CORSOrigins).
		WithTimeouts(0, WriteTimeout(cfg.Provider.Timeout), 0).
		WithHealthCheck("text_provider",
			infragin.CredentialChecker(cfg.Provider.APIKeyEnv(), cfg.Provider.LLM().APIKey != ""))

	if generator.Features().ImageGeneration {
		builder = builder.WithHealthCheck("image_provider",
			infragin.CredentialChecker("OPENAI_API_KEY", cfg.Provider.OpenAIAPIKey != ""))
	}

	return builder.
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, routes)
		}).
		Build(), nil
}
