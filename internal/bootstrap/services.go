package bootstrap

import (
	"fmt"

	infrahttp "github.com/jonesrussell/north-cloud/content-creator/infrastructure/http"
	infralogger "github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/config"
	"github.com/jonesrussell/north-cloud/content-creator/internal/imagegen"
	"github.com/jonesrussell/north-cloud/content-creator/internal/llm"
	"github.com/jonesrussell/north-cloud/content-creator/internal/service"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
)

// SetupGenerator builds the upstream clients and the generator. The image
// client is only created when image generation is enabled.
func SetupGenerator(
	cfg *config.Config,
	tel *telemetry.Provider,
	log infralogger.Logger,
) (*service.Generator, error) {
	features, err := cfg.Features.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve features: %w", err)
	}

	httpClient := infrahttp.NewClient(&infrahttp.ClientConfig{Timeout: cfg.Provider.Timeout})

	text, err := llm.New(cfg.Provider.LLM(), llm.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create text client: %w", err)
	}

	var image imagegen.ImageGenerator
	if features.ImageGeneration {
		image = imagegen.NewClient(cfg.Image.BaseURL, cfg.Provider.OpenAIAPIKey, cfg.Image.Model, httpClient)
	}

	return service.NewGenerator(
		service.Config{Model: cfg.Provider.Model, Features: features},
		text,
		image,
		tel,
		log,
	), nil
}
