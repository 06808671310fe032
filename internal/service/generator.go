// Package service runs one content generation: validate, build the prompts,
// call the text endpoint and then, when asked, the image endpoint.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/imagegen"
	"github.com/jonesrussell/north-cloud/content-creator/internal/llm"
	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const imageProvider = "openai"

// Plan is everything that would be sent upstream for one request.
type Plan struct {
	Request domain.ContentRequest `json:"request"`
	Text    prompt.TextRequest    `json:"text"`
	// Image is nil unless an image was requested and the feature is on.
	Image *prompt.ImageRequest `json:"image,omitempty"`
}

// Generator turns ContentRequests into Results. It holds no per-request
// state and is safe for concurrent use.
type Generator struct {
	text      llm.TextGenerator
	image     imagegen.ImageGenerator
	model     string
	features  domain.Features
	telemetry *telemetry.Provider
	logger    logger.Logger
}

// Config configures a Generator.
type Config struct {
	Model    string
	Features domain.Features
}

// NewGenerator creates a Generator. A nil image generator turns the image
// feature off.
func NewGenerator(
	cfg Config,
	text llm.TextGenerator,
	image imagegen.ImageGenerator,
	tel *telemetry.Provider,
	log logger.Logger,
) *Generator {
	features := cfg.Features
	if image == nil {
		features.ImageGeneration = false
	}
	if tel == nil {
		tel = telemetry.NewProvider()
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Generator{
		text:      text,
		image:     image,
		model:     cfg.Model,
		features:  features,
		telemetry: tel,
		logger:    log,
	}
}

// Features returns the effective feature set.
func (g *Generator) Features() domain.Features {
	return g.features
}

// Prepare normalizes and validates req and builds the upstream payloads
// without calling anything.
func (g *Generator) Prepare(req domain.ContentRequest) (Plan, error) {
	req = req.Normalize(g.features)
	if err := req.Validate(g.features); err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Request: req,
		Text:    prompt.BuildTextRequest(req, g.model),
	}
	if req.GenerateImage {
		imageReq := prompt.BuildImageRequest(req)
		plan.Image = &imageReq
	}
	return plan, nil
}

// Generate runs one generation. Validation failures make no upstream call.
// An image failure fails the whole generation, text included.
func (g *Generator) Generate(ctx context.Context, req domain.ContentRequest) domain.Result {
	ctx, span := g.telemetry.StartSpan(ctx, "content.generate")
	defer span.End()

	result := g.generate(ctx, req)

	g.telemetry.RecordOutcome(ctx, result)
	if result.Failure != nil {
		span.SetStatus(codes.Error, result.Failure.Message)
		span.SetAttributes(attribute.String("failure.kind", string(result.Failure.Kind)))
	}
	return result
}

func (g *Generator) generate(ctx context.Context, req domain.ContentRequest) domain.Result {
	log := logger.FromContextOr(ctx, g.logger)

	plan, err := g.Prepare(req)
	if err != nil {
		log.Info("Generation rejected", logger.Error(err))
		return domain.Failed(err)
	}

	log.Info("Generating content",
		logger.String("provider", g.text.Provider()),
		logger.String("model", plan.Text.Model),
		logger.String("field", string(plan.Request.Field)),
		logger.String("tone", string(plan.Request.Tone)),
		logger.String("language", string(plan.Request.Language)),
		logger.Int("word_length", plan.Request.WordLength),
		logger.Int("max_tokens", plan.Text.MaxTokens),
		logger.Int("prompt_length", len(plan.Text.Prompt())),
		logger.Bool("include_emoji", plan.Request.IncludeEmoji),
		logger.Bool("generate_image", plan.Image != nil),
	)
	log.Debug("Text prompt", logger.String("prompt", plan.Text.Prompt()))

	text, err := g.callText(ctx, plan.Text)
	if err != nil {
		log.Error("Text generation failed", logger.Error(err))
		return domain.Failed(err)
	}

	artifact := domain.GeneratedArtifact{Text: text}
	if plan.Image != nil {
		log.Debug("Image prompt", logger.String("prompt", plan.Image.Prompt))

		imageRef, imageErr := g.callImage(ctx, *plan.Image)
		if imageErr != nil {
			log.Error("Image generation failed", logger.Error(imageErr))
			return domain.Failed(imageErr)
		}
		artifact.ImageURL = imageRef
	}

	log.Info("Content generated",
		logger.Int("text_length", len(artifact.Text)),
		logger.Bool("has_image", artifact.HasImage()),
	)
	return domain.Success(artifact)
}

func (g *Generator) callText(ctx context.Context, req prompt.TextRequest) (string, error) {
	ctx, span := g.telemetry.StartSpan(ctx, "content.text",
		attribute.String("provider", g.text.Provider()),
		attribute.String("model", req.Model),
		attribute.Int("max_tokens", req.MaxTokens),
	)
	defer span.End()

	g.telemetry.RecordPrompt(ctx, domain.EndpointText, len(req.Prompt()))
	g.telemetry.RecordTokenBudget(req.MaxTokens)

	start := time.Now()
	text, err := g.text.Generate(ctx, req)
	g.telemetry.RecordUpstreamCall(ctx, domain.EndpointText, g.text.Provider(), time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "text generation failed")
		return "", upstream(domain.EndpointText, err)
	}
	return text, nil
}

func (g *Generator) callImage(ctx context.Context, req prompt.ImageRequest) (string, error) {
	ctx, span := g.telemetry.StartSpan(ctx, "content.image",
		attribute.String("size", req.Size),
		attribute.Int("count", req.Count),
	)
	defer span.End()

	g.telemetry.RecordPrompt(ctx, domain.EndpointImage, len(req.Prompt))

	start := time.Now()
	ref, err := g.image.Generate(ctx, req)
	g.telemetry.RecordUpstreamCall(ctx, domain.EndpointImage, imageProvider, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "image generation failed")
		return "", upstream(domain.EndpointImage, err)
	}
	return ref, nil
}

func upstream(endpoint domain.Endpoint, err error) error {
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return err
	}
	return &domain.UpstreamError{Endpoint: endpoint, Err: err}
}
