// Package handler holds the gin handlers for the JSON API and the HTML form.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	infralogger "github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
	"github.com/jonesrussell/north-cloud/content-creator/internal/service"
)

// ContentGenerator is the part of service.Generator the handlers use.
type ContentGenerator interface {
	Generate(ctx context.Context, req domain.ContentRequest) domain.Result
	Prepare(req domain.ContentRequest) (service.Plan, error)
	Features() domain.Features
}

// ContentHandler serves the /api/v1 content endpoints.
type ContentHandler struct {
	generator ContentGenerator
	logger    infralogger.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(generator ContentGenerator, log infralogger.Logger) *ContentHandler {
	if log == nil {
		log = infralogger.NewNop()
	}
	return &ContentHandler{generator: generator, logger: log}
}

// WordLengthRange describes the selectable word lengths.
type WordLengthRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// OptionsResponse lists every selectable option.
type OptionsResponse struct {
	Fields     []domain.Field          `json:"fields"`
	Tones      []domain.Tone           `json:"tones"`
	Languages  []domain.LanguageOption `json:"languages"`
	WordLength WordLengthRange         `json:"word_length"`
	Defaults   domain.ContentRequest   `json:"defaults"`
	Features   domain.Features         `json:"features"`
}

// PromptResponse is what a generation would send upstream.
type PromptResponse struct {
	Request     domain.ContentRequest `json:"request"`
	Prompt      string                `json:"prompt"`
	TokenBudget int                   `json:"token_budget"`
	Text        prompt.TextRequest    `json:"text"`
	Image       *prompt.ImageRequest  `json:"image,omitempty"`
}

// Options handles GET /api/v1/options.
func (h *ContentHandler) Options(c *gin.Context) {
	features := h.generator.Features()

	c.JSON(http.StatusOK, OptionsResponse{
		Fields:    domain.Fields(),
		Tones:     domain.Tones(),
		Languages: languageOptions(features),
		WordLength: WordLengthRange{
			Min:     domain.MinWordLength,
			Max:     domain.MaxWordLength,
			Step:    domain.WordLengthStep,
			Default: domain.DefaultWordLength,
		},
		Defaults: domain.DefaultContentRequest(),
		Features: features,
	})
}

// Generate handles POST /api/v1/generate. It answers 200 with the artifact,
// 400 on validation failure and 502 on upstream failure.
func (h *ContentHandler) Generate(c *gin.Context) {
	var req domain.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Rejected generate request body", infralogger.Error(err))
		c.JSON(http.StatusBadRequest, domain.Failed(invalidBody(err)))
		return
	}

	result := h.generator.Generate(c.Request.Context(), req)
	c.JSON(StatusFor(result), result)
}

// Prompt handles POST /api/v1/prompt: a dry run that shows the upstream
// payloads without calling anything.
func (h *ContentHandler) Prompt(c *gin.Context) {
	var req domain.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.Failed(invalidBody(err)))
		return
	}

	plan, err := h.generator.Prepare(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.Failed(err))
		return
	}

	c.JSON(http.StatusOK, PromptResponse{
		Request:     plan.Request,
		Prompt:      plan.Text.Prompt(),
		TokenBudget: plan.Text.MaxTokens,
		Text:        plan.Text,
		Image:       plan.Image,
	})
}

// StatusFor maps a Result to its HTTP status.
func StatusFor(result domain.Result) int {
	switch {
	case result.Failure == nil:
		return http.StatusOK
	case result.Failure.Kind == domain.FailureValidation:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// languageOptions lists only the default language when the selector is off.
func languageOptions(features domain.Features) []domain.LanguageOption {
	languages := domain.Languages()
	if !features.LanguageSelector {
		return languages[:1]
	}
	return languages
}

func invalidBody(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return err
	}
	return &domain.ValidationError{Field: "body", Message: "invalid request body: " + err.Error()}
}
