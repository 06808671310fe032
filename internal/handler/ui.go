package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	infralogger "github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/ui"
)

const (
	// DownloadFilename is the name offered for downloaded text.
	DownloadFilename = "generated_content.txt"

	pngDataURIPrefix = "data:image/png;base64,"
)

// PageData feeds the form template.
type PageData struct {
	Fields         []domain.Field
	Tones          []domain.Tone
	Languages      []domain.LanguageOption
	MinWordLength  int
	MaxWordLength  int
	WordLengthStep int
	Features       domain.Features
	Request        domain.ContentRequest
	Result         *domain.Result
	// ImageSrc is a template.URL for https and inline PNG references and a
	// plain string otherwise, which html/template escapes.
	ImageSrc any
}

// contentForm mirrors the HTML form. Checkboxes post "true".
type contentForm struct {
	Field         string `form:"field"`
	Details       string `form:"details"`
	Tone          string `form:"tone"`
	Language      string `form:"language"`
	WordLength    int    `form:"word_length"`
	IncludeEmoji  bool   `form:"include_emoji"`
	GenerateImage bool   `form:"generate_image"`
}

func (f contentForm) request() domain.ContentRequest {
	return domain.ContentRequest{
		Field:         domain.Field(f.Field),
		Details:       f.Details,
		Tone:          domain.Tone(f.Tone),
		Language:      domain.Language(f.Language),
		WordLength:    f.WordLength,
		IncludeEmoji:  f.IncludeEmoji,
		GenerateImage: f.GenerateImage,
	}
}

// UIHandler serves the HTML form.
type UIHandler struct {
	generator ContentGenerator
	logger    infralogger.Logger
}

// NewUIHandler creates a UIHandler.
func NewUIHandler(generator ContentGenerator, log infralogger.Logger) *UIHandler {
	if log == nil {
		log = infralogger.NewNop()
	}
	return &UIHandler{generator: generator, logger: log}
}

// Index handles GET /: the form with default values.
func (h *UIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, ui.IndexTemplate, h.page(domain.DefaultContentRequest(), nil))
}

// Generate handles POST /generate. Failures are rendered as a notice with
// status 200 so the form stays usable.
func (h *UIHandler) Generate(c *gin.Context) {
	var form contentForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Debug("Rejected form submission", infralogger.Error(err))
		result := domain.Failed(invalidBody(err))
		c.HTML(http.StatusOK, ui.IndexTemplate, h.page(domain.DefaultContentRequest(), &result))
		return
	}

	req := form.request()
	result := h.generator.Generate(c.Request.Context(), req)
	c.HTML(http.StatusOK, ui.IndexTemplate, h.page(req.Normalize(h.generator.Features()), &result))
}

// Download handles POST /download: the posted text as a plain-text attachment.
func (h *UIHandler) Download(c *gin.Context) {
	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.String(http.StatusBadRequest, "nothing to download")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+DownloadFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

func (h *UIHandler) page(req domain.ContentRequest, result *domain.Result) PageData {
	features := h.generator.Features()

	data := PageData{
		Fields:         domain.Fields(),
		Tones:          domain.Tones(),
		Languages:      languageOptions(features),
		MinWordLength:  domain.MinWordLength,
		MaxWordLength:  domain.MaxWordLength,
		WordLengthStep: domain.WordLengthStep,
		Features:       features,
		Request:        req,
		Result:         result,
	}
	if result != nil && result.Artifact != nil && result.Artifact.HasImage() {
		data.ImageSrc = imageSrc(result.Artifact.ImageURL)
	}
	return data
}

// imageSrc marks only https URLs and base64 PNG data URIs as safe.
func imageSrc(ref string) any {
	if strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, pngDataURIPrefix) {
		return template.URL(ref) //nolint:gosec // scheme checked above
	}
	return ref
}
