package handler_test

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/handler"
	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
	"github.com/jonesrussell/north-cloud/content-creator/internal/service"
	"github.com/jonesrussell/north-cloud/content-creator/internal/ui"
)

// stubGenerator returns a fixed result and records what it was asked.
type stubGenerator struct {
	mu       sync.Mutex
	result   domain.Result
	features domain.Features
	requests []domain.ContentRequest
}

func newStub(result domain.Result) *stubGenerator {
	features, _ := domain.FeaturesFor(domain.VariantFull)
	return &stubGenerator{result: result, features: features}
}

func (s *stubGenerator) Generate(_ context.Context, req domain.ContentRequest) domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.result
}

func (s *stubGenerator) Prepare(req domain.ContentRequest) (service.Plan, error) {
	req = req.Normalize(s.features)
	if err := req.Validate(s.features); err != nil {
		return service.Plan{}, err
	}
	plan := service.Plan{Request: req, Text: prompt.BuildTextRequest(req, "test-model")}
	if req.GenerateImage {
		image := prompt.BuildImageRequest(req)
		plan.Image = &image
	}
	return plan, nil
}

func (s *stubGenerator) Features() domain.Features {
	return s.features
}

func (s *stubGenerator) lastRequest() domain.ContentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return domain.ContentRequest{}
	}
	return s.requests[len(s.requests)-1]
}

func newRouter(gen handler.ContentGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl, err := ui.Templates()
	if err != nil {
		panic(err)
	}
	router.SetHTMLTemplate(tmpl)

	uiHandler := handler.NewUIHandler(gen, nil)
	router.GET("/", uiHandler.Index)
	router.POST("/generate", uiHandler.Generate)
	router.POST("/download", uiHandler.Download)

	content := handler.NewContentHandler(gen, nil)
	api := router.Group("/api/v1")
	api.GET("/options", content.Options)
	api.POST("/generate", content.Generate)
	api.POST("/prompt", content.Prompt)

	return router
}
