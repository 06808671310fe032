package api

import (
	"html/template"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/north-cloud/content-creator/infrastructure/gin"
	"github.com/jonesrussell/north-cloud/content-creator/internal/handler"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
)

// Routes bundles what SetupRoutes registers.
type Routes struct {
	Templates *template.Template
	Content   *handler.ContentHandler
	UI        *handler.UIHandler
	Telemetry *telemetry.Provider
	JWTSecret string
}

// SetupRoutes configures the form, the JSON API and /metrics.
// Health routes are registered by the infrastructure gin builder.
func SetupRoutes(router *gin.Engine, r Routes) {
	router.SetHTMLTemplate(r.Templates)
	router.Use(r.Telemetry.HTTP.Middleware())

	router.GET("/metrics", gin.WrapH(r.Telemetry.Handler()))

	// HTML form
	router.GET("/", r.UI.Index)
	router.POST("/generate", r.UI.Generate)
	router.POST("/download", r.UI.Download)

	// JSON API, JWT protected when a secret is configured
	v1 := infragin.ProtectedGroup(router, "/api/v1", r.JWTSecret)
	v1.GET("/options", r.Content.Options)
	v1.POST("/generate", r.Content.Generate)
	v1.POST("/prompt", r.Content.Prompt)
}
