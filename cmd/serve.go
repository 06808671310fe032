package cmd

import (
	"github.com/jonesrussell/north-cloud/content-creator/internal/bootstrap"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		Long: `Serve the HTML form at / and the JSON API under /api/v1.

The selected text provider's API key must be set, and OPENAI_API_KEY too when
image generation is enabled.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return bootstrap.Serve(cmd.Context(), cfgFile)
		},
	}
}
