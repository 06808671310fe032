package bootstrap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/bootstrap"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/llm"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
provider:
  name: anthropic
features:
  variant: details
`)

	cfg, err := bootstrap.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderAnthropic, cfg.Provider.Name)
	assert.Equal(t, domain.VariantDetails, cfg.Features.Variant)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `
features:
  variant: deluxe
`)

	_, err := bootstrap.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestSetupGenerator_FeaturesFollowVariant(t *testing.T) {
	tests := []struct {
		variant   domain.Variant
		wantImage bool
	}{
		{domain.VariantBasic, false},
		{domain.VariantMultilingual, false},
		{domain.VariantFull, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			path := writeConfig(t, "features:\n  variant: "+string(tt.variant)+"\n")
			cfg, err := bootstrap.LoadConfig(path)
			require.NoError(t, err)

			gen, err := bootstrap.SetupGenerator(cfg, telemetry.NewProvider(), logger.NewNop())
			require.NoError(t, err)

			want, err := domain.FeaturesFor(tt.variant)
			require.NoError(t, err)
			assert.Equal(t, want, gen.Features())
			assert.Equal(t, tt.wantImage, gen.Features().ImageGeneration)
		})
	}
}

func TestSetupGenerator_DryRunNeedsNoKey(t *testing.T) {
	path := writeConfig(t, "features:\n  variant: full\n")
	cfg, err := bootstrap.LoadConfig(path)
	require.NoError(t, err)
	cfg.Provider.OpenAIAPIKey = ""

	gen, err := bootstrap.SetupGenerator(cfg, telemetry.NewProvider(), logger.NewNop())
	require.NoError(t, err)

	req := domain.DefaultContentRequest()
	req.Details = "handmade notebooks"
	req.GenerateImage = true

	plan, err := gen.Prepare(req)
	require.NoError(t, err)
	assert.Equal(t, cfg.Provider.Model, plan.Text.Model)
	require.NotNil(t, plan.Image)
}
