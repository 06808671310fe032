package cmd

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/bootstrap"
	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/jonesrussell/north-cloud/content-creator/internal/handler"
	"github.com/jonesrussell/north-cloud/content-creator/internal/telemetry"
	"github.com/spf13/cobra"
)

const (
	outputFileMode = 0o644
	pngDataPrefix  = "data:image/png;base64,"
)

var errImageNotInline = errors.New("image is a URL, not inline data; download it from the printed address")

type generateOptions struct {
	field      string
	details    string
	tone       string
	language   string
	wordLength int
	emoji      bool
	image      bool
	out        string
	save       bool
	imageOut   string
	dryRun     bool
}

// textPath is where the text is written; empty means stdout.
func (o *generateOptions) textPath() string {
	if o.out == "" && o.save {
		return handler.DownloadFilename
	}
	return o.out
}

func (o *generateOptions) request() domain.ContentRequest {
	return domain.ContentRequest{
		Field:         domain.Field(o.field),
		Details:       o.details,
		Tone:          domain.Tone(o.tone),
		Language:      domain.Language(o.language),
		WordLength:    o.wordLength,
		IncludeEmoji:  o.emoji,
		GenerateImage: o.image,
	}
}

func newGenerateCommand() *cobra.Command {
	defaults := domain.DefaultContentRequest()
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one piece of content",
		Long: `Generate one piece of marketing content and print it.

Examples:
  # Witty copy for a product, with emojis
  content-creator generate --field Technology --tone Humorous \
    --details "a solar phone charger" --emoji

  # Show what would be sent upstream without calling it
  content-creator generate --details "organic tea" --language Japanese --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.field, "field", "f", string(defaults.Field), "content field")
	flags.StringVarP(&opts.details, "details", "d", "", "product or service details")
	flags.StringVarP(&opts.tone, "tone", "t", string(defaults.Tone), "writing tone")
	flags.StringVarP(&opts.language, "language", "l", string(defaults.Language), "output language (name or code)")
	flags.IntVarP(&opts.wordLength, "length", "n", defaults.WordLength, "approximate length in words")
	flags.BoolVar(&opts.emoji, "emoji", false, "include emojis")
	flags.BoolVar(&opts.image, "image", false, "also generate an image")
	flags.StringVarP(&opts.out, "out", "o", "", "write the text to this file instead of stdout")
	flags.BoolVar(&opts.save, "save", false, "write the text to "+handler.DownloadFilename+" unless --out is given")
	flags.StringVar(&opts.imageOut, "image-out", "", "write an inline PNG image to this file")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the upstream requests without sending them")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	deps, err := bootstrap.NewCommandDeps(cfgFile, true)
	if err != nil {
		return err
	}
	defer func() { _ = deps.Logger.Sync() }()

	if !opts.dryRun {
		if credErr := deps.Config.ValidateCredentials(); credErr != nil {
			return fmt.Errorf("validate credentials: %w", credErr)
		}
	}

	generator, err := bootstrap.SetupGenerator(deps.Config, telemetry.NewProvider(), deps.Logger)
	if err != nil {
		return err
	}

	req := opts.request()
	stdout := cmd.OutOrStdout()

	if opts.dryRun {
		plan, prepErr := generator.Prepare(req)
		if prepErr != nil {
			return prepErr
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(plan)
	}

	result := generator.Generate(cmd.Context(), req)
	if !result.OK() {
		return errors.New(result.Failure.Message)
	}

	textPath := opts.textPath()
	if writeErr := writeText(stdout, textPath, result.Artifact.Text); writeErr != nil {
		return writeErr
	}
	if textPath != "" {
		deps.Logger.Info("Content written", logger.String("path", textPath))
	}

	if result.Artifact.HasImage() {
		return writeImage(cmd.ErrOrStderr(), opts.imageOut, result.Artifact.ImageURL)
	}
	return nil
}

func writeText(stdout io.Writer, path, text string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), outputFileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeImage saves an inline PNG to path, or reports where the image is.
func writeImage(stderr io.Writer, path, ref string) error {
	encoded, inline := strings.CutPrefix(ref, pngDataPrefix)

	if path == "" {
		if inline {
			_, err := fmt.Fprintln(stderr, "Image generated inline; pass --image-out to save it")
			return err
		}
		_, err := fmt.Fprintln(stderr, "Image: "+ref)
		return err
	}

	if !inline {
		_, _ = fmt.Fprintln(stderr, "Image: "+ref)
		return errImageNotInline
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if writeErr := os.WriteFile(path, data, outputFileMode); writeErr != nil {
		return fmt.Errorf("write %s: %w", path, writeErr)
	}
	return nil
}
