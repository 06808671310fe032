// Package imagegen calls a hosted image generation endpoint.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	infraerrors "github.com/jonesrussell/north-cloud/content-creator/infrastructure/errors"
	infrahttp "github.com/jonesrussell/north-cloud/content-creator/infrastructure/http"
	"github.com/jonesrussell/north-cloud/content-creator/internal/prompt"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "dall-e-3"

	pngDataURIPrefix = "data:image/png;base64,"
)

// ErrNoImage is returned when the endpoint answers without an image.
var ErrNoImage = errors.New("no image in response")

// ImageGenerator produces an image reference for a prepared request: an
// https URL or a data: URI.
type ImageGenerator interface {
	Generate(ctx context.Context, req prompt.ImageRequest) (string, error)
}

// Client talks to an OpenAI-compatible /images/generations endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a client. Empty baseURL or model select the defaults; a
// nil httpClient gets the shared client defaults.
func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if httpClient == nil {
		httpClient = infrahttp.NewClient(nil)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type generationResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Generate requests one image and returns its reference.
func (c *Client) Generate(ctx context.Context, req prompt.ImageRequest) (string, error) {
	body, err := json.Marshal(generationRequest{
		Model:  c.model,
		Prompt: req.Prompt,
		N:      req.Count,
		Size:   req.Size,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("image generation request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if httpErr := infraerrors.ParseHTTPError(resp); httpErr != nil {
		return "", fmt.Errorf("image generation: %w", httpErr)
	}

	var out generationResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return "", fmt.Errorf("decode image generation: %w", decodeErr)
	}
	if len(out.Data) == 0 {
		return "", ErrNoImage
	}

	switch first := out.Data[0]; {
	case first.URL != "":
		return first.URL, nil
	case first.B64JSON != "":
		return pngDataURIPrefix + first.B64JSON, nil
	default:
		return "", ErrNoImage
	}
}
