// Package prompt turns a ContentRequest into the instruction strings and
// request parameters sent to the text and image endpoints. Everything here
// is pure.
package prompt

import (
	"strconv"
	"strings"

	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
)

const (
	// Temperature is fixed for every text request.
	Temperature = 0.7

	// ImageCount and ImageSize are fixed for every image request.
	ImageCount = 1
	ImageSize  = "1024x1024"

	defaultLanguageTokensPerWord = 2
	otherLanguageTokensPerWord   = 3

	// EmojiDirective is appended when emojis are requested.
	EmojiDirective = "Include relevant emojis to make the content engaging."

	// RoleUser is the only message role sent.
	RoleUser = "user"
)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TextRequest is the provider-neutral text generation payload.
type TextRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// Prompt returns the content of the first message.
func (r TextRequest) Prompt() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].Content
}

// ImageRequest is the image generation payload.
type ImageRequest struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"n"`
	Size   string `json:"size"`
}

// BuildTextPrompt assembles the text instruction. Sentences are joined with
// single spaces in a fixed order: field, details, tone, length, language and,
// only when requested, the emoji directive. Details are inserted verbatim.
func BuildTextPrompt(req domain.ContentRequest) string {
	sentences := make([]string, 0, 6)
	sentences = append(sentences, "Write a creative marketing content for the "+string(req.Field)+" field.")
	if strings.TrimSpace(req.Details) != "" {
		sentences = append(sentences, req.Details)
	}
	sentences = append(sentences,
		"The tone should be "+string(req.Tone)+".",
		"The content should be approximately "+strconv.Itoa(req.WordLength)+" words long.",
		"The content should be written in "+string(req.Language)+".",
	)
	if req.IncludeEmoji {
		sentences = append(sentences, EmojiDirective)
	}
	return strings.Join(sentences, " ")
}

// TokenBudget estimates max output tokens: two per word for the default
// language, three per word otherwise.
func TokenBudget(wordLength int, language string) int {
	if domain.IsDefaultLanguage(language) {
		return wordLength * defaultLanguageTokensPerWord
	}
	return wordLength * otherLanguageTokensPerWord
}

// BuildTextRequest wraps BuildTextPrompt in a single user message for model.
func BuildTextRequest(req domain.ContentRequest, model string) TextRequest {
	return TextRequest{
		Model:       model,
		Messages:    []Message{{Role: RoleUser, Content: BuildTextPrompt(req)}},
		MaxTokens:   TokenBudget(req.WordLength, string(req.Language)),
		Temperature: Temperature,
	}
}

// BuildImagePrompt asks for one square marketing image of the product.
func BuildImagePrompt(req domain.ContentRequest) string {
	var b strings.Builder
	b.WriteString("Create a single square marketing image for the ")
	b.WriteString(string(req.Field))
	b.WriteString(" field")
	if details := strings.TrimSpace(req.Details); details != "" {
		b.WriteString(" featuring: ")
		b.WriteString(details)
		if !strings.HasSuffix(details, ".") {
			b.WriteString(".")
		}
	} else {
		b.WriteString(".")
	}
	b.WriteString(" Use a ")
	b.WriteString(string(req.Tone))
	b.WriteString(" visual style. Do not include any text in the image.")
	return b.String()
}

// BuildImageRequest returns BuildImagePrompt with the fixed count and size.
func BuildImageRequest(req domain.ContentRequest) ImageRequest {
	return ImageRequest{
		Prompt: BuildImagePrompt(req),
		Count:  ImageCount,
		Size:   ImageSize,
	}
}
