package domain

import (
	"strconv"
	"strings"
)

// ContentRequest is one user's choice of generation options.
type ContentRequest struct {
	Field         Field    `json:"field"`
	Details       string   `json:"details"`
	Tone          Tone     `json:"tone"`
	Language      Language `json:"language"`
	WordLength    int      `json:"word_length"`
	IncludeEmoji  bool     `json:"include_emoji"`
	GenerateImage bool     `json:"generate_image"`
}

// DefaultContentRequest returns the initial form values.
func DefaultContentRequest() ContentRequest {
	return ContentRequest{
		Field:      DefaultField,
		Tone:       DefaultTone,
		Language:   DefaultLanguage,
		WordLength: DefaultWordLength,
	}
}

// Normalize returns a copy with defaults filled in, enum values in their
// canonical spelling and disabled features cleared. Details text is kept
// verbatim when the details feature is on.
func (r ContentRequest) Normalize(f Features) ContentRequest {
	if r.WordLength == 0 {
		r.WordLength = DefaultWordLength
	}
	if field, ok := ParseField(string(r.Field)); ok {
		r.Field = field
	}
	if tone, ok := ParseTone(string(r.Tone)); ok {
		r.Tone = tone
	}

	switch {
	case !f.LanguageSelector, strings.TrimSpace(string(r.Language)) == "":
		r.Language = DefaultLanguage
	default:
		if lang, ok := ParseLanguage(string(r.Language)); ok {
			r.Language = lang
		}
	}

	if !f.DetailsField {
		r.Details = ""
	}
	if !f.ImageGeneration {
		r.GenerateImage = false
	}
	return r
}

// Validate checks a normalized request. With the details feature on, blank
// details are rejected.
func (r ContentRequest) Validate(f Features) error {
	if _, ok := ParseField(string(r.Field)); !ok {
		return &ValidationError{Field: "field", Message: "unsupported field " + strconv.Quote(string(r.Field))}
	}
	if f.DetailsField && strings.TrimSpace(r.Details) == "" {
		return &ValidationError{Field: "details", Message: "please enter product details"}
	}
	if _, ok := ParseTone(string(r.Tone)); !ok {
		return &ValidationError{Field: "tone", Message: "unsupported tone " + strconv.Quote(string(r.Tone))}
	}
	if _, ok := ParseLanguage(string(r.Language)); !ok {
		return &ValidationError{Field: "language", Message: "unsupported language " + strconv.Quote(string(r.Language))}
	}
	if !ValidWordLength(r.WordLength) {
		return &ValidationError{
			Field: "word_length",
			Message: "word length must be between " + strconv.Itoa(MinWordLength) + " and " +
				strconv.Itoa(MaxWordLength) + " in steps of " + strconv.Itoa(WordLengthStep),
		}
	}
	return nil
}
