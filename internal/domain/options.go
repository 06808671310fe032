package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Field is the business field the marketing content is written for.
type Field string

const (
	FieldEducation    Field = "Education"
	FieldHealthcare   Field = "Healthcare"
	FieldMedical      Field = "Medical"
	FieldFoodBeverage Field = "Food & Beverage"
	FieldTechnology   Field = "Technology"
	FieldFashion      Field = "Fashion"
	FieldTravel       Field = "Travel"
	FieldFinance      Field = "Finance"
	FieldRealEstate   Field = "Real Estate"
)

// DefaultField is preselected in the form.
const DefaultField = FieldEducation

var fields = []Field{
	FieldEducation, FieldHealthcare, FieldMedical, FieldFoodBeverage, FieldTechnology,
	FieldFashion, FieldTravel, FieldFinance, FieldRealEstate,
}

// Fields returns the supported fields in display order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// ParseField matches s against the supported fields, ignoring case and
// surrounding whitespace.
func ParseField(s string) (Field, bool) {
	return matchOption(fields, s)
}

// Tone is the voice of the generated content.
type Tone string

const (
	ToneFormal        Tone = "Formal"
	ToneJoyful        Tone = "Joyful"
	ToneProfessional  Tone = "Professional"
	ToneCasual        Tone = "Casual"
	ToneInspirational Tone = "Inspirational"
	ToneHumorous      Tone = "Humorous"
	TonePersuasive    Tone = "Persuasive"
)

// DefaultTone is preselected in the form.
const DefaultTone = ToneFormal

var tones = []Tone{
	ToneFormal, ToneJoyful, ToneProfessional, ToneCasual, ToneInspirational, ToneHumorous, TonePersuasive,
}

// Tones returns the supported tones in display order.
func Tones() []Tone {
	return append([]Tone(nil), tones...)
}

// ParseTone matches s against the supported tones, ignoring case and
// surrounding whitespace.
func ParseTone(s string) (Tone, bool) {
	return matchOption(tones, s)
}

// Language is an output language, identified by its English name.
type Language string

// DefaultLanguage is the language used when none is chosen. Token budgets
// are smallest for it.
const DefaultLanguage Language = "English"

// LanguageOption describes one selectable output language.
type LanguageOption struct {
	Code       string   `json:"code"`
	Name       Language `json:"name"`
	NativeName string   `json:"native_name"`
}

var languageTags = []language.Tag{
	language.English,
	language.Chinese,
	language.Spanish,
	language.French,
	language.German,
	language.Portuguese,
	language.Italian,
	language.Japanese,
	language.Korean,
	language.Arabic,
	language.Hindi,
	language.Russian,
	language.Indonesian,
	language.Vietnamese,
}

var languageOptions = buildLanguageOptions()

func buildLanguageOptions() []LanguageOption {
	names := display.English.Languages()
	opts := make([]LanguageOption, 0, len(languageTags))
	for _, tag := range languageTags {
		opts = append(opts, LanguageOption{
			Code:       tag.String(),
			Name:       Language(names.Name(tag)),
			NativeName: display.Self.Name(tag),
		})
	}
	return opts
}

// Languages returns the supported output languages, default first.
func Languages() []LanguageOption {
	return append([]LanguageOption(nil), languageOptions...)
}

// ParseLanguage accepts an English language name ("Chinese") or a BCP 47
// code ("zh"), ignoring case.
func ParseLanguage(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range languageOptions {
		if strings.EqualFold(s, string(opt.Name)) || strings.EqualFold(s, opt.Code) {
			return opt.Name, true
		}
	}
	return "", false
}

// IsDefaultLanguage reports whether name denotes DefaultLanguage. The
// comparison trims whitespace and ignores case.
func IsDefaultLanguage(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), string(DefaultLanguage))
}

// Word length bounds. Lengths move in WordLengthStep increments.
const (
	MinWordLength     = 50
	MaxWordLength     = 500
	WordLengthStep    = 50
	DefaultWordLength = 150
)

// WordLengths returns every selectable word length.
func WordLengths() []int {
	lengths := make([]int, 0, (MaxWordLength-MinWordLength)/WordLengthStep+1)
	for n := MinWordLength; n <= MaxWordLength; n += WordLengthStep {
		lengths = append(lengths, n)
	}
	return lengths
}

// ValidWordLength reports whether n is in range and on a step boundary.
func ValidWordLength(n int) bool {
	return n >= MinWordLength && n <= MaxWordLength && (n-MinWordLength)%WordLengthStep == 0
}

func matchOption[T ~string](options []T, s string) (T, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range options {
		if strings.EqualFold(s, string(opt)) {
			return opt, true
		}
	}
	var zero T
	return zero, false
}
