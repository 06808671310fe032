package domain_test

import (
	"testing"

	"github.com/jonesrussell/north-cloud/content-creator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	got, ok := domain.ParseField("  food & beverage ")
	require.True(t, ok)
	assert.Equal(t, domain.FieldFoodBeverage, got)

	_, ok = domain.ParseField("Agriculture")
	assert.False(t, ok)

	assert.Len(t, domain.Fields(), 9)
}

func TestParseTone(t *testing.T) {
	t.Parallel()

	got, ok := domain.ParseTone("HUMOROUS")
	require.True(t, ok)
	assert.Equal(t, domain.ToneHumorous, got)

	_, ok = domain.ParseTone("Sarcastic")
	assert.False(t, ok)

	assert.Len(t, domain.Tones(), 7)
}

func TestLanguages_DefaultFirstWithNames(t *testing.T) {
	t.Parallel()

	langs := domain.Languages()
	require.NotEmpty(t, langs)
	assert.Equal(t, domain.DefaultLanguage, langs[0].Name)
	assert.Equal(t, "en", langs[0].Code)

	var chinese *domain.LanguageOption
	for i := range langs {
		if langs[i].Code == "zh" {
			chinese = &langs[i]
		}
	}
	require.NotNil(t, chinese)
	assert.Equal(t, domain.Language("Chinese"), chinese.Name)
	assert.Equal(t, "中文", chinese.NativeName)
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.Language
		ok   bool
	}{
		{"English", "English", true},
		{" chinese ", "Chinese", true},
		{"zh", "Chinese", true},
		{"ES", "Spanish", true},
		{"Klingon", "", false},
	}

	for _, tt := range tests {
		got, ok := domain.ParseLanguage(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestIsDefaultLanguage(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsDefaultLanguage("English"))
	assert.True(t, domain.IsDefaultLanguage("  english "))
	assert.False(t, domain.IsDefaultLanguage("Chinese"))
	assert.False(t, domain.IsDefaultLanguage(""))
}

func TestWordLengths(t *testing.T) {
	t.Parallel()

	lengths := domain.WordLengths()
	assert.Len(t, lengths, 10)
	assert.Equal(t, 50, lengths[0])
	assert.Equal(t, 500, lengths[len(lengths)-1])

	assert.True(t, domain.ValidWordLength(150))
	assert.False(t, domain.ValidWordLength(175))
	assert.False(t, domain.ValidWordLength(0))
	assert.False(t, domain.ValidWordLength(550))
}

func TestFeaturesFor(t *testing.T) {
	t.Parallel()

	basic, err := domain.FeaturesFor(domain.VariantBasic)
	require.NoError(t, err)
	assert.Equal(t, domain.Features{}, basic)

	full, err := domain.FeaturesFor("FULL")
	require.NoError(t, err)
	assert.True(t, full.DetailsField)
	assert.True(t, full.LanguageSelector)
	assert.True(t, full.Clipboard)
	assert.True(t, full.ImageGeneration)

	multi, err := domain.FeaturesFor(domain.VariantMultilingual)
	require.NoError(t, err)
	assert.False(t, multi.ImageGeneration)
	assert.True(t, multi.Clipboard)

	_, err = domain.FeaturesFor("deluxe")
	require.Error(t, err)
}
