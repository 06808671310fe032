package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Variant names a preset combination of optional features.
type Variant string

const (
	// VariantBasic offers field, tone, length and emoji only.
	VariantBasic Variant = "basic"

	// VariantDetails adds the product details input.
	VariantDetails Variant = "details"

	// VariantMultilingual adds the language selector and clipboard copy.
	VariantMultilingual Variant = "multilingual"

	// VariantFull adds image generation.
	VariantFull Variant = "full"

	DefaultVariant = VariantFull
)

var variants = []Variant{VariantBasic, VariantDetails, VariantMultilingual, VariantFull}

// Variants returns the preset names from smallest to largest.
func Variants() []Variant {
	return slices.Clone(variants)
}

// Features switches the optional inputs and actions on or off.
type Features struct {
	DetailsField     bool `json:"details_field"     yaml:"details_field"`
	LanguageSelector bool `json:"language_selector" yaml:"language_selector"`
	Clipboard        bool `json:"clipboard"         yaml:"clipboard"`
	ImageGeneration  bool `json:"image_generation"  yaml:"image_generation"`
}

// FeaturesFor returns the feature set of a preset.
func FeaturesFor(v Variant) (Features, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(string(v)))) {
	case VariantBasic:
		return Features{}, nil
	case VariantDetails:
		return Features{DetailsField: true}, nil
	case VariantMultilingual:
		return Features{DetailsField: true, LanguageSelector: true, Clipboard: true}, nil
	case VariantFull:
		return Features{DetailsField: true, LanguageSelector: true, Clipboard: true, ImageGeneration: true}, nil
	default:
		return Features{}, fmt.Errorf("unknown variant %q", v)
	}
}
