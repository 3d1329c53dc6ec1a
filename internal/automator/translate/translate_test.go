package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_Country(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "JAPAN", "JEPANG"},
		{"lowercase input", "japan", "JEPANG"},
		{"padded input", "  Germany  ", "JERMAN"},
		{"alias", "USA", "AMERIKA SERIKAT"},
		{"no match passes through", "WAKANDA", "WAKANDA"},
		{"empty passes through", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Translate(tc.input, CategoryCountry))
		})
	}
}

func TestTranslate_PurposeCompound(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain purpose", "HOLIDAY", "WISATA"},
		{"compound first keyword wins", "BUSINESS/MEETING/INCENTIVE", "BISNIS"},
		{"compound skips unknown keywords", "SHOPPING/HOLIDAY", "WISATA"},
		{"compound with spaces", "UNKNOWN / MEDICAL", "KESEHATAN"},
		{"compound all unknown passes through", "FOO/BAR", "FOO/BAR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Translate(tc.input, CategoryPurpose))
		})
	}
}

func TestTranslate_UnknownCategory(t *testing.T) {
	tr := NewTranslator()
	assert.Equal(t, "ANYTHING", tr.Translate("ANYTHING", Category("nope")))
}

func TestAirlineName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"code-name form", "SQ - SINGAPORE AIRLINES", "SINGAPORE AIRLINES"},
		{"extra dash in name", "KL - KLM - ROYAL DUTCH", "KLM - ROYAL DUTCH"},
		{"no separator", "GARUDA", "GARUDA"},
		{"padded", "  GA - GARUDA INDONESIA ", "GARUDA INDONESIA"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AirlineName(tc.input))
		})
	}
}
