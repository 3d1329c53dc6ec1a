package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchOption(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		options  []string
		wantIdx  int
		wantKind optionMatch
	}{
		{
			"exact match",
			"WISATA",
			[]string{"BISNIS", "WISATA", "TRANSIT"},
			1, matchExact,
		},
		{
			"exact match is case and whitespace insensitive",
			"  wisata ",
			[]string{"BISNIS", "WISATA"},
			1, matchExact,
		},
		{
			"option contains search",
			"SINGAPORE AIRLINES",
			[]string{"SQ - SINGAPORE AIRLINES", "TR - SCOOT"},
			0, matchSubstring,
		},
		{
			"search contains option",
			"I GUSTI NGURAH RAI (DPS) AIRPORT",
			[]string{"I GUSTI NGURAH RAI (DPS)"},
			0, matchSubstring,
		},
		{
			"fallback to first filtered option",
			"NO SUCH THING",
			[]string{"OPTION A", "OPTION B"},
			0, matchFallback,
		},
		{
			"no options",
			"ANYTHING",
			nil,
			-1, matchNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, kind := matchOption(tc.search, tc.options)
			assert.Equal(t, tc.wantIdx, idx)
			assert.Equal(t, tc.wantKind, kind)
		})
	}
}

func TestMatchOption_ExactAlwaysBeatsFallback(t *testing.T) {
	// If an exact match exists anywhere in the list, the fallback path
	// must be unreachable, regardless of position.
	options := []string{"SQ - SINGAPORE AIRLINES", "GARUDA INDONESIA", "SCOOT"}

	idx, kind := matchOption("scoot", options)

	assert.Equal(t, 2, idx)
	assert.Equal(t, matchExact, kind)
}

func TestMatchOption_ExactBeatsEarlierSubstring(t *testing.T) {
	// "JAPAN" is a substring of option 0, but option 2 matches exactly.
	options := []string{"JAPAN AIRLINES", "KOREAN AIR", "JAPAN"}

	idx, kind := matchOption("JAPAN", options)

	assert.Equal(t, 2, idx)
	assert.Equal(t, matchExact, kind)
}
