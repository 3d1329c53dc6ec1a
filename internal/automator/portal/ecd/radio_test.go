package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchQuestionTopic(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTopic string
		wantOK    bool
	}{
		{
			"visa question english",
			"Do you have a visa?",
			"visa", true,
		},
		{
			"goods question indonesian",
			"Apakah Anda membawa barang kena cukai?",
			"goods", true,
		},
		{
			"quarantine question english",
			"Are you carrying animals or plants?",
			"quarantine", true,
		},
		{
			"currency question indonesian",
			"Apakah Anda membawa uang tunai lebih dari batas?",
			"currency", true,
		},
		{
			"symptoms question",
			"Have you experienced fever in the last 14 days?",
			"symptoms", true,
		},
		{
			"unrelated block",
			"Nomor telepon / Phone number",
			"", false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topic, ok := matchQuestionTopic(tc.text)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantTopic, topic)
		})
	}
}

func TestAnswerLabelMatches(t *testing.T) {
	tests := []struct {
		name  string
		label string
		yes   bool
		want  bool
	}{
		{"english yes", "Yes", true, true},
		{"indonesian yes", "Ya", true, true},
		{"english no", "No", false, true},
		{"indonesian no", "Tidak", false, true},
		{"padded label", "  Ya  ", true, true},
		{"case insensitive", "YES", true, true},
		{"yes is not a no", "Yes", false, false},
		{"no is not a yes", "Tidak", true, false},
		{"unrelated label", "Mungkin", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, answerLabelMatches(tc.label, tc.yes))
		})
	}
}
