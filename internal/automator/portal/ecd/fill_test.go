package ecd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"iso input", "2026-10-01", "01/10/2026", false},
		{"already formatted", "01/10/2026", "01/10/2026", false},
		{"padded iso", "  2026-10-01 ", "01/10/2026", false},
		{"us format rejected", "10/25/2026", "", true},
		{"garbage", "next tuesday", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
