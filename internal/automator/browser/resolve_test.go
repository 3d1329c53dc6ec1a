package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixSelector(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		attr   string
		prefix string
		want   string
	}{
		{"input by id", "input", "id", "passport", `input[id^="passport"]`},
		{"textarea by id", "textarea", "id", "address", `textarea[id^="address"]`},
		{"div by class prefix", "div", "class", "el-select", `div[class^="el-select"]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PrefixSelector(tc.tag, tc.attr, tc.prefix))
		})
	}
}
