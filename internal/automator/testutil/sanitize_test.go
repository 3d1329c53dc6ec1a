package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFixture(t *testing.T) {
	html := `<div>
		<span class="passport">XG4482913</span>
		<span class="email">real.person@gmail.com</span>
		<span class="phone">+61 412 345 678</span>
		<script>document.cookie = "sid=abc123";</script>
	</div>`

	sanitized, changes := SanitizeFixture(html)

	assert.NotContains(t, sanitized, "XG4482913")
	assert.NotContains(t, sanitized, "real.person@gmail.com")
	assert.NotContains(t, sanitized, "+61 412 345 678")
	assert.NotContains(t, sanitized, "sid=abc123")

	assert.Contains(t, sanitized, "PA1234567")
	assert.Contains(t, sanitized, "traveller@example.com")

	assert.Len(t, changes, 4)
}

func TestSanitizeFixture_CleanInput(t *testing.T) {
	html := `<div><h2>Informasi Pribadi / Personal Information</h2></div>`

	sanitized, changes := SanitizeFixture(html)

	assert.Equal(t, html, sanitized)
	assert.Empty(t, changes)
}

func TestSanitizeFixture_PreservesShape(t *testing.T) {
	// A sanitized passport number must still look like a passport number so
	// label-scanning parsers keep matching.
	sanitized, _ := SanitizeFixture(`Passport No: XG4482913`)
	assert.Regexp(t, `Passport No: [A-Z]{1,2}\d{6,8}`, sanitized)
}
