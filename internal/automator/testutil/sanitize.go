package testutil

import (
	"fmt"
	"regexp"
)

// SanitizeRule rewrites one category of personal data in a captured fixture.
type SanitizeRule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Description string
}

// FixtureSanitizeRules replace real traveller data captured from the live
// portal with obviously fake values. Replacements keep the original shape
// (a passport number stays a passport number) so parsers and detection
// logic still exercise the same paths.
var FixtureSanitizeRules = []SanitizeRule{
	{
		regexp.MustCompile(`\b[A-Z]{1,2}\d{6,8}\b`),
		`PA1234567`,
		"Passport number",
	},
	{
		regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		`traveller@example.com`,
		"Email address",
	},
	{
		regexp.MustCompile(`\+\d{1,3}[\s-]?\d{3,4}[\s-]?\d{3,4}[\s-]?\d{2,4}`),
		`+62 000 0000 000`,
		"Phone number",
	},
	{
		regexp.MustCompile(`(?i)(token|csrf|session)["\s:=]+["']?[a-zA-Z0-9_-]{20,}["']?`),
		`$1="REDACTED"`,
		"Session token",
	},
	{
		regexp.MustCompile(`(?i)document\.cookie\s*=\s*["'][^"']+["']`),
		`document.cookie="REDACTED"`,
		"Cookie",
	},
}

// SanitizeFixture applies every rule to a captured page and reports what
// changed, one line per matched rule.
func SanitizeFixture(html string) (string, []string) {
	sanitized := html
	var changes []string

	for _, rule := range FixtureSanitizeRules {
		if !rule.Pattern.MatchString(sanitized) {
			continue
		}
		matches := rule.Pattern.FindAllString(sanitized, -1)
		sanitized = rule.Pattern.ReplaceAllString(sanitized, rule.Replacement)
		changes = append(changes, fmt.Sprintf("%s: %d matched", rule.Description, len(matches)))
	}

	return sanitized, changes
}
