package linkdown

import (
	"regexp"
	"strings"
	"unicode"
)

// matches "scheme:" and "scheme://" prefixes
var schemePattern = regexp.MustCompile(`^\w+:(//)?`)

// Validate reports whether raw is acceptable as a link value. The only
// rejection is embedded whitespace; scheme and host correctness are
// deliberately not verified here.
func Validate(raw string) bool {
	return strings.IndexFunc(raw, unicode.IsSpace) < 0
}

// Normalize rewrites a raw link into its canonical stored form: surrounding
// whitespace is trimmed and, unless the value already carries an explicit
// scheme or matches one of the internal reference shapes, "http://" is
// prepended. Normalize is idempotent.
func Normalize(raw string) NormalizedLink {
	link := strings.TrimSpace(raw)
	if schemePattern.MatchString(link) {
		return NormalizedLink(link)
	}
	if IsInternalReference(link) {
		return NormalizedLink(link)
	}
	return NormalizedLink("http://" + link)
}
