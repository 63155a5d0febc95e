package linkdown

import "github.com/microcosm-cc/bluemonday"

// SanitizePolicy returns the sanitization rule covering the markup this tool
// introduces: anchor elements carrying href and title attributes must survive
// sanitization, and nothing else is added by the tool.
func SanitizePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("href", "title").OnElements("a")
	return p
}
