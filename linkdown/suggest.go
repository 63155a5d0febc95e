package linkdown

import "strings"

// SuggestionProvider supplies link suggestions for the editing input.
// Implementations live outside the core; see the loaders package.
type SuggestionProvider interface {
	FetchSuggestions(source string) ([]string, error)
}

// FilterSuggestions returns the suggestions matching prefix,
// case-insensitively. An empty prefix matches everything. Suggestions are
// purely presentational: they never feed validation or normalization.
func FilterSuggestions(suggestions []string, prefix string) []string {
	if len(suggestions) == 0 {
		return nil
	}
	if prefix == "" {
		out := make([]string, len(suggestions))
		copy(out, suggestions)
		return out
	}
	lowered := strings.ToLower(prefix)
	var out []string
	for _, s := range suggestions {
		if strings.HasPrefix(strings.ToLower(s), lowered) {
			out = append(out, s)
		}
	}
	return out
}
