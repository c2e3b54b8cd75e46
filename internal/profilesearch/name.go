// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profilesearch

import "strings"

// ProfileName guesses the person's name from a LinkedIn result title such as
// "Jane Doe - Senior Engineer - Acme | LinkedIn". It returns the text before
// the first " | ", else before the first " - ", else the whole title, with
// surrounding whitespace removed.
func ProfileName(title string) string {
	for _, sep := range []string{" | ", " - "} {
		if before, _, ok := strings.Cut(title, sep); ok {
			return strings.TrimSpace(before)
		}
	}
	return strings.TrimSpace(title)
}
