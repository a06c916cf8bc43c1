package proposal

import "regexp"

var listItemSeparator = regexp.MustCompile(`\n\s*-\s*`)

// ParseList splits a list-style template ("- first\n- second") into its
// proposals. Text after each dash is kept verbatim, inline markup included.
// A template without dash-prefixed lines yields an empty list.
func ParseList(template string) []string {
	if template == "" {
		return []string{}
	}
	// The leading line break lets the first item match like the others; the
	// fragment before it is always empty or non-proposal text.
	parts := listItemSeparator.Split("\n"+template, -1)
	return parts[1:]
}
