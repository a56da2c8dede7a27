package github

import (
	"regexp"
	"strings"
)

// linkRelRegex matches one Link header entry: <url>; rel="type".
var linkRelRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// nextPageURL extracts the rel="next" URL from a Link header.
// Returns empty string when there is no next page.
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	for _, part := range strings.Split(linkHeader, ",") {
		matches := linkRelRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 && matches[2] == "next" {
			return matches[1]
		}
	}

	return ""
}
