package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reScript = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
)

// CleanText strips HTML and collapses whitespace. Scan names, freshness
// labels and removal reasons come straight from the mobile client and get
// echoed into activity strings, so they are cleaned before display.
func CleanText(s string) string {
	// Decode entities first so encoded tags are recognized, then drop
	// script/style blocks whole (bluemonday keeps their inner text).
	s = html.UnescapeString(s)
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")

	s = bluemonday.StripTagsPolicy().Sanitize(s)
	s = html.UnescapeString(s)

	return strings.Join(strings.Fields(s), " ")
}
