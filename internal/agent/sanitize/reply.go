// Package sanitize cleans generated text before it is returned to clients.
package sanitize

import (
	"regexp"
	"strings"
)

// space matches the characters strings.TrimSpace removes
const space = `[\s\v\p{Z}\x{85}]`

var (
	// hashtagPattern is '#' followed by at least one non-space, non-'#'
	// character, plus one preceding whitespace character if present
	hashtagPattern = regexp.MustCompile(space + `?#[^\s\v\p{Z}\x{85}#]+`)
	spaceRun       = regexp.MustCompile(space + `{2,}`)
)

// Reply strips hashtags and collapses whitespace. It is idempotent.
func Reply(raw string) string {
	result := strings.TrimSpace(raw)
	if result == "" {
		return ""
	}
	result = hashtagPattern.ReplaceAllString(result, " ")
	result = spaceRun.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
