package thread

import (
	"regexp"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

// trailingMention matches an @token at the end of the input: start of
// string or whitespace, a literal @, then zero or more word characters
// running to the end. Only the tail of the input can open a suggestion.
var trailingMention = regexp.MustCompile(`(^|\s)@(\w*)$`)

// leadingMention strips a mention token from the front of a string during
// insertion.
var leadingMention = regexp.MustCompile(`^@\w*`)

// MatchQuery extracts the mention query from the end of the input. The
// second return is false when the input does not end in a mention token.
// An empty query with ok=true means the user just typed "@".
func MatchQuery(text string) (string, bool) {
	m := trailingMention.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// Suggest filters the directory by case-insensitive substring match of the
// query against user names, capped at limit results.
func Suggest(users []api.User, query string, limit int) []api.User {
	query = strings.ToLower(query)
	var out []api.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), query) {
			out = append(out, u)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// InsertMention replaces the mention the user is typing with the selected
// user's full name and a trailing space. The splice targets the last "@" in
// the text, not the cursor position: everything before it is preserved, the
// "@token" following it is replaced with "@<name>", the remaining text is
// re-appended, and a single space lands at the very end. When the text has
// an earlier "@" elsewhere, the last occurrence is still the one targeted;
// that is the intended simplification, kept as-is.
func InsertMention(text, name string) string {
	idx := strings.LastIndex(text, "@")
	if idx < 0 {
		return text
	}
	before := text[:idx]
	after := leadingMention.ReplaceAllString(text[idx:], "")
	return before + "@" + name + after + " "
}
