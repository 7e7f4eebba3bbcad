package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// apostrophes maps the unicode apostrophe variants onto the ASCII one, so
// that a possessive clitic always surfaces as 's whatever the source text
// used.
var apostrophes = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"′", "'", // prime
)

// NormalizeToken folds apostrophe variants and applies NFKC normalization.
func NormalizeToken(token string) string {
	return norm.NFKC.String(apostrophes.Replace(token))
}

// Key lowercases a normalized token for use in case-insensitive lookups.
func Key(token string) string {
	return strings.ToLower(NormalizeToken(token))
}
