package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims a submitted creator name and collapses inner runs of
// whitespace to a single space.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayName is the upper-cased name used as the heading on cards and the
// detail page.
func DisplayName(s string) string {
	return cases.Upper(language.Und).String(NormalizeName(s))
}
