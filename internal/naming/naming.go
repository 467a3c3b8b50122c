// Package naming converts project names into identifiers used inside generated source.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSymbolCase converts a snake_case identifier to PascalCase.
// Examples: "my_cool_mod" -> "MyCoolMod", "already" -> "Already", "2d_game" -> "2dGame".
//
// Only underscores separate segments. Empty segments produce nothing, and the
// remainder of each segment is passed through unchanged.
func ToSymbolCase(identifier string) string {
	// A Caser is stateful and must not be shared between goroutines.
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(identifier))

	for _, segment := range strings.Split(identifier, "_") {
		if segment == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(segment)
		b.WriteString(upper.String(string(first)))
		b.WriteString(segment[size:])
	}

	return b.String()
}
