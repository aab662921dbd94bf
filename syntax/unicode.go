// This file trims _examples/boergens-gotypst/syntax/unicode.go down to the
// character classification Helios's single-mode grammar actually needs:
// identifier start/continue predicates and a rune-name lookup for
// diagnostics. Typst's math-mode identifier rules, math class table, and
// script detection have no equivalent in this grammar and are dropped.
package syntax

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// IsIDStart reports whether c can start an identifier: Unicode XID_Start
// plus underscore, per spec §4.1.
func IsIDStart(c rune) bool {
	return unicode.Is(unicode.L, c) || // Letters
		unicode.Is(unicode.Nl, c) || // Letter numbers
		c == '_'
}

// IsIDContinue reports whether c can continue an identifier: Unicode
// XID_Continue plus underscore, per spec §4.1. Unlike the teacher's own
// IsIDContinue (which also admits `-`, for Typst's kebab-case
// identifiers), Helios does not: `-` is SymMinus, a binary/prefix
// operator (spec §6), so admitting it into identifiers would make `a-1`
// lex as one Identifier token instead of `a`, `-`, `1`.
func IsIDContinue(c rune) bool {
	return unicode.Is(unicode.L, c) || // Letters
		unicode.Is(unicode.Nl, c) || // Letter numbers
		unicode.Is(unicode.Mn, c) || // Nonspacing marks
		unicode.Is(unicode.Mc, c) || // Spacing combining marks
		unicode.Is(unicode.Nd, c) || // Decimal digits
		unicode.Is(unicode.Pc, c) || // Connector punctuation
		c == '_'
}

// IsIdent reports whether s is a syntactically valid Helios identifier.
func IsIdent(s string) bool {
	if len(s) == 0 {
		return false
	}
	runes := []rune(s)
	if !IsIDStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !IsIDContinue(r) {
			return false
		}
	}
	return true
}

// describeRune renders a rune for a BadCharacter diagnostic: its code
// point plus its Unicode name, e.g. "U+0041 (LATIN CAPITAL LETTER A)";
// control characters carry the name "<control>". Falls back to just
// the code point when the rune has no assigned name. Grounded on the
// teacher's GetScript, which calls runenames.Name for a similar purpose
// (script lookup); here the dependency serves diagnostic quality instead.
func describeRune(c rune) string {
	codePoint := fmt.Sprintf("U+%04X", c)
	if name := runenames.Name(c); name != "" {
		return fmt.Sprintf("%s (%s)", codePoint, name)
	}
	return codePoint
}
