// This file replaces _examples/boergens-gotypst/syntax/error.go's simple
// {Message, Hints} error with the tagged-union diagnostic model spec §7
// describes: a closed set of lexical and syntactic DiagnosticKinds, each
// carrying only the data needed to render it, wrapped in a Message that
// locates it in a file.
package syntax

import "fmt"

// DiagnosticKind is a closed set of the reasons a diagnostic can be
// produced. Each concrete type below implements it.
type DiagnosticKind interface {
	diagnosticKind()
	// Error renders the diagnostic as prose, using SyntaxKind.Describe()
	// for any kind values it carries.
	Error() string
}

// Lexical diagnostics (produced by the lexer or the indentation rewriter).

// BadCharacter reports a byte/rune the lexer could not classify into any
// token.
type BadCharacter struct{ Rune rune }

func (BadCharacter) diagnosticKind() {}
func (d BadCharacter) Error() string {
	return fmt.Sprintf("unexpected character %s", describeRune(d.Rune))
}

// UnterminatedLiteral reports a character or string literal whose closing
// delimiter was never found before a newline or end of input.
type UnterminatedLiteral struct{ Kind SyntaxKind }

func (UnterminatedLiteral) diagnosticKind() {}
func (d UnterminatedLiteral) Error() string {
	return fmt.Sprintf("unterminated %s", d.Kind.Describe())
}

// InvalidEscape reports an unrecognized `\x` escape sequence inside a
// character or string literal.
type InvalidEscape struct{ Escape string }

func (InvalidEscape) diagnosticKind() {}
func (d InvalidEscape) Error() string {
	return fmt.Sprintf("invalid escape sequence `\\%s`", d.Escape)
}

// InconsistentDedent reports a dedent whose column does not match any
// enclosing indentation level on the stack (spec §4.2).
type InconsistentDedent struct {
	Got      int
	Expected []int
}

func (InconsistentDedent) diagnosticKind() {}
func (d InconsistentDedent) Error() string {
	return fmt.Sprintf("inconsistent dedent: column %d does not match any enclosing indentation level", d.Got)
}

// Syntactic diagnostics (produced by the parser).

// Expected reports that the parser needed a token from a specific set but
// found something else.
type Expected struct {
	Set   SyntaxSet
	Found SyntaxKind
}

func (Expected) diagnosticKind() {}
func (d Expected) Error() string {
	return fmt.Sprintf("expected %s, found %s", describeSet(d.Set), d.Found.Describe())
}

// Missing reports that the parser synthesized a placeholder for a single
// required token that was absent (used for cheap, single-token recovery
// instead of the broader Expected diagnostic).
type Missing struct{ Kind SyntaxKind }

func (Missing) diagnosticKind() {}
func (d Missing) Error() string {
	return fmt.Sprintf("missing %s", d.Kind.Describe())
}

// UnexpectedToken reports a token that could not be consumed by any
// production active at the parser's current recovery point.
type UnexpectedToken struct{ Found SyntaxKind }

func (UnexpectedToken) diagnosticKind() {}
func (d UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected %s", d.Found.Describe())
}

// UnexpectedEof reports that input ended while a construct was still open.
type UnexpectedEof struct{ Context string }

func (UnexpectedEof) diagnosticKind() {}
func (d UnexpectedEof) Error() string {
	if d.Context == "" {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected end of input while parsing %s", d.Context)
}

// describeSet renders a small SyntaxSet as a disjunctive prose list. Used
// only for Expected diagnostics, whose sets are small (a handful of
// alternatives at a single recovery point), so no truncation logic is
// needed.
func describeSet(set SyntaxSet) string {
	var kinds []SyntaxKind
	for k := End; k <= ReservedIdentifier; k++ {
		if set.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].Describe()
	default:
		out := kinds[0].Describe()
		for _, k := range kinds[1 : len(kinds)-1] {
			out += ", " + k.Describe()
		}
		out += " or " + kinds[len(kinds)-1].Describe()
		return out
	}
}

// Message is a single diagnostic: what went wrong, where it happened, and
// in which file. Matches spec §6's wire format {file_id, kind, range}.
type Message struct {
	File  FileID
	Kind  DiagnosticKind
	Range Range
}

// Error implements the error interface by delegating to Kind.
func (m Message) Error() string {
	return m.Kind.Error()
}

// SyntaxError is a presentation-layer enrichment of a Message: the same
// diagnostic, plus optional hints a caller attaches before displaying it
// (a suggested fix, a pointer to a related span). The flat []Message a
// Parse carries is the data of record; SyntaxError exists for callers
// like cmd/helios that want to build up a richer value to print without
// changing what's stored in the tree's diagnostic list. Grounded on
// _examples/boergens-gotypst/syntax/error.go's SyntaxError{Span, Message,
// Hints}.
type SyntaxError struct {
	Span    Span
	Message string
	Hints   []string
}

// NewSyntaxError creates a syntax error with no hints.
func NewSyntaxError(span Span, message string) *SyntaxError {
	return &SyntaxError{Span: span, Message: message}
}

// ToSyntaxError converts a Message into a SyntaxError ready for hints to
// be attached, using m.Error() as the rendered message text.
func (m Message) ToSyntaxError() *SyntaxError {
	return NewSyntaxError(NewSpan(m.File, m.Range.Start, m.Range.End), m.Error())
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Message
}

// AddHint appends a hint to the error.
func (e *SyntaxError) AddHint(hint string) {
	e.Hints = append(e.Hints, hint)
}
