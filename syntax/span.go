// This file is a simplified Go translation of
// _examples/boergens-gotypst/syntax/span.go (itself a port of
// typst-syntax/src/span.rs). The teacher's Span packs either a numbered
// span (for incremental-reparse cache stability) or a raw byte range into
// one 64-bit word. Incremental reparsing is out of scope here (spec
// Non-goals), so Span is simplified to a plain file id plus byte range —
// keeping the Detached/Or/FindSpan/Spanned API shape the rest of the
// package is built around.
package syntax

import "fmt"

// FileID identifies a source file. The zero value, NoFile, represents a
// detached span with no source file.
type FileID uint32

// NoFile is the detached/invalid file id.
const NoFile FileID = 0

// Range is a half-open byte range [Start, End) into a source file's text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Span locates a byte range within a specific source file. The zero value
// is Detached.
type Span struct {
	file  FileID
	rng   Range
	valid bool
}

// Detached returns a span that does not point into any file.
func Detached() Span {
	return Span{}
}

// NewSpan creates a span covering [start, end) in the given file.
func NewSpan(file FileID, start, end int) Span {
	return Span{file: file, rng: Range{Start: start, End: end}, valid: true}
}

// IsDetached reports whether the span points into any file.
func (s Span) IsDetached() bool { return !s.valid }

// File returns the file the span points into, or NoFile if detached.
func (s Span) File() FileID { return s.file }

// Range returns the byte range the span covers. The second result is false
// if the span is detached.
func (s Span) Range() (Range, bool) {
	if !s.valid {
		return Range{}, false
	}
	return s.rng, true
}

// Or returns other if s is detached, and s otherwise. Used to fill in a
// span for a synthesized node from whichever child actually has one.
func (s Span) Or(other Span) Span {
	if s.IsDetached() {
		return other
	}
	return s
}

// String implements fmt.Stringer.
func (s Span) String() string {
	if !s.valid {
		return "Span(detached)"
	}
	return fmt.Sprintf("Span(file=%d, range=%d..%d)", s.file, s.rng.Start, s.rng.End)
}

// FindSpan returns the first non-detached span in spans, or Detached() if
// every span is detached (including when spans is empty).
func FindSpan(spans []Span) Span {
	for _, span := range spans {
		if !span.IsDetached() {
			return span
		}
	}
	return Detached()
}

// Spanned pairs a value with its source code location.
type Spanned[T any] struct {
	V    T
	Span Span
}

// NewSpanned creates a new Spanned from a value and its span.
func NewSpanned[T any](v T, span Span) Spanned[T] {
	return Spanned[T]{V: v, Span: span}
}

// SpannedDetached creates a new Spanned with a detached span.
func SpannedDetached[T any](v T) Spanned[T] {
	return Spanned[T]{V: v, Span: Detached()}
}

// Map transforms the value using f, preserving the span.
func (s Spanned[T]) Map(f func(T) T) Spanned[T] {
	return Spanned[T]{V: f(s.V), Span: s.Span}
}

// String implements fmt.Stringer for Spanned values.
func (s Spanned[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}
