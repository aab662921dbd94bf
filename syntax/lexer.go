// This file replaces _examples/boergens-gotypst/syntax/lexer.go's
// mode-switching (markup/math/code) lexer with a single-mode lexer for
// Helios, grounded on the same Next()-loop structure: eat one rune, switch
// on it, delegate to a helper that consumes the rest of the token. Unlike
// the teacher, this lexer does not build tree nodes directly — per spec
// §4.1/§4.3, it produces a flat Token stream that the indentation rewriter
// and parser consume; tree construction happens later, in the event sink.
package syntax


// Token is one lexical unit: a kind and the byte range it spans in the
// source text. Grounded on the cached-lexer-output Token the teacher's
// parser.go builds internally, generalized into the lexer's own public
// output type per spec §4.3.
type Token struct {
	Kind  SyntaxKind
	Range Range
}

// Text returns the token's source text.
func (t Token) Text(source string) string {
	return source[t.Range.Start:t.Range.End]
}

// Lexer scans raw Helios source text into a flat stream of Tokens. It
// performs no indentation analysis and builds no tree; see indent.go for
// the off-side-rule rewriter that runs on its output.
type Lexer struct {
	s             *Scanner
	file          FileID
	extraReserved map[string]bool
}

// NewLexer creates a lexer over text, attributing diagnostics to file.
func NewLexer(file FileID, text string) *Lexer {
	return &Lexer{s: NewScanner(text), file: file}
}

// NewLexerWithReserved is NewLexer, additionally treating every word in
// extraReserved as a reserved identifier (lexed as ReservedIdentifier
// rather than Identifier) without giving it a dedicated keyword kind or
// grammar role — the same treatment the built-in placeholder `_` gets.
// This is what ProjectManifest.Lexer.ExtraReservedWords (manifest.go)
// drives: a project can forbid a word as a binding name without Helios
// itself needing to know what the word means.
func NewLexerWithReserved(file FileID, text string, extraReserved map[string]bool) *Lexer {
	return &Lexer{s: NewScanner(text), file: file, extraReserved: extraReserved}
}

// Tokenize scans text to completion and returns every token (including an
// explicit token for each diagnostic position) plus any diagnostics
// produced. This is the `tokenize` entry point from spec §5.
func Tokenize(file FileID, text string) ([]Token, []Message) {
	return tokenizeWith(NewLexer(file, text))
}

// TokenizeWithReserved is Tokenize, lexing through a
// NewLexerWithReserved-configured Lexer.
func TokenizeWithReserved(file FileID, text string, extraReserved map[string]bool) ([]Token, []Message) {
	return tokenizeWith(NewLexerWithReserved(file, text, extraReserved))
}

func tokenizeWith(lexer *Lexer) ([]Token, []Message) {
	var tokens []Token
	var messages []Message
	for {
		tok, msg := lexer.Next()
		tokens = append(tokens, tok)
		if msg != nil {
			messages = append(messages, *msg)
		}
		if tok.Kind == End {
			return tokens, messages
		}
	}
}

// Next scans and returns the next token, plus a diagnostic if the token is
// malformed. Returns a zero-length End token, repeatedly, once exhausted.
func (l *Lexer) Next() (Token, *Message) {
	start := l.s.Cursor()
	c := l.s.Eat()

	var kind SyntaxKind
	var msg *Message

	switch {
	case l.s.Cursor() == start:
		kind = End
	case c == '\n':
		// Spec §4.1: a Newline token's text is the line feed plus the run of
		// leading whitespace on the following line, so the indentation
		// rewriter (indent.go) can measure that line's indent width straight
		// off this one token instead of peeking into a separate Whitespace
		// token — keeping Indent/Dedent's synthesized ranges (copied from
		// this token) contiguous with their neighbours.
		l.s.EatWhile(func(r rune) bool { return r == ' ' || r == '\t' })
		kind = Newline
	case c == ' ' || c == '\t' || c == '\r':
		l.s.EatWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\r' })
		kind = Whitespace
	case c == '/' && l.s.EatIf('/'):
		kind = l.comment()
	case c == '\'':
		kind, msg = l.characterLiteral(start)
	case c == '"':
		kind, msg = l.stringLiteral(start)
	case c >= '0' && c <= '9':
		kind = l.number(start, c)
	case c == '?':
		kind = l.questionOrUnimplemented()
	case IsIDStart(c):
		kind = l.identifierOrKeyword(start)
	case IsSymbolRune(c):
		kind = l.symbol(c)
	default:
		kind = Error
		msg = &Message{File: l.file, Kind: BadCharacter{Rune: c}, Range: Range{Start: start, End: l.s.Cursor()}}
	}

	tok := Token{Kind: kind, Range: Range{Start: start, End: l.s.Cursor()}}
	if msg != nil {
		msg.Range = tok.Range
	}
	return tok, msg
}

// comment consumes a `//` line comment (or `///` doc comment) up to, but
// not including, the terminating newline.
func (l *Lexer) comment() SyntaxKind {
	isDoc := l.s.EatIf('/')
	l.s.EatUntil(func(r rune) bool { return r == '\n' })
	if isDoc {
		return DocComment
	}
	return Comment
}

// questionOrUnimplemented distinguishes the three-question-mark
// placeholder token `???` from the single `?` symbol.
func (l *Lexer) questionOrUnimplemented() SyntaxKind {
	if l.s.At("??") {
		l.s.Advance(2)
		return KwdUnimplemented
	}
	return SymQuestion
}

// identifierOrKeyword consumes the rest of an identifier and classifies
// it: a reserved keyword, the reserved placeholder identifier `_`, or a
// plain identifier.
func (l *Lexer) identifierOrKeyword(start int) SyntaxKind {
	l.s.EatWhile(IsIDContinue)
	word := l.s.From(start)
	if kind, ok := KeywordKind(word); ok {
		return kind
	}
	if word == "_" || l.extraReserved[word] {
		return ReservedIdentifier
	}
	return Identifier
}

// symbol consumes a one- or two-character symbol starting with c,
// preferring the longer match (e.g. `<-` over `<` followed by `-`).
func (l *Lexer) symbol(c rune) SyntaxKind {
	if next := l.s.Peek(); next != 0 {
		if kind, ok := symbolFromTwoRunes(c, next); ok {
			l.s.Eat()
			return kind
		}
	}
	return symbolFromRune(c)
}

// characterLiteral consumes a `'c'`-style literal, including a single
// backslash escape. Grounded on the teacher's string()/backslash()
// handling in lexer.go, adapted to Helios's simpler escape set (no
// Unicode \u{...} escape — spec §4.1 lists only letter escapes).
// A malformed character/string literal still lexes as its literal kind,
// not Error: spec §4.1 only reserves the Error kind for a byte the lexer
// can't classify into any token at all (the default case in Next()). Spec
// §8 scenario S6 is explicit that an unterminated `"hello` lexes as one
// Lit_String token spanning the whole input, paired with an
// UnterminatedLiteral message — the diagnostic carries the failure, not
// the token's kind, so a downstream consumer can still recognize "this
// was meant to be a string" even though it never closed.
func (l *Lexer) characterLiteral(start int) (SyntaxKind, *Message) {
	if l.s.Done() || l.s.Peek() == '\n' {
		return LitCharacter, l.unterminated(LitCharacter)
	}
	c := l.s.Eat()
	var msg *Message
	if c == '\\' && l.s.Peek() != '\n' {
		if esc, ok := l.escape(); !ok {
			msg = &Message{File: l.file, Kind: InvalidEscape{Escape: esc}}
		}
	} else if c == '\'' {
		// Empty `''` has no content to escape; treat the closing quote
		// itself as the terminator below so this falls through cleanly.
		return LitCharacter, nil
	}
	if !l.s.EatIf('\'') {
		if msg != nil {
			return LitCharacter, msg
		}
		return LitCharacter, l.unterminated(LitCharacter)
	}
	return LitCharacter, msg
}

// stringLiteral consumes a `"..."`-style literal up to an unescaped
// closing quote or a newline, whichever comes first.
func (l *Lexer) stringLiteral(start int) (SyntaxKind, *Message) {
	var msg *Message
	for {
		if l.s.Done() || l.s.Peek() == '\n' {
			return LitString, l.unterminated(LitString)
		}
		c := l.s.Eat()
		if c == '"' {
			return LitString, msg
		}
		if c == '\\' && l.s.Peek() != '\n' {
			if esc, ok := l.escape(); !ok && msg == nil {
				msg = &Message{File: l.file, Kind: InvalidEscape{Escape: esc}}
			}
		}
	}
}

// escapeLetters is the closed set of single-character escapes Helios
// literals accept: newline, tab, carriage return, backslash, and the two
// quote characters.
var escapeLetters = map[rune]bool{
	'n': true, 't': true, 'r': true, '\\': true, '\'': true, '"': true,
}

// escape consumes one escape character after a backslash already eaten by
// the caller. Returns the escape text and whether it was recognized.
func (l *Lexer) escape() (string, bool) {
	if l.s.Done() {
		return "", false
	}
	c := l.s.Eat()
	if escapeLetters[c] {
		return string(c), true
	}
	return string(c), false
}

func (l *Lexer) unterminated(kind SyntaxKind) *Message {
	return &Message{File: l.file, Kind: UnterminatedLiteral{Kind: kind}}
}

// number consumes an integer or float literal. Spec §4.1 defines an
// integer as a run of `[0-9A-Za-z_]` starting with a digit — this admits
// base prefixes (`0x`, `0b`, `0o`) and digit-group separators (`_`)
// without the lexer needing to know which bases or separator placements
// are actually valid; that validation is explicitly deferred past this
// front end. Grounded on the teacher's number() in lexer.go for the
// overall float-detection shape (optional `.digits`; there is no separate
// exponent case, see below), trimmed of Typst's alternate integer bases and unit suffixes (`pt`,
// `em`, ...), which have no equivalent here — this lexer already accepts
// a superset of digit alphabets instead of special-casing each base.
func (l *Lexer) number(start int, firstC rune) SyntaxKind {
	l.s.EatWhile(isIdentNumChar)

	isFloat := false
	if l.s.Peek() == '.' && isDigit(l.s.Scout(1)) {
		l.s.Eat()
		isFloat = true
		l.s.EatWhile(isIdentNumChar)
	}
	// No separate exponent branch: isIdentNumChar already admits any ASCII
	// letter (needed for hex digits and base prefixes like `0x`), so an
	// `e`/`E` exponent marker right after digits is already consumed by the
	// EatWhile calls above. Spec §4.1 doesn't define scientific notation as
	// its own case either — float promotion is solely "a decimal point
	// followed by a non-`.` digit continuation".

	if isFloat {
		return LitFloat
	}
	return LitInteger
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isIdentNumChar is the continuation alphabet spec §4.1 allows inside an
// integer literal: digits, ASCII letters (for base prefixes like `0x` and
// hex digits `a`-`f`), and `_` as a digit separator.
func isIdentNumChar(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
