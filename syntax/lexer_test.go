package syntax

import "testing"

func tokenKinds(tokens []Token) []SyntaxKind {
	kinds := make([]SyntaxKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func assertKinds(t *testing.T, got []SyntaxKind, want []SyntaxKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexerBasics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []SyntaxKind
	}{
		{"empty", "", []SyntaxKind{End}},
		{"identifier", "foo", []SyntaxKind{Identifier, End}},
		{"keyword", "let", []SyntaxKind{KwdLet, End}},
		{"reserved placeholder", "_", []SyntaxKind{ReservedIdentifier, End}},
		{"integer", "123", []SyntaxKind{LitInteger, End}},
		{"float", "1.5", []SyntaxKind{LitFloat, End}},
		{"exponent-like suffix stays integer", "1e10", []SyntaxKind{LitInteger, End}},
		{"string", `"hi"`, []SyntaxKind{LitString, End}},
		{"character", "'a'", []SyntaxKind{LitCharacter, End}},
		{"line comment", "// hi", []SyntaxKind{Comment, End}},
		{"doc comment", "/// hi", []SyntaxKind{DocComment, End}},
		{"unimplemented", "???", []SyntaxKind{KwdUnimplemented, End}},
		{"question", "?", []SyntaxKind{SymQuestion, End}},
		{"two char arrow", "->", []SyntaxKind{SymRThinArrow, End}},
		{"single then single", "<x", []SyntaxKind{SymLt, Identifier, End}},
		{"not equal", "!=", []SyntaxKind{SymBangEq, End}},
		{"newline", "\n", []SyntaxKind{Newline, End}},
		{"whitespace", "  ", []SyntaxKind{Whitespace, End}},
		{"let x = 1", "let x = 1", []SyntaxKind{
			KwdLet, Whitespace, Identifier, Whitespace, SymEq, Whitespace, LitInteger, End,
		}},
		{"bad character", "`", []SyntaxKind{Error, End}},
		// `-` is SymMinus (spec §6), not a valid identifier-continuation
		// character (spec §4.1's XID_Continue/`_` only) — a hyphen between
		// two identifier-shaped runs must split into three tokens so `a-1`
		// parses as a subtraction, not one Identifier "a-1".
		{"hyphen is not ident continuation", "a-1", []SyntaxKind{Identifier, SymMinus, LitInteger, End}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := Tokenize(FileID(1), tt.input)
			assertKinds(t, tokenKinds(tokens), tt.want)
		})
	}
}

func TestLexerUnterminatedLiteral(t *testing.T) {
	tokens, messages := Tokenize(FileID(1), `"abc`)
	assertKinds(t, tokenKinds(tokens), []SyntaxKind{LitString, End})
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if _, ok := messages[0].Kind.(UnterminatedLiteral); !ok {
		t.Errorf("message kind = %T, want UnterminatedLiteral", messages[0].Kind)
	}
}

// TestLexerUnterminatedStringSpansFullInput is spec §8 scenario S6: an
// unterminated `"hello` (no closing quote, no newline) lexes as one
// Lit_String token spanning the whole input, plus one
// UnterminatedLiteral{string} message whose range matches.
func TestLexerUnterminatedStringSpansFullInput(t *testing.T) {
	src := `"hello`
	tokens, messages := Tokenize(FileID(1), src)
	if len(tokens) != 2 || tokens[0].Kind != LitString || tokens[1].Kind != End {
		t.Fatalf("tokens = %v, want [LitString, End]", tokenKinds(tokens))
	}
	if tokens[0].Range.Start != 0 || tokens[0].Range.End != len(src) {
		t.Errorf("LitString range = %v, want [0, %d)", tokens[0].Range, len(src))
	}
	if tokens[0].Text(src) != src {
		t.Errorf("LitString text = %q, want %q", tokens[0].Text(src), src)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	ul, ok := messages[0].Kind.(UnterminatedLiteral)
	if !ok || ul.Kind != LitString {
		t.Errorf("message kind = %v, want UnterminatedLiteral{LitString}", messages[0].Kind)
	}
	if messages[0].Range != tokens[0].Range {
		t.Errorf("message range = %v, want %v (same as the token)", messages[0].Range, tokens[0].Range)
	}
}

func TestLexerBadCharacterMessage(t *testing.T) {
	_, messages := Tokenize(FileID(1), "a`b")
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	bad, ok := messages[0].Kind.(BadCharacter)
	if !ok {
		t.Fatalf("message kind = %T, want BadCharacter", messages[0].Kind)
	}
	if bad.Rune != '`' {
		t.Errorf("BadCharacter.Rune = %q, want '`'", bad.Rune)
	}
}

func TestLexerTokenText(t *testing.T) {
	src := "let x"
	tokens, _ := Tokenize(FileID(1), src)
	if tokens[0].Text(src) != "let" {
		t.Errorf("Text() = %q, want %q", tokens[0].Text(src), "let")
	}
}

func TestLexerRoundTrip(t *testing.T) {
	// Every byte of the source must be covered exactly once by the
	// concatenation of token texts, in order (spec §8 lossless round-trip).
	src := "let x = 1\nif x then\n  val y = 2\nend\n"
	tokens, _ := Tokenize(FileID(1), src)
	var rebuilt string
	for _, tok := range tokens {
		rebuilt += tok.Text(src)
	}
	if rebuilt != src {
		t.Errorf("round trip = %q, want %q", rebuilt, src)
	}
}
