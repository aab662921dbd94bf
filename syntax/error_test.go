package syntax

import "testing"

func TestDiagnosticKindError(t *testing.T) {
	tests := []struct {
		kind DiagnosticKind
		want string
	}{
		{BadCharacter{Rune: '\x07'}, "unexpected character U+0007 (<control>)"},
		{UnterminatedLiteral{Kind: LitString}, "unterminated a string literal (like \"hello, world!\")"},
		{InvalidEscape{Escape: "q"}, "invalid escape sequence `\\q`"},
		{InconsistentDedent{Got: 3, Expected: []int{0, 2, 4}}, "inconsistent dedent: column 3 does not match any enclosing indentation level"},
		{Missing{Kind: KwdThen}, "missing the `then` keyword"},
		{UnexpectedToken{Found: SymRParen}, "unexpected symbol (`)`)"},
		{UnexpectedEof{}, "unexpected end of input"},
		{UnexpectedEof{Context: "a character literal"}, "unexpected end of input while parsing a character literal"},
	}
	for _, tt := range tests {
		if got := tt.kind.Error(); got != tt.want {
			t.Errorf("%#v.Error() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestExpectedError(t *testing.T) {
	set := SyntaxSetOf(Identifier)
	d := Expected{Set: set, Found: KwdLet}
	want := "expected an identifier (like `foo`), found the `let` keyword"
	if got := d.Error(); got != want {
		t.Errorf("Expected.Error() = %q, want %q", got, want)
	}
}

func TestDescribeSetMultiple(t *testing.T) {
	// Iteration order follows SyntaxKind's numeric order (keywords before
	// symbols), not insertion order.
	set := SyntaxSetOf(SymComma, SymRParen, KwdEnd)
	got := describeSet(set)
	want := "the `end` keyword, symbol (`,`) or symbol (`)`)"
	if got != want {
		t.Errorf("describeSet = %q, want %q", got, want)
	}
}

func TestMessageError(t *testing.T) {
	m := Message{File: FileID(1), Kind: UnexpectedToken{Found: SymColon}, Range: Range{Start: 5, End: 6}}
	if got := m.Error(); got != "unexpected symbol (`:`)" {
		t.Errorf("Message.Error() = %q", got)
	}
}

func TestSyntaxErrorHints(t *testing.T) {
	e := NewSyntaxError(NewSpan(FileID(1), 0, 1), "something went wrong")
	e.AddHint("try removing this token")
	if len(e.Hints) != 1 || e.Hints[0] != "try removing this token" {
		t.Errorf("Hints = %v, want one hint", e.Hints)
	}
	if e.Error() != "something went wrong" {
		t.Errorf("Error() = %q", e.Error())
	}
}
