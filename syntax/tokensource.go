// tokensource.go implements the read cursor spec §4.3 describes: a view
// over the processed token vector (lexer output after indentation
// rewriting) that skips trivia for the parser while tracking the
// pre-trivia index the sink needs to reattach that trivia later. No
// teacher file models this — rowan-style toolchains usually fold this
// into the parser itself — so this is new, grounded directly on spec
// §4.3's peek/bump/checkpoint/rewind surface.
package syntax

// TokenSource is a read cursor over a processed token vector. It exposes a
// parser cursor (skips trivia) and a raw cursor (includes trivia); the
// parser only ever sees the former, but the sink replays events against
// the raw token vector and needs the mapping between the two.
type TokenSource struct {
	tokens []Token
	// parserIdx indexes the next token the parser would see, i.e. the
	// first index >= rawIdx whose kind is not trivia (or End).
	parserIdx int
	// rawIdx is the next raw index, including trivia.
	rawIdx int
}

// NewTokenSource builds a token source over the (already indentation
// rewritten) token vector.
func NewTokenSource(tokens []Token) *TokenSource {
	s := &TokenSource{tokens: tokens}
	s.rawIdx = 0
	s.parserIdx = s.skipTrivia(0)
	return s
}

func (s *TokenSource) skipTrivia(from int) int {
	i := from
	for i < len(s.tokens) && s.tokens[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// Peek returns the kind of the n-th non-trivia token ahead of the cursor
// (0 is the next token the parser would consume), or End past the end of
// input.
func (s *TokenSource) Peek(n int) SyntaxKind {
	i := s.parserIdx
	for {
		if i >= len(s.tokens) {
			return End
		}
		if n == 0 {
			return s.tokens[i].Kind
		}
		i = s.skipTrivia(i + 1)
		n--
	}
}

// PeekToken returns the n-th non-trivia token ahead, or a zero-width End
// token past the end of input.
func (s *TokenSource) PeekToken(n int) Token {
	i := s.parserIdx
	for {
		if i >= len(s.tokens) {
			end := 0
			if len(s.tokens) > 0 {
				end = s.tokens[len(s.tokens)-1].Range.End
			}
			return Token{Kind: End, Range: Range{Start: end, End: end}}
		}
		if n == 0 {
			return s.tokens[i]
		}
		i = s.skipTrivia(i + 1)
		n--
	}
}

// AtEnd reports whether the parser cursor has reached End.
func (s *TokenSource) AtEnd() bool { return s.Peek(0) == End }

// Bump advances past the next non-trivia token. The raw cursor advances
// past it and any trivia that preceded it.
func (s *TokenSource) Bump() Token {
	tok := s.PeekToken(0)
	if s.parserIdx < len(s.tokens) {
		s.rawIdx = s.parserIdx + 1
		s.parserIdx = s.skipTrivia(s.rawIdx)
	}
	return tok
}

// RawIndex returns the current raw (trivia-inclusive) cursor position,
// used by the sink to know how much of the original token vector a given
// parser Bump consumed.
func (s *TokenSource) RawIndex() int { return s.rawIdx }

// Checkpoint is a saved cursor position for speculative lookahead.
type Checkpoint struct {
	parserIdx int
	rawIdx    int
}

// Checkpoint saves both cursors.
func (s *TokenSource) Checkpoint() Checkpoint {
	return Checkpoint{parserIdx: s.parserIdx, rawIdx: s.rawIdx}
}

// Rewind restores both cursors to a previously saved checkpoint. Spec
// §4.3 notes the baseline design does not need this; it is kept for
// parser code that wants to try a production and back out (e.g. a future
// grammar extension) without committing to token-level recovery.
func (s *TokenSource) Rewind(cp Checkpoint) {
	s.parserIdx = cp.parserIdx
	s.rawIdx = cp.rawIdx
}
