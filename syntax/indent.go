// indent.go implements the indentation rewriter described in spec §4.2: a
// second pass over the flat Token stream from lexer.go that synthesizes
// Indent and Dedent tokens from each logical line's leading whitespace
// width, following the off-side rule. Grounded on helios-parser's
// `process_indents` (_examples/original_source/crates/helios-parser/src/lib.rs),
// the authoritative pre-distillation algorithm: a monotonic indentation
// stack seeded with [0], one Indent per increase, one Dedent per level
// popped on a decrease, and a dedicated recovery path when a dedent lands
// between two stack levels instead of exactly on one.
package syntax

// RewriteIndentation consumes the raw token stream from Tokenize and
// returns a new stream with Newline tokens reclassified to Indent/Dedent at
// logical line boundaries, plus any InconsistentDedent diagnostics raised
// along the way. Indentation width is a literal whitespace-byte count
// (spec §4.2); each tab counts the same as a single space.
func RewriteIndentation(tokens []Token, file FileID) ([]Token, []Message) {
	r := &indentRewriter{tokens: tokens, file: file, stack: []int{0}, tabWidth: 1}
	r.run()
	return r.out, r.messages
}

// RewriteIndentationTabWidth is RewriteIndentation with one knob: each tab
// byte in a line's leading whitespace counts as tabWidth rather than 1.
// This is the manifest-tunable variant ProjectManifest.Lexer.TabWidth
// drives (manifest.go) for projects that indent with tabs; plain
// RewriteIndentation (tabWidth implicitly 1) remains the byte-literal
// default spec §4.2 describes.
func RewriteIndentationTabWidth(tokens []Token, file FileID, source string, tabWidth int) ([]Token, []Message) {
	if tabWidth < 1 {
		tabWidth = 1
	}
	r := &indentRewriter{tokens: tokens, file: file, stack: []int{0}, tabWidth: tabWidth, source: source}
	r.run()
	return r.out, r.messages
}

type indentRewriter struct {
	tokens   []Token
	file     FileID
	pos      int
	stack    []int
	out      []Token
	messages []Message
	tabWidth int
	source   string
}

// run walks the token vector once. Every token is forwarded to r.out
// unchanged except a Newline that opens a new logical line, which
// handleNewline reclassifies in place (spec §3's Lifecycle: "kind
// substitution for Newline→Indent/Dedent/Error").
func (r *indentRewriter) run() {
	for r.pos < len(r.tokens) {
		tok := r.tokens[r.pos]
		switch tok.Kind {
		case End:
			r.closeRemainingLevels(tok.Range.Start)
			r.out = append(r.out, tok)
			return
		case Newline:
			r.handleNewline(tok)
		default:
			r.out = append(r.out, tok)
			r.pos++
		}
	}
}

// handleNewline decides what a Newline token at r.pos means for the
// indentation stack, then advances r.pos past it. Spec §4.1 already folds a
// line's leading whitespace into its Newline token's own text, so the width
// is read straight off this one token — no separate Whitespace token to
// peek past.
func (r *indentRewriter) handleNewline(tok Token) {
	if r.lineIsBlank() {
		// A blank or comment-only line doesn't affect the indent stack (spec
		// §4.2's rationale: the off-side rule only looks at lines with real
		// content). Forward the Newline untouched and let run()'s loop carry
		// on through whatever trivia sits on that line.
		r.out = append(r.out, tok)
		r.pos++
		return
	}
	r.applyIndent(tok)
}

// lineIsBlank reports whether the line starting right after r.pos (the
// current Newline) has no token besides Comment/DocComment before its own
// terminating Newline or End. It does not consume anything.
func (r *indentRewriter) lineIsBlank() bool {
	for i := r.pos + 1; i < len(r.tokens); i++ {
		switch r.tokens[i].Kind {
		case Comment, DocComment:
			continue
		case Newline, End:
			return true
		default:
			return false
		}
	}
	return true
}

// indentWidth measures tok's leading-whitespace width: the run of spaces
// and tabs after its leading `\n`, a tab counting as r.tabWidth columns.
func (r *indentRewriter) indentWidth(tok Token) int {
	if r.tabWidth <= 1 || r.source == "" {
		return tok.Range.Len() - 1 // minus the leading '\n' byte
	}
	width := 0
	text := tok.Text(r.source)
	for i, c := range text {
		if i == 0 {
			continue // the leading '\n'
		}
		if c == '\t' {
			width += r.tabWidth
		} else {
			width++
		}
	}
	return width
}

// applyIndent compares tok's leading-whitespace width against the
// indentation stack and reclassifies tok into Indent, Dedent (possibly
// several, for one token — see below), or leaves it a plain Newline, per
// spec §4.2's three cases.
func (r *indentRewriter) applyIndent(tok Token) {
	width := r.indentWidth(tok)
	top := r.stack[len(r.stack)-1]

	switch {
	case width == top:
		// Same level: no layout token, the Newline just separates statements.
		r.out = append(r.out, tok)
		r.pos++

	case width > top:
		r.stack = append(r.stack, width)
		r.out = append(r.out, Token{Kind: Indent, Range: tok.Range})
		r.pos++

	default:
		r.popAndEmit(tok, width)
	}
}

// popAndEmit implements spec §4.2's pop-and-emit loop: pop one level at a
// time, and after each pop look at what's now on top to decide whether to
// keep popping, stop successfully, or undo just that last pop because width
// landed strictly between it and the level below (an inconsistent dedent).
// Only the first Dedent emitted carries tok's real range/text (a Newline
// token is reclassified into exactly one output token per spec §3's
// Lifecycle); every additional level popped for the same Newline is a
// zero-width Dedent at tok's end, so the lossless round-trip invariant
// isn't broken by duplicating tok's bytes across several tokens. Levels
// popped before an inconsistency is found are NOT undone — only the one
// pop that overshot is pushed back — so the Dedents already emitted stay
// balanced against the (now smaller) stack.
func (r *indentRewriter) popAndEmit(tok Token, width int) {
	emittedAny := false
	zeroWidth := Token{Kind: Dedent, Range: Range{Start: tok.Range.End, End: tok.Range.End}}
	emit := func() {
		if !emittedAny {
			r.out = append(r.out, Token{Kind: Dedent, Range: tok.Range})
			emittedAny = true
		} else {
			r.out = append(r.out, zeroWidth)
		}
	}

	for {
		popped := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		newTop := r.stack[len(r.stack)-1]

		switch {
		case width < newTop:
			emit()
			continue
		case width == newTop:
			emit()
			r.pos++
			return
		default: // width > newTop: overshot past the target level.
			r.stack = append(r.stack, popped) // undo only this pop
			if emittedAny {
				// tok's bytes already went out with the first Dedent.
				tok.Range.Start = tok.Range.End
			}
			r.recoverInconsistentDedent(tok, width)
			return
		}
	}
}

// recoverInconsistentDedent handles a dedent that lands strictly between
// two stack levels. Per the Rust original: the level that was tentatively
// popped in popAndEmit has already been pushed back, so the stack already
// reflects "the line's indentation is simply ignored" for the failing
// level (any levels popped before the failure stay popped — see
// popAndEmit's doc comment). When no Dedent was emitted for tok (the
// reclassified Newline) before the failure, tok is not forwarded to r.out
// otherwise, so the Error token emitted here starts at tok.Range.Start to
// carry its bytes too — otherwise the newline and its leading whitespace
// would vanish from the rewritten stream, breaking the lossless round
// trip. When a Dedent already carried tok's range, popAndEmit passes tok
// with its start moved to its end, so those bytes are not repeated. This
// emits one
// Error token spanning the whole malformed line and reports
// InconsistentDedent.
func (r *indentRewriter) recoverInconsistentDedent(tok Token, width int) {
	start := tok.Range.Start
	end := tok.Range.End
	r.pos++
	for r.pos < len(r.tokens) && r.tokens[r.pos].Kind != Newline && r.tokens[r.pos].Kind != End {
		end = r.tokens[r.pos].Range.End
		r.pos++
	}

	r.messages = append(r.messages, Message{
		File:  r.file,
		Kind:  InconsistentDedent{Got: width, Expected: append([]int(nil), r.stack...)},
		Range: Range{Start: start, End: end},
	})
	r.out = append(r.out, Token{Kind: Error, Range: Range{Start: start, End: end}})
}

// closeRemainingLevels emits one Dedent per indentation level still open
// at end of input, per spec §8's indent-balance property (Indent−Dedent
// sums to zero at EOF).
func (r *indentRewriter) closeRemainingLevels(at int) {
	for len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
		r.out = append(r.out, Token{Kind: Dedent, Range: Range{Start: at, End: at}})
	}
}
