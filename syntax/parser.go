// parser.go implements spec §4.4: a Pratt expression parser plus a small
// recursive-descent layer for blocks and declarations, emitting the flat
// Event stream event.go defines rather than building tree nodes directly.
// Grounded on the teacher's overall parser shape (a struct holding a
// TokenSource-like cursor plus an event/node buffer, with small named
// parsing methods — see _examples/boergens-gotypst/syntax/parser.go's
// Parser/exprWithin/unary/binary decomposition) but rebuilt end to end:
// the teacher parses three lexer modes (markup/math/code) into tree nodes
// directly, where this parser has a single mode, emits events instead of
// nodes, and follows spec §4.4's own binding-power table rather than
// Typst's operator precedence.
package syntax

// maxExprDepth bounds recursive-descent nesting so pathological input
// (thousands of nested parens) can't blow the Go call stack. Grounded on
// the teacher's parser.go MaxDepth guard, same purpose, smaller bound
// since this grammar has far fewer mutually-recursive productions.
const maxExprDepth = 256

// Parser drives the event stream from a processed token vector (post
// indentation-rewrite). It never sees the raw token vector directly —
// only the trivia-skipping view TokenSource provides — so it can't
// accidentally consume or misplace trivia; that's the sink's job.
type Parser struct {
	src    *TokenSource
	file   FileID
	events []Event
	depth  int
}

// NewParser creates a parser over tokens (already run through Tokenize
// and RewriteIndentation), attributing diagnostics to file.
func NewParser(file FileID, tokens []Token) *Parser {
	return &Parser{src: NewTokenSource(tokens), file: file}
}

// ParseEvents runs the full grammar over tokens and returns the resulting
// event stream, ready for the sink.
func ParseEvents(file FileID, tokens []Token) []Event {
	p := NewParser(file, tokens)
	parseProgram(p)
	return p.events
}

func (p *Parser) marker() Marker {
	return startMarker(&p.events, len(p.events))
}

// complete fixes m's node kind and immediately records the matching
// FinishNode event. Recording it here, at the point the caller knows the
// construct is done, is what lets the sink (sink.go) later tell a node
// wrapped via PrecedeNode apart from one that stands alone: every Complete
// call contributes exactly one FinishNode, in call order, regardless of
// how StartNode events for the same nodes get reordered by forward-parent
// chains.
func (p *Parser) complete(m Marker, kind SyntaxKind) CompletedMarker {
	cm := m.Complete(p.events, kind)
	p.events = append(p.events, Event{Kind: EventFinishNode})
	return cm
}

func (p *Parser) precede(cm CompletedMarker) Marker {
	return cm.PrecedeNode(&p.events)
}

func (p *Parser) at(kind SyntaxKind) bool { return p.src.Peek(0) == kind }

func (p *Parser) atEOF() bool { return p.src.AtEnd() }

// bump consumes the next non-trivia token and records an AddToken event.
// It does not say which token: the sink pulls tokens from the raw stream
// in lockstep with AddToken events, in order, so there is nothing else to
// record here.
func (p *Parser) bump() {
	p.src.Bump()
	p.events = append(p.events, Event{Kind: EventAddToken})
}

// expect bumps the current token if it matches kind, else records a
// Missing diagnostic and leaves the cursor untouched.
func (p *Parser) expect(kind SyntaxKind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.missing(kind)
	return false
}

// missing records a zero-width Missing diagnostic at the current cursor
// position without consuming a token — used to keep a node's shape
// predictable (spec §4.4's Declarations: "the node is still produced")
// when a single required token is absent.
func (p *Parser) missing(kind SyntaxKind) {
	at := p.src.PeekToken(0).Range.Start
	p.pushError(Missing{Kind: kind}, Range{Start: at, End: at})
}

func (p *Parser) pushError(kind DiagnosticKind, rng Range) {
	p.events = append(p.events, Event{
		Kind:    EventError,
		Message: Message{File: p.file, Kind: kind, Range: rng},
	})
}

// parseProgram parses the whole token stream as the Root node: a sequence
// of top-level declarations and expressions separated by newlines/`;`.
func parseProgram(p *Parser) {
	m := p.marker()
	for {
		p.skipSeparators()
		if p.atEOF() {
			break
		}
		start := len(p.events)
		p.parseStatement(StmtRecoverySet)
		if len(p.events) == start {
			// A stray anchor (e.g. an unmatched Dedent) has no enclosing
			// loop to stop at here: report and consume it.
			p.pushError(UnexpectedToken{Found: p.src.Peek(0)}, p.src.PeekToken(0).Range)
			p.bump()
		}
	}
	p.complete(m, Root)
}

// skipSeparators consumes statement separators (Newline, `;`) between
// items. Trivia is handled entirely by the sink; these are ordinary,
// syntactically significant tokens the parser must bump itself.
func (p *Parser) skipSeparators() {
	for p.at(Newline) || p.at(SymSemicolon) {
		p.bump()
	}
}

// parseStatement parses one top-level item or block item: a `let`
// declaration, a bare expression, or — on an unrecognized token — one step
// of token-level error recovery. stop names the recovery set the caller's
// loop already terminates on, so an unrecognized-but-anchoring token (a
// Dedent, a closing paren, end of input) is left for the caller rather
// than consumed here.
func (p *Parser) parseStatement(stop SyntaxSet) {
	switch {
	case DeclStartSet.Contains(p.src.Peek(0)):
		p.parseLetDecl()
	case ExprStartSet.Contains(p.src.Peek(0)):
		p.parseExpr(0)
	default:
		found := p.src.Peek(0)
		if stop.Contains(found) || found == End {
			return
		}
		p.pushError(UnexpectedToken{Found: found}, p.src.PeekToken(0).Range)
		p.bump()
	}
}

// parseLetDecl parses `let <identifier> = <expr>` into a Dec_GlobalBinding
// node. A missing identifier or `=` still produces the node (spec §4.4).
func (p *Parser) parseLetDecl() {
	m := p.marker()
	p.bump() // `let`
	if p.at(Identifier) || p.at(ReservedIdentifier) {
		p.bump()
	} else {
		p.missing(Identifier)
	}
	p.expect(SymEq)
	p.parseExpr(0)
	p.complete(m, DecGlobalBinding)
}

// parseExpr parses an expression using Pratt precedence climbing: a
// primary on the left, then zero or more infix operators whose left
// binding power is at least minBP, each time retrofitting the
// accumulated left-hand side into a Exp_Binary via marker-precede (spec
// §4.4's forward-parent mechanism, see event.go).
func (p *Parser) parseExpr(minBP int) CompletedMarker {
	lhs := p.parsePrimary()
	for {
		op, ok := BinOpFromKind(p.src.Peek(0))
		if !ok {
			break
		}
		bp := binOpPower[op]
		if bp.left < minBP {
			break
		}
		m := p.precede(lhs)
		p.bump()
		p.parseExpr(bp.right)
		lhs = p.complete(m, ExpBinary)
	}
	return lhs
}

// parsePrimary parses one primary expression form (spec §4.4: identifier,
// literal, parenthesized group, prefix unary, or indented block) and then
// any trailing postfix operators.
func (p *Parser) parsePrimary() CompletedMarker {
	if p.depth >= maxExprDepth {
		m := p.marker()
		p.pushError(UnexpectedEof{Context: "expression (too deeply nested)"}, p.src.PeekToken(0).Range)
		return p.complete(m, ExpLiteral)
	}
	p.depth++
	defer func() { p.depth-- }()

	switch {
	case LiteralSet.Contains(p.src.Peek(0)):
		m := p.marker()
		p.bump()
		return p.parsePostfix(p.complete(m, ExpLiteral))

	case p.at(Identifier) || p.at(ReservedIdentifier):
		m := p.marker()
		p.bump()
		return p.parsePostfix(p.complete(m, ExpVariableRef))

	case p.at(SymLParen):
		m := p.marker()
		p.bump()
		p.parseExpr(0)
		p.expect(SymRParen)
		return p.parsePostfix(p.complete(m, ExpParen))

	case p.at(Indent):
		return p.parsePostfix(p.parseBlock())
	}

	if _, ok := UnOpFromKind(p.src.Peek(0)); ok {
		m := p.marker()
		p.bump()
		p.parseExpr(unOpBindingPower)
		return p.parsePostfix(p.complete(m, ExpUnaryPrefix))
	}

	found := p.src.Peek(0)
	m := p.marker()
	p.pushError(Expected{Set: PrimaryStartSet, Found: found}, p.src.PeekToken(0).Range)
	return p.complete(m, ExpLiteral)
}

// parsePostfix wraps cm in Exp_UnaryPostfix nodes for each trailing `?`.
func (p *Parser) parsePostfix(cm CompletedMarker) CompletedMarker {
	for p.at(SymQuestion) {
		m := p.precede(cm)
		p.bump()
		cm = p.complete(m, ExpUnaryPostfix)
	}
	return cm
}

// parseBlock parses an `Indent ... Dedent`-delimited block expression: a
// sequence of statements, each separated by Newline or `;`.
func (p *Parser) parseBlock() CompletedMarker {
	m := p.marker()
	p.bump() // Indent
	for {
		p.skipSeparators()
		if BlockRecoverySet.Contains(p.src.Peek(0)) || p.atEOF() {
			break
		}
		p.parseStatement(BlockRecoverySet)
	}
	p.expect(Dedent)
	return p.complete(m, ExpBlock)
}
