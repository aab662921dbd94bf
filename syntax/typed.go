// typed.go gives the green tree a typed view: small wrapper types around
// SyntaxNode offering named accessors (BinaryExpr.Lhs/Op/Rhs instead of
// "the first non-trivia child") instead of making callers walk raw
// children by hand. Grounded on the Expr/Decl duck-typed AST the
// teacher's ast.go built over its own tree (one Go type per concrete
// Typst node, each a thin wrapper holding the underlying node), rebuilt
// here for Helios's much smaller grammar — seven expression forms and one
// declaration — per SPEC_FULL.md §12.
package syntax

// Expr is any typed expression view. All of this package's concrete
// expression types implement it.
type Expr interface {
	Syntax() *SyntaxNode
}

// ExprFromNode classifies a syntax node as one of the typed expression
// views, or reports false if the node is not an expression at all (e.g. a
// token, or a declaration).
func ExprFromNode(n *SyntaxNode) (Expr, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case ExpBinary:
		return BinaryExpr{n}, true
	case ExpLiteral:
		return LiteralExpr{n}, true
	case ExpParen:
		return ParenExpr{n}, true
	case ExpUnaryPrefix:
		return UnaryPrefixExpr{n}, true
	case ExpUnaryPostfix:
		return UnaryPostfixExpr{n}, true
	case ExpVariableRef:
		return VariableRefExpr{n}, true
	case ExpBlock:
		return BlockExpr{n}, true
	}
	return nil, false
}

// BinaryExpr is `lhs op rhs` (spec §4.4's Exp_Binary).
type BinaryExpr struct{ node *SyntaxNode }

func (e BinaryExpr) Syntax() *SyntaxNode { return e.node }

// Lhs returns the left operand.
func (e BinaryExpr) Lhs() (Expr, bool) {
	children := e.node.NonTriviaChildren()
	if len(children) == 0 {
		return nil, false
	}
	return ExprFromNode(children[0])
}

// Op returns the operator between the two operands.
func (e BinaryExpr) Op() (BinOp, bool) {
	for _, c := range e.node.Children() {
		if op, ok := BinOpFromKind(c.Kind()); ok {
			return op, true
		}
	}
	return 0, false
}

// Rhs returns the right operand.
func (e BinaryExpr) Rhs() (Expr, bool) {
	children := e.node.NonTriviaChildren()
	if len(children) < 2 {
		return nil, false
	}
	return ExprFromNode(children[len(children)-1])
}

// LiteralExpr wraps a single literal token (spec §4.4's Exp_Literal).
type LiteralExpr struct{ node *SyntaxNode }

func (e LiteralExpr) Syntax() *SyntaxNode { return e.node }

// Token returns the underlying literal token, or nil if the node is
// malformed (a parse error left it empty).
func (e LiteralExpr) Token() *SyntaxNode {
	children := e.node.NonTriviaChildren()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Kind returns the literal's token kind (LitInteger, LitFloat,
// LitString, or LitCharacter), or End if the node is malformed.
func (e LiteralExpr) Kind() SyntaxKind {
	if tok := e.Token(); tok != nil {
		return tok.Kind()
	}
	return End
}

// ParenExpr is a parenthesized expression (spec §4.4's Exp_Paren); it
// exists in the tree purely to preserve the source's grouping and carries
// no other meaning.
type ParenExpr struct{ node *SyntaxNode }

func (e ParenExpr) Syntax() *SyntaxNode { return e.node }

// Inner returns the wrapped expression.
func (e ParenExpr) Inner() (Expr, bool) {
	for _, c := range e.node.NonTriviaChildren() {
		if c.Kind().IsExpression() {
			return ExprFromNode(c)
		}
	}
	return nil, false
}

// UnaryPrefixExpr is `op operand` (spec §4.4's Exp_UnaryPrefix): `-x`,
// `!x`, or `not x`.
type UnaryPrefixExpr struct{ node *SyntaxNode }

func (e UnaryPrefixExpr) Syntax() *SyntaxNode { return e.node }

// Op returns the prefix operator.
func (e UnaryPrefixExpr) Op() (UnOp, bool) {
	for _, c := range e.node.Children() {
		if op, ok := UnOpFromKind(c.Kind()); ok {
			return op, true
		}
	}
	return 0, false
}

// Operand returns the expression the operator applies to.
func (e UnaryPrefixExpr) Operand() (Expr, bool) {
	children := e.node.NonTriviaChildren()
	if len(children) < 2 {
		return nil, false
	}
	return ExprFromNode(children[len(children)-1])
}

// UnaryPostfixExpr is `operand ?` (spec §4.4's Exp_UnaryPostfix).
type UnaryPostfixExpr struct{ node *SyntaxNode }

func (e UnaryPostfixExpr) Syntax() *SyntaxNode { return e.node }

// Operand returns the expression the `?` applies to.
func (e UnaryPostfixExpr) Operand() (Expr, bool) {
	children := e.node.NonTriviaChildren()
	if len(children) == 0 {
		return nil, false
	}
	return ExprFromNode(children[0])
}

// VariableRefExpr is a bare identifier reference (spec §4.4's
// Exp_VariableRef).
type VariableRefExpr struct{ node *SyntaxNode }

func (e VariableRefExpr) Syntax() *SyntaxNode { return e.node }

// Name returns the referenced identifier's text.
func (e VariableRefExpr) Name() string {
	children := e.node.NonTriviaChildren()
	if len(children) == 0 {
		return ""
	}
	return children[0].Text()
}

// BlockExpr is an `Indent ... Dedent`-delimited sequence of statements
// (spec §4.4's Exp_Block).
type BlockExpr struct{ node *SyntaxNode }

func (e BlockExpr) Syntax() *SyntaxNode { return e.node }

// Statements returns the block's statement nodes in order, skipping the
// Indent/Dedent delimiters and the Newline/`;` separators between them.
func (e BlockExpr) Statements() []*SyntaxNode {
	var out []*SyntaxNode
	for _, c := range e.node.NonTriviaChildren() {
		switch c.Kind() {
		case Indent, Dedent, Newline, SymSemicolon:
			continue
		}
		out = append(out, c)
	}
	return out
}

// Decl is any typed declaration view.
type Decl interface {
	Syntax() *SyntaxNode
}

// DeclFromNode classifies a syntax node as a typed declaration view, or
// reports false if it is not a declaration.
func DeclFromNode(n *SyntaxNode) (Decl, bool) {
	if n == nil {
		return nil, false
	}
	if n.Kind() == DecGlobalBinding {
		return GlobalBinding{n}, true
	}
	return nil, false
}

// GlobalBinding is `let <name> = <value>` (spec §4.4's Dec_GlobalBinding).
type GlobalBinding struct{ node *SyntaxNode }

func (d GlobalBinding) Syntax() *SyntaxNode { return d.node }

// Name returns the bound identifier's text, or "" if it's missing (a
// parse error left the node without one).
func (d GlobalBinding) Name() string {
	for _, c := range d.node.Children() {
		if c.Kind() == Identifier || c.Kind() == ReservedIdentifier {
			return c.Text()
		}
	}
	return ""
}

// Value returns the bound expression.
func (d GlobalBinding) Value() (Expr, bool) {
	children := d.node.NonTriviaChildren()
	if len(children) == 0 {
		return nil, false
	}
	last := children[len(children)-1]
	if !last.Kind().IsExpression() {
		return nil, false
	}
	return ExprFromNode(last)
}
