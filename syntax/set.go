package syntax

// SyntaxSet is a set of syntax kinds implemented as a bitset. It can hold
// kinds with discriminator values less than 128.
//
// Based on rust-analyzer's TokenSet, by way of
// _examples/boergens-gotypst/syntax/set.go; repopulated below with Helios's
// own grammar sets.
type SyntaxSet struct {
	lo uint64 // bits 0-63
	hi uint64 // bits 64-127
}

const maxSetBit = 128

// NewSyntaxSet creates a new empty set.
func NewSyntaxSet() SyntaxSet {
	return SyntaxSet{}
}

// SyntaxSetOf creates a set containing the given kinds.
func SyntaxSetOf(kinds ...SyntaxKind) SyntaxSet {
	s := SyntaxSet{}
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add inserts a syntax kind into the set and returns the new set.
// Panics if the kind's discriminator is >= 128.
func (s SyntaxSet) Add(kind SyntaxKind) SyntaxSet {
	if kind >= maxSetBit {
		panic("SyntaxSet.Add: kind discriminator must be < 128")
	}
	if kind < 64 {
		s.lo |= 1 << kind
	} else {
		s.hi |= 1 << (kind - 64)
	}
	return s
}

// Remove removes a syntax kind from the set and returns the new set.
// Does nothing if the kind is not present.
func (s SyntaxSet) Remove(kind SyntaxKind) SyntaxSet {
	if kind >= maxSetBit {
		panic("SyntaxSet.Remove: kind discriminator must be < 128")
	}
	if kind < 64 {
		s.lo &^= 1 << kind
	} else {
		s.hi &^= 1 << (kind - 64)
	}
	return s
}

// Union combines two syntax sets.
func (s SyntaxSet) Union(other SyntaxSet) SyntaxSet {
	return SyntaxSet{
		lo: s.lo | other.lo,
		hi: s.hi | other.hi,
	}
}

// Contains returns true if the set contains the given syntax kind.
func (s SyntaxSet) Contains(kind SyntaxKind) bool {
	if kind >= maxSetBit {
		return false
	}
	if kind < 64 {
		return (s.lo & (1 << kind)) != 0
	}
	return (s.hi & (1 << (kind - 64))) != 0
}

// IsEmpty returns true if the set contains no kinds.
func (s SyntaxSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Predefined syntax sets used by the lexer and parser.

// UnaryPrefixOpSet contains the kinds that can begin a unary-prefix
// expression. Spec §4.4's table lists `-`/`!`; the reserved word `not` has
// no other grammar role in spec.md, so it is treated as a third spelling
// of boolean negation at the same binding power.
var UnaryPrefixOpSet = SyntaxSetOf(SymMinus, SymBang, KwdNot)

// BinaryOpSet contains the kinds that can appear as a binary operator,
// spanning every precedence tier in the Pratt table (spec §4.4). Only the
// operators the table actually lists are included: `and`/`or` are reserved
// keywords (spec §6) with no defined precedence and are left for a future
// grammar revision rather than guessed at here.
var BinaryOpSet = SyntaxSetOf(
	SymAsterisk, SymForwardSlash,
	SymPlus, SymMinus,
	SymLt, SymLtEq, SymGt, SymGtEq, SymEq, SymBangEq,
)

// LiteralSet contains the four literal token kinds.
var LiteralSet = SyntaxSetOf(LitCharacter, LitFloat, LitInteger, LitString)

// PrimaryStartSet contains every kind that can begin a primary expression
// per spec §4.4: literals, identifiers, parenthesized groups, unary-prefix
// expressions, and an indented block.
var PrimaryStartSet = LiteralSet.Union(UnaryPrefixOpSet).Add(Identifier).Add(ReservedIdentifier).Add(SymLParen).Add(Indent)

// ExprStartSet is PrimaryStartSet; kept distinct so callers can name intent
// at the grammar level ("does an expression start here") versus the
// primary-parsing level.
var ExprStartSet = PrimaryStartSet

// DeclStartSet contains the kinds that can begin a top-level declaration.
// Spec §4.4 defines only `let`; the remaining declaration-shaped keywords
// in spec §6 (export, import, module, alias, type, external) are reserved
// words with no grammar production yet.
var DeclStartSet = SyntaxSetOf(KwdLet)

// BlockRecoverySet anchors error recovery inside an indented block or a
// parenthesized group: the parser stops consuming tokens when it sees one
// of these, on the assumption that whatever came before was malformed but
// the enclosing structure is still intact. Grounded on helios-parser's
// `recover`/synchronization behavior in the Rust original, generalized into
// an explicit set rather than ad hoc token comparisons.
var BlockRecoverySet = SyntaxSetOf(Newline, Dedent, SymRParen, End)

// StmtRecoverySet anchors recovery at the statement/declaration level: a
// newline (the statement separator under the off-side rule), a dedent
// (end of the current block), or end of input.
var StmtRecoverySet = SyntaxSetOf(Newline, Dedent, End)
