package syntax

import "testing"

func TestSyntaxSetNew(t *testing.T) {
	s := NewSyntaxSet()
	if !s.IsEmpty() {
		t.Error("NewSyntaxSet() should create an empty set")
	}
}

func TestSyntaxSetAdd(t *testing.T) {
	s := NewSyntaxSet().Add(KwdAnd).Add(KwdOr)
	if !s.Contains(KwdAnd) {
		t.Error("set should contain KwdAnd")
	}
	if !s.Contains(KwdOr) {
		t.Error("set should contain KwdOr")
	}
	if s.Contains(KwdNot) {
		t.Error("set should not contain KwdNot")
	}
}

func TestSyntaxSetOf(t *testing.T) {
	s := SyntaxSetOf(KwdAnd, KwdOr, KwdNot)
	if !s.Contains(KwdAnd) {
		t.Error("set should contain KwdAnd")
	}
	if !s.Contains(KwdOr) {
		t.Error("set should contain KwdOr")
	}
	if !s.Contains(KwdNot) {
		t.Error("set should contain KwdNot")
	}
	if s.Contains(SymPlus) {
		t.Error("set should not contain SymPlus")
	}
}

func TestSyntaxSetRemove(t *testing.T) {
	s := SyntaxSetOf(KwdAnd, KwdOr, KwdNot)
	s = s.Remove(KwdOr)
	if !s.Contains(KwdAnd) {
		t.Error("set should still contain KwdAnd")
	}
	if s.Contains(KwdOr) {
		t.Error("set should not contain KwdOr after removal")
	}
	if !s.Contains(KwdNot) {
		t.Error("set should still contain KwdNot")
	}
}

func TestSyntaxSetUnion(t *testing.T) {
	s1 := SyntaxSetOf(KwdAnd, KwdOr)
	s2 := SyntaxSetOf(KwdNot, SymPlus)
	s := s1.Union(s2)
	for _, k := range []SyntaxKind{KwdAnd, KwdOr, KwdNot, SymPlus} {
		if !s.Contains(k) {
			t.Errorf("union should contain %s", k)
		}
	}
}

func TestSyntaxSetContainsHighBits(t *testing.T) {
	// Identifier/ReservedIdentifier sit past bit 64 in the enum; exercise
	// the hi-word path.
	s := SyntaxSetOf(Identifier, ReservedIdentifier, DecGlobalBinding)
	if !s.Contains(Identifier) {
		t.Error("set should contain Identifier")
	}
	if !s.Contains(ReservedIdentifier) {
		t.Error("set should contain ReservedIdentifier")
	}
	if !s.Contains(DecGlobalBinding) {
		t.Error("set should contain DecGlobalBinding")
	}
	if s.Contains(KwdAnd) {
		t.Error("set should not contain KwdAnd")
	}
}

func TestSyntaxSetContainsOutOfRange(t *testing.T) {
	s := SyntaxSetOf(KwdAnd, KwdOr)
	if s.Contains(SyntaxKind(200)) {
		t.Error("set.Contains should return false for kinds >= 128")
	}
}

func TestSyntaxSetAddPanicsForHighKinds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Add should panic for kinds >= 128")
		}
	}()
	_ = NewSyntaxSet().Add(SyntaxKind(200))
}

func TestSyntaxSetRemovePanicsForHighKinds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Remove should panic for kinds >= 128")
		}
	}()
	_ = NewSyntaxSet().Remove(SyntaxKind(200))
}

func TestSyntaxSetIsEmpty(t *testing.T) {
	s := NewSyntaxSet()
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	s = s.Add(KwdAnd)
	if s.IsEmpty() {
		t.Error("set with KwdAnd should not be empty")
	}
	s = s.Remove(KwdAnd)
	if !s.IsEmpty() {
		t.Error("set after removing KwdAnd should be empty")
	}
}

func TestPredefinedSets(t *testing.T) {
	if !DeclStartSet.Contains(KwdLet) {
		t.Error("DeclStartSet should contain KwdLet")
	}
	if !UnaryPrefixOpSet.Contains(KwdNot) {
		t.Error("UnaryPrefixOpSet should contain KwdNot")
	}
	if !BinaryOpSet.Contains(SymPlus) {
		t.Error("BinaryOpSet should contain SymPlus")
	}
	if !PrimaryStartSet.Contains(Identifier) {
		t.Error("PrimaryStartSet should contain Identifier")
	}
	if !PrimaryStartSet.Contains(LitString) {
		t.Error("PrimaryStartSet should contain LitString")
	}
	if !BlockRecoverySet.Contains(SymRParen) {
		t.Error("BlockRecoverySet should contain SymRParen")
	}
	if !StmtRecoverySet.Contains(Newline) {
		t.Error("StmtRecoverySet should contain Newline")
	}
}
