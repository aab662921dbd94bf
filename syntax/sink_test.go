package syntax

import "testing"

// TestBuildTreeAttachesTrivia exercises the sink directly (bypassing the
// parser) over a handwritten event stream: an Identifier wrapped in an
// inner node, itself wrapped in an outer (Root-like) node, with whitespace
// before and after the inner node. Trailing trivia after the inner node
// closes should be deferred to the outer node rather than swallowed by the
// inner one.
func TestBuildTreeAttachesTrivia(t *testing.T) {
	source := "  x  "
	raw := []Token{
		{Kind: Whitespace, Range: Range{Start: 0, End: 2}},
		{Kind: Identifier, Range: Range{Start: 2, End: 3}},
		{Kind: Whitespace, Range: Range{Start: 3, End: 5}},
	}

	var events []Event
	outer := startMarker(&events, len(events))
	inner := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken})
	inner.Complete(events, ExpVariableRef)
	events = append(events, Event{Kind: EventFinishNode})
	outer.Complete(events, Root)
	events = append(events, Event{Kind: EventFinishNode})

	root, messages := BuildTree(source, raw, events)
	if len(messages) != 0 {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if root.Text() != source {
		t.Errorf("root.Text() = %q, want %q", root.Text(), source)
	}
	if len(root.Children()) != 2 {
		t.Fatalf("root has %d children, want 2 (inner node, trailing whitespace)", len(root.Children()))
	}
	inner2 := root.Children()[0]
	if inner2.Text() != "  x" {
		t.Errorf("inner node text = %q, want %q (leading trivia attached, trailing deferred to Root)", inner2.Text(), "  x")
	}
	if len(inner2.Children()) != 2 {
		t.Fatalf("inner node has %d children, want 2 (Whitespace, Identifier)", len(inner2.Children()))
	}
	if root.Children()[1].Kind() != Whitespace {
		t.Errorf("root's second child = %s, want Whitespace", root.Children()[1].Kind())
	}
}

// TestBuildTreeRootVacuumsTrailingTrivia checks the one exception to
// "trailing trivia belongs to the enclosing node": Root has no enclosing
// node, so trivia left over at end of input is swept into it directly.
func TestBuildTreeRootVacuumsTrailingTrivia(t *testing.T) {
	source := "x  "
	raw := []Token{
		{Kind: Identifier, Range: Range{Start: 0, End: 1}},
		{Kind: Whitespace, Range: Range{Start: 1, End: 3}},
	}

	var events []Event
	m := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken})
	m.Complete(events, Root)
	events = append(events, Event{Kind: EventFinishNode})

	root, _ := BuildTree(source, raw, events)
	if root.Text() != source {
		t.Errorf("root.Text() = %q, want %q (trailing trivia swept into Root)", root.Text(), source)
	}
}

// TestBuildTreeForwardParent exercises the retroactive-wrapping mechanism
// PrecedeNode implements: an inner node completed first is later wrapped by
// an outer node whose StartNode event appears later in the stream, as a
// left-associative binary expression parse would produce for `a + b`.
func TestBuildTreeForwardParent(t *testing.T) {
	source := "a+b"
	raw := []Token{
		{Kind: Identifier, Range: Range{Start: 0, End: 1}},
		{Kind: SymPlus, Range: Range{Start: 1, End: 2}},
		{Kind: Identifier, Range: Range{Start: 2, End: 3}},
	}

	var events []Event
	lhsMarker := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken}) // `a`
	lhs := lhsMarker.Complete(events, ExpVariableRef)
	events = append(events, Event{Kind: EventFinishNode})

	outer := lhs.PrecedeNode(&events)
	events = append(events, Event{Kind: EventAddToken}) // `+`

	rhsMarker := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken}) // `b`
	rhsMarker.Complete(events, ExpVariableRef)
	events = append(events, Event{Kind: EventFinishNode})

	outer.Complete(events, ExpBinary)
	events = append(events, Event{Kind: EventFinishNode})

	root, messages := BuildTree(source, raw, events)
	if len(messages) != 0 {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if root.Kind() != ExpBinary {
		t.Fatalf("root.Kind() = %s, want ExpBinary", root.Kind())
	}
	if root.Text() != "a+b" {
		t.Errorf("root.Text() = %q, want %q", root.Text(), "a+b")
	}
	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3 (lhs, +, rhs)", len(children))
	}
	if children[0].Kind() != ExpVariableRef || children[2].Kind() != ExpVariableRef {
		t.Errorf("children[0], children[2] kinds = %s, %s, want ExpVariableRef both", children[0].Kind(), children[2].Kind())
	}
	if children[1].Kind() != SymPlus {
		t.Errorf("children[1].Kind() = %s, want SymPlus", children[1].Kind())
	}
}

func TestBuildTreeAbandonedMarkerIsSkipped(t *testing.T) {
	source := "x"
	raw := []Token{{Kind: Identifier, Range: Range{Start: 0, End: 1}}}

	var events []Event
	speculative := startMarker(&events, len(events))
	speculative.Abandon(events, len(events))

	m := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken})
	m.Complete(events, ExpVariableRef)
	events = append(events, Event{Kind: EventFinishNode})

	root, _ := BuildTree(source, raw, events)
	if root.Kind() != ExpVariableRef {
		t.Errorf("root.Kind() = %s, want ExpVariableRef", root.Kind())
	}
	if root.Text() != "x" {
		t.Errorf("root.Text() = %q, want %q", root.Text(), "x")
	}
}

func TestBuildTreeRecordsErrorEvent(t *testing.T) {
	source := "x"
	raw := []Token{{Kind: Identifier, Range: Range{Start: 0, End: 1}}}
	msg := Message{File: FileID(1), Kind: UnexpectedToken{Found: Identifier}, Range: Range{Start: 0, End: 1}}

	var events []Event
	m := startMarker(&events, len(events))
	events = append(events, Event{Kind: EventAddToken})
	m.Complete(events, ExpVariableRef)
	events = append(events, Event{Kind: EventFinishNode})
	events = append(events, Event{Kind: EventError, Message: msg})

	_, messages := BuildTree(source, raw, events)
	if len(messages) != 1 || messages[0] != msg {
		t.Errorf("messages = %v, want [%v]", messages, msg)
	}
}
