// event.go implements the parser's intermediate representation: rather than
// building tree nodes directly, the parser emits a flat stream of Events
// that a later pass (sink.go) replays into the green tree. This lets a node
// started early be retroactively wrapped in an outer node decided later
// (see Marker.PrecedeNode), which is how left-recursive constructs like
// binary expressions are built from a recursive-descent parser without
// backtracking. Grounded on the Event enum in
// _examples/original_source/crates/helios-parser/src/parser/event.rs; the
// Marker/CompletedMarker/precede mechanism itself has no surviving
// pre-distillation source (the crate's parser/mod.rs did not make it into
// original_source) and no equivalent in any _examples repo, so it is
// rebuilt here from the well-known rust-analyzer technique the Event enum
// names imply, in the teacher's small-struct-with-named-methods style.
package syntax

// Event is one step of tree construction, recorded by the parser and
// replayed by the sink. StartNode's ForwardParent, when set, is the index
// of a later StartNode event that should actually wrap this one — see
// Marker.PrecedeNode.
type Event struct {
	Kind EventKind

	// Used by EventStartNode.
	NodeKind       SyntaxKind
	ForwardParent  int // index into the event stream, or -1 if unset.

	// Used by EventError.
	Message Message
}

// EventKind distinguishes the five shapes an Event can take.
type EventKind uint8

const (
	// EventPlaceholder marks a slot reserved by Marker that turned out not
	// to start a node (Marker.Abandon) or was folded into a later
	// forward-parent chain; the sink skips it entirely.
	EventPlaceholder EventKind = iota
	EventStartNode
	EventAddToken
	EventFinishNode
	EventError
)

// noForwardParent is the sentinel ForwardParent value meaning "this node is
// not wrapped by a later one".
const noForwardParent = -1

// Marker designates the position of an as-yet-unfinished node in the event
// stream. The parser opens one before parsing a construct whose final kind
// isn't known yet (e.g. it might start an expression, but that expression
// might turn out to be the left-hand side of a binary expression wrapping
// it), and completes or abandons it once the construct's extent is known.
type Marker struct {
	pos int
}

// startMarker records a placeholder event at pos and returns a Marker
// pointing at it.
func startMarker(events *[]Event, pos int) Marker {
	*events = append(*events, Event{Kind: EventPlaceholder})
	return Marker{pos: pos}
}

// Complete fixes this marker's node kind, turning its placeholder event
// into a StartNode event, and returns a CompletedMarker that can later be
// preceded by an outer node.
func (m Marker) Complete(events []Event, kind SyntaxKind) CompletedMarker {
	events[m.pos] = Event{Kind: EventStartNode, NodeKind: kind, ForwardParent: noForwardParent}
	return CompletedMarker{pos: m.pos}
}

// Abandon discards this marker without starting a node. Used when a
// tentative parse turns out not to produce anything (e.g. an optional
// trailing clause that wasn't present).
func (m Marker) Abandon(events []Event, eventsLen int) {
	if m.pos == eventsLen-1 {
		// The placeholder was never followed by anything; drop it outright
		// so the sink doesn't need to special-case a no-op StartNode.
		events[m.pos] = Event{Kind: EventPlaceholder}
	}
}

// CompletedMarker is a Marker whose node kind has been fixed. It can be
// preceded by a new, outer marker that will end up wrapping it, which is
// how the parser builds binary-expression trees: parse the left operand,
// complete it, then precede it with a new marker for the binary expression
// once an operator is seen.
type CompletedMarker struct {
	pos int
}

// PrecedeNode opens a new marker that, once completed, will become this
// completed marker's parent: the new marker's StartNode event is appended
// at the end of the stream, and this marker's old StartNode event is
// retroactively pointed at it via ForwardParent. The sink (sink.go) walks
// these forward-parent chains to build the correctly nested tree even
// though the outer node's start event appears after its child's in the
// stream.
func (cm CompletedMarker) PrecedeNode(events *[]Event) Marker {
	newPos := len(*events)
	*events = append(*events, Event{Kind: EventPlaceholder})
	(*events)[cm.pos].ForwardParent = newPos
	return Marker{pos: newPos}
}
