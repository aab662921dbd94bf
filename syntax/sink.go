// sink.go implements spec §4.5: the event sink that replays a Parser's flat
// Event stream against the original (trivia-inclusive) token vector to
// build the green tree, reattaching whitespace and comments to the node
// that was open around them as it goes. No teacher file has an equivalent
// (the teacher builds nodes directly while parsing); this is new,
// grounded in the forward-parent replay algorithm rust-analyzer's
// `sink.rs` is known for and that event.go's doc comment already
// describes, adapted to this package's Event/GreenNode shapes.
package syntax

// openNode accumulates the children of a node that is currently open on
// the sink's stack.
type openNode struct {
	kind     SyntaxKind
	children []*GreenNode
}

// BuildTree replays events against rawTokens (the full token vector,
// trivia included, as produced by Tokenize and RewriteIndentation) and
// returns the resulting green tree root plus every diagnostic the parser
// recorded as an Error event, in the order they were recorded.
func BuildTree(source string, rawTokens []Token, events []Event) (*GreenNode, []Message) {
	var stack []openNode
	var messages []Message
	var root *GreenNode
	visited := make([]bool, len(events))
	rawIdx := 0

	attachTrivia := func() {
		for rawIdx < len(rawTokens) && rawTokens[rawIdx].Kind.IsTrivia() {
			leaf := NewLeaf(rawTokens[rawIdx].Kind, rawTokens[rawIdx].Text(source))
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				top.children = append(top.children, leaf)
			}
			rawIdx++
		}
	}

	for i := range events {
		if visited[i] {
			continue
		}
		ev := events[i]
		switch ev.Kind {

		case EventPlaceholder:
			// An abandoned marker; nothing was ever built here.

		case EventStartNode:
			// Follow the forward-parent chain: this node may be wrapped by a
			// later-decided outer node (spec §4.4's retroactive wrapping, used
			// for left-associative binary expressions). Collect kinds from
			// innermost (this event) to outermost, marking each index visited
			// so the main loop skips it when it reaches it, then push them in
			// outermost-first order so the resulting stack nests correctly.
			//
			// No trivia is flushed here. Trivia flushes only before an
			// AddToken (below), once the stack is built all the way down to
			// that token's actual parent; flushing per push would instead
			// attach it to whatever enclosing node was already open, and
			// would drop it outright the first time this runs, when the
			// stack is still empty ahead of Root.
			var kinds []SyntaxKind
			idx := i
			for {
				visited[idx] = true
				kinds = append(kinds, events[idx].NodeKind)
				fp := events[idx].ForwardParent
				if fp == noForwardParent {
					break
				}
				idx = fp
			}
			for j := len(kinds) - 1; j >= 0; j-- {
				stack = append(stack, openNode{kind: kinds[j]})
			}

		case EventAddToken:
			attachTrivia()
			tok := rawTokens[rawIdx]
			leaf := NewLeaf(tok.Kind, tok.Text(source))
			top := &stack[len(stack)-1]
			top.children = append(top.children, leaf)
			rawIdx++

		case EventFinishNode:
			// Trailing trivia belongs to the enclosing node, not the one
			// that's closing (spec §4.5): don't flush here, so it stays
			// buffered until the next AddToken attaches it to that token's
			// parent (StartNode never flushes). The one exception is Root itself,
			// whose FinishNode is the last event in the stream and has no
			// enclosing node to defer to, so any trivia left over at
			// end-of-input is swept into it here.
			if len(stack) == 1 {
				attachTrivia()
			}
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			green := NewInner(n.kind, n.children)
			if len(stack) == 0 {
				root = green
			} else {
				top := &stack[len(stack)-1]
				top.children = append(top.children, green)
			}

		case EventError:
			messages = append(messages, ev.Message)
		}
	}

	return root, messages
}
