package pagedoc

// NonBreakingSpace fills otherwise-empty text nodes before compilation.
// Without it the compiler collapses empty inline nodes and node boundaries
// bleed into each other.
const NonBreakingSpace = " "

// Sanitize returns a copy of the tree with every empty text node rewritten to
// hold a single non-breaking space and every child that sanitizes to nothing
// removed. Sibling order is preserved. The input is never mutated. A nil or
// untyped node sanitizes to nothing and returns nil.
func Sanitize(n *Node) *Node {
	if n == nil || n.Type == "" {
		return nil
	}

	children := n.Content
	n2 := *n
	n2.Content = nil
	out := n2.Clone()

	if out.Type == TypeText {
		if out.Text == "" {
			out.Text = NonBreakingSpace
		}
		return out
	}

	if len(children) > 0 {
		kept := make([]*Node, 0, len(children))
		for _, child := range children {
			if s := Sanitize(child); s != nil {
				kept = append(kept, s)
			}
		}
		out.Content = kept
	}

	return out
}
