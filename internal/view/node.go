// Package view describes forms as plain data trees with explicit event bindings.
package view

// Kind identifies how a node is displayed.
type Kind string

const (
	KindSection  Kind = "section"
	KindHeading  Kind = "heading"
	KindGrid     Kind = "grid"
	KindField    Kind = "field"
	KindTextarea Kind = "textarea"
	KindButton   Kind = "button"
	KindList     Kind = "list"
	KindItem     Kind = "item"
	KindChip     Kind = "chip"
	KindTip      Kind = "tip"
	KindText     Kind = "text"
)

// Event is the client event that triggers a node's action.
type Event string

const (
	EventChange Event = "change"
	EventClick  Event = "click"
	EventSubmit Event = "submit"
)

// Node is one element of a rendered form.
type Node struct {
	Kind        Kind    `json:"kind"`
	ID          string  `json:"id,omitempty"`
	Label       string  `json:"label,omitempty"`
	Text        string  `json:"text,omitempty"`
	Value       string  `json:"value,omitempty"`
	InputType   string  `json:"inputType,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
	Rows        int     `json:"rows,omitempty"`
	Action      string  `json:"action,omitempty"`
	Event       Event   `json:"event,omitempty"`
	Children    []*Node `json:"children,omitempty"`
}

// Append adds children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth-first, stopping when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given id, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Bound returns every node carrying an action, in tree order.
func (n *Node) Bound() []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Action != "" {
			out = append(out, c)
		}
		return true
	})
	return out
}
