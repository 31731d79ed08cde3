package tree

import (
	"strings"
)

// Condition is the test a branch of the tree imposes: the membership of
// observations to a term of an attribute.
type Condition struct {
	Attribute string
	Term      string
}

func (c Condition) String() string {
	return c.Attribute + ":" + c.Term
}

/*
Node is a node of the tree
*/
type Node struct {
	// The index of the node in its tree
	ID int
	// The index of the parent of the node, -1 for the root
	Parent int
	// The term of the parent's attribute on the branch leading to the
	// node, empty for the root
	Branch string
	// The attribute the node tests, empty for leaves
	Attribute string
	// The class term leaves assign, empty for decision nodes
	Class string
	// Whether the node is a leaf
	Leaf bool
	// The classification ambiguity of decision nodes and the truth
	// level of the class of leaves
	Truth float64
	// The indexes of the nodes directly under this node, in creation
	// order
	Children []int

	path []Condition
}

// Name returns the attribute decision nodes test or the class leaves
// assign.
func (n *Node) Name() string {
	if n.Leaf {
		return n.Class
	}
	return n.Attribute
}

// Conditions returns the conditions of the branches from the root down
// to the node.
func (n *Node) Conditions() []Condition {
	return append([]Condition(nil), n.path...)
}

// Path returns the conditions leading to the node in attribute:term
// form.
func (n *Node) Path() []string {
	result := make([]string, len(n.path))
	for i, c := range n.path {
		result[i] = c.String()
	}
	return result
}

/*
Key returns a string identifying the node by its path: the conditions
leading to it followed by its name, separated by semicolons, as in
"Humidity:High;Outlook:Sunny;No".
*/
func (n *Node) Key() string {
	return strings.Join(append(n.Path(), n.Name()), ";")
}

// Uses returns whether the attribute is tested on the path to the node
// or by the node itself.
func (n *Node) Uses(attribute string) bool {
	if !n.Leaf && n.Attribute == attribute {
		return true
	}
	for _, c := range n.path {
		if c.Attribute == attribute {
			return true
		}
	}
	return false
}
