/*
Package tree provides fuzzy decision trees: their structure, the rules
they stand for and their use to classify fuzzy sets.
*/
package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Tree represents a fuzzy decision tree. Its nodes are kept in creation
order, the root first, and reference their parent and children by index.

Alpha and Beta are the significance and truth thresholds the tree was
grown with, LHS the candidate attributes, RHS the class attribute and
ClassTerms the class terms leaves choose from, in the order
classifications report them.

Trees are built by growers and decoders with AddRoot, AddDecision and
AddLeaf and are not meant to be modified afterwards.
*/
type Tree struct {
	Alpha      float64
	Beta       float64
	LHS        []string
	RHS        string
	ClassTerms []string

	nodes  []*Node
	leaves []int
	set    *fuzzy.Set
}

/*
New takes the thresholds, attributes and class terms of a tree and the
fuzzy set it is fitted on, which may be nil, and returns an empty tree.
*/
func New(alpha, beta float64, lhs []string, rhs string, classTerms []string, fitting *fuzzy.Set) *Tree {
	return &Tree{
		Alpha:      alpha,
		Beta:       beta,
		LHS:        append([]string(nil), lhs...),
		RHS:        rhs,
		ClassTerms: append([]string(nil), classTerms...),
		set:        fitting,
	}
}

// AddRoot creates the root of the tree, testing the given attribute, and
// returns its index.
func (t *Tree) AddRoot(attribute string, truth float64) (int, error) {
	if len(t.nodes) > 0 {
		return 0, errors.Wrap(ErrInvalidStructure, "tree already has a root")
	}
	return t.add(&Node{Parent: -1, Attribute: attribute, Truth: truth}), nil
}

/*
AddDecision creates a node testing the given attribute under the branch
of the parent for the given term, and returns its index.
*/
func (t *Tree) AddDecision(parent int, branch, attribute string, truth float64) (int, error) {
	p, err := t.parent(parent)
	if err != nil {
		return 0, err
	}
	return t.add(&Node{
		Parent:    parent,
		Branch:    branch,
		Attribute: attribute,
		Truth:     truth,
		path:      append(p.Conditions(), Condition{p.Attribute, branch}),
	}), nil
}

/*
AddLeaf creates a leaf assigning the given class with the given truth
level under the branch of the parent for the given term, and returns its
index.
*/
func (t *Tree) AddLeaf(parent int, branch, class string, truth float64) (int, error) {
	p, err := t.parent(parent)
	if err != nil {
		return 0, err
	}
	id := t.add(&Node{
		Parent: parent,
		Branch: branch,
		Class:  class,
		Leaf:   true,
		Truth:  truth,
		path:   append(p.Conditions(), Condition{p.Attribute, branch}),
	})
	t.leaves = append(t.leaves, id)
	return id, nil
}

func (t *Tree) add(n *Node) int {
	n.ID = len(t.nodes)
	t.nodes = append(t.nodes, n)
	if n.Parent >= 0 {
		p := t.nodes[n.Parent]
		p.Children = append(p.Children, n.ID)
	}
	return n.ID
}

func (t *Tree) parent(id int) (*Node, error) {
	p := t.Node(id)
	if p == nil {
		return nil, errors.Wrapf(ErrUnknownNode, "parent %d", id)
	}
	if p.Leaf {
		return nil, errors.Wrapf(ErrInvalidStructure, "leaf %s cannot have children", p.Key())
	}
	return p, nil
}

// Root returns the root of the tree, or nil for empty trees.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[0]
}

// Node returns the node with the given index, or nil if the tree does
// not have it.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Nodes returns every node of the tree in creation order.
func (t *Tree) Nodes() []*Node {
	return append([]*Node(nil), t.nodes...)
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the leaves of the tree in creation order.
func (t *Tree) Leaves() []*Node {
	result := make([]*Node, len(t.leaves))
	for i, id := range t.leaves {
		result[i] = t.nodes[id]
	}
	return result
}

// FittingSet returns the fuzzy set the tree was grown on, nil for
// decoded trees.
func (t *Tree) FittingSet() *fuzzy.Set {
	return t.set
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
// Otherwise, when the traversing is over, nil is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	root := t.Root()
	if root == nil {
		return nil
	}
	return t.traverse(ctx, root, bottomup, f)
}

func (t *Tree) traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, n)
	}
	if err != nil {
		return err
	}
	for _, id := range n.Children {
		err = t.traverse(ctx, t.nodes[id], bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(ctx, n)
	}
	return err
}

func (t *Tree) String() string {
	root := t.Root()
	if root == nil {
		return "[empty tree]\n"
	}
	return t.subtreeString(root)
}

func (t *Tree) subtreeString(n *Node) string {
	result := fmt.Sprintf("[%s]\n", n.Name())
	if n.Parent >= 0 {
		result = fmt.Sprintf("[%s == %s]\n", t.nodes[n.Parent].Attribute, n.Branch)
		if n.Leaf {
			result = fmt.Sprintf("%s{ %s == %s: %f }\n", result, t.RHS, n.Class, n.Truth)
		} else {
			result = fmt.Sprintf("%s{ %s }\n", result, n.Attribute)
		}
	}
	if len(n.Children) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	} else {
		result = fmt.Sprintf("%s \n", result)
	}
	for i, id := range n.Children {
		for j, line := range strings.Split(t.subtreeString(t.nodes[id]), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(n.Children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
