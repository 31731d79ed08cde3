package tree

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
PathMembership takes a node and a fuzzy set and returns the membership of
the observations of the set to the path leading to the node: the
conjunction of the branches from the root down to it. For the root,
whose path is empty, every observation has a membership of 1.
*/
func PathMembership(n *Node, s *fuzzy.Set) (*fuzzy.Membership, error) {
	if len(n.path) == 0 {
		values := make([]float64, s.Len())
		for i := range values {
			values[i] = 1.0
		}
		return fuzzy.NewMembership(fuzzy.AmbiguousAttribute, "", values), nil
	}
	pairs := make([][2]string, len(n.path))
	for i, c := range n.path {
		pairs[i] = [2]string{c.Attribute, c.Term}
	}
	return s.Conjunction(pairs...)
}

/*
Classify takes a fuzzy set with the LHS attributes of the tree and
returns a variable for the RHS attribute with a term per class term of
the tree. The membership of an observation to a class term is the union
of its path memberships to every leaf assigning that class, so
observations no leaf applies to get a membership of 0 to every class.
*/
func (t *Tree) Classify(s *fuzzy.Set) (*fuzzy.Variable, error) {
	classes := make(map[string][]float64, len(t.ClassTerms))
	for _, term := range t.ClassTerms {
		classes[term] = make([]float64, s.Len())
	}
	for _, leaf := range t.Leaves() {
		values, ok := classes[leaf.Class]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidStructure, "leaf %s assigns unknown class %q", leaf.Key(), leaf.Class)
		}
		mu, err := PathMembership(leaf, s)
		if err != nil {
			return nil, errors.Wrapf(err, "classifying with leaf %s", leaf.Key())
		}
		if mu.Len() != len(values) {
			return nil, errors.Wrapf(fuzzy.ErrLengthMismatch, "leaf %s: %d != %d", leaf.Key(), mu.Len(), len(values))
		}
		for i, v := range mu.Values {
			if v > values[i] {
				values[i] = v
			}
		}
	}
	result := fuzzy.NewVariable(t.RHS)
	for _, term := range t.ClassTerms {
		if err := result.Add(term, classes[term]); err != nil {
			return nil, err
		}
	}
	return result, nil
}
