package tree

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Prediction represents the classification a tree makes of a single
observation: its membership to every class term of the tree.
*/
type Prediction struct {
	value *fuzzy.Value
}

/*
MembershipOf takes a class term and returns the membership of the
observation to it according to the prediction.
*/
func (p *Prediction) MembershipOf(class string) float64 {
	d, err := p.value.Degree(class)
	if err != nil {
		return 0.0
	}
	return d
}

// Value returns the predicted memberships as a fuzzy value over the
// class terms.
func (p *Prediction) Value() *fuzzy.Value {
	return p.value
}

/*
PredictedValue returns the class term with the highest membership and
that membership. Ties are resolved in favour of the term declared first.
*/
func (p *Prediction) PredictedValue() (string, float64) {
	return p.value.Max()
}

func (p *Prediction) String() string {
	return p.value.String()
}

/*
Predict takes the fuzzy values of an observation for the LHS attributes
of the tree, indexed by attribute, and returns the prediction of the tree
for it. Attributes missing from the map are taken to belong to none of
their terms. Values must have every term the tree branches on or an
fuzzy.ErrUnknownTerm error is returned.

ErrCannotPredictFromSample is returned when no leaf of the tree applies
to the observation.
*/
func (t *Tree) Predict(sample map[string]*fuzzy.Value) (*Prediction, error) {
	if len(t.leaves) == 0 {
		return nil, errors.WithDetail(ErrCannotPredictFromSample, "tree has no leaves")
	}
	s, err := t.singleObservationSet(sample)
	if err != nil {
		return nil, err
	}
	classes, err := t.Classify(s)
	if err != nil {
		return nil, err
	}
	v := classes.Value(0)
	if _, top := v.Max(); !(top > 0.0) {
		return nil, errors.WithDetailf(ErrCannotPredictFromSample, "sample %v", sample)
	}
	return &Prediction{v}, nil
}

// singleObservationSet builds a set with one observation holding the
// degrees of the sample for every term the tree branches on.
func (t *Tree) singleObservationSet(sample map[string]*fuzzy.Value) (*fuzzy.Set, error) {
	terms := make(map[string][]string)
	var attributes []string
	for _, n := range t.nodes {
		if n.Leaf {
			continue
		}
		if len(n.Children) == 0 {
			continue
		}
		if _, ok := terms[n.Attribute]; !ok {
			attributes = append(attributes, n.Attribute)
		}
		for _, id := range n.Children {
			terms[n.Attribute] = appendMissing(terms[n.Attribute], t.nodes[id].Branch)
		}
	}
	s, err := fuzzy.NewSet()
	if err != nil {
		return nil, err
	}
	for _, a := range attributes {
		fv := fuzzy.NewVariable(a)
		for _, term := range terms[a] {
			var d float64
			if v, ok := sample[a]; ok && v != nil {
				if d, err = v.Degree(term); err != nil {
					return nil, err
				}
			}
			if err = fv.Add(term, []float64{d}); err != nil {
				return nil, err
			}
		}
		if err = s.Add(fv); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func appendMissing(terms []string, term string) []string {
	for _, t := range terms {
		if t == term {
			return terms
		}
	}
	return append(terms, term)
}
