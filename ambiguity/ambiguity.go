/*
Package ambiguity implements the evidence and classification ambiguity
measures used to choose the attribute a fuzzy decision tree should test
at every node.
*/
package ambiguity

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
RawEvidence takes the class variable and a membership mu and returns a
value with the subsethood of mu in every class term, in class term order.

It returns an ErrDegenerateMass error if mu has no mass.
*/
func RawEvidence(class *fuzzy.Variable, mu *fuzzy.Membership) (*fuzzy.Value, error) {
	if class == nil || len(class.Terms()) == 0 || mu == nil {
		return nil, errors.Wrap(fuzzy.ErrInvalidOperand, "evidence needs a class with terms and a membership")
	}
	result := fuzzy.NewValue()
	for _, m := range class.Memberships() {
		s, err := fuzzy.Subsethood(mu, m)
		if err != nil {
			return nil, errors.Wrapf(err, "evidence of %s for %s", mu.Label, class.Name())
		}
		result.Set(m.Label, s)
	}
	return result, nil
}

/*
Evidence is like RawEvidence but the returned value is normalized by its
maximum. It returns an ErrDegenerateMass error if mu has no mass or
shares no mass with any class term.
*/
func Evidence(class *fuzzy.Variable, mu *fuzzy.Membership) (*fuzzy.Value, error) {
	raw, err := RawEvidence(class, mu)
	if err != nil {
		return nil, err
	}
	_, top := raw.Max()
	if !(top > 0.0) {
		return nil, errors.Wrapf(fuzzy.ErrDegenerateMass, "evidence of %s for %s is null", mu.Label, class.Name())
	}
	result := fuzzy.NewValue()
	for _, t := range raw.Terms() {
		d, _ := raw.Degree(t)
		result.Set(t, d/top)
	}
	return result, nil
}

/*
Classification takes the class variable and a candidate variable p and
returns the ambiguity of classifying with p: the sum over the terms of p
of the ambiguity of their evidence for the class, weighted by the share
of the total mass of p each term holds.

Any error computing the evidence of a term is returned, which makes the
candidate unusable. Callers growing trees treat ErrDegenerateMass
errors as the worst possible ambiguity.
*/
func Classification(class, p *fuzzy.Variable) (float64, error) {
	if p == nil {
		return 0.0, errors.Wrap(fuzzy.ErrInvalidOperand, "classification ambiguity of a nil variable")
	}
	return weighted(class, p.Memberships())
}

/*
ClassificationGiven is like Classification but every term of p is
intersected with the membership mu first, measuring the ambiguity of
classifying with p the observations that reached a branch of a tree.
*/
func ClassificationGiven(class, p *fuzzy.Variable, mu *fuzzy.Membership) (float64, error) {
	if p == nil || mu == nil {
		return 0.0, errors.Wrap(fuzzy.ErrInvalidOperand, "classification ambiguity of a nil variable or membership")
	}
	terms := p.Memberships()
	for i, m := range terms {
		intersection, err := m.And(mu)
		if err != nil {
			return 0.0, err
		}
		terms[i] = intersection
	}
	return weighted(class, terms)
}

func weighted(class *fuzzy.Variable, terms []*fuzzy.Membership) (float64, error) {
	if len(terms) == 0 {
		return 0.0, errors.Wrap(fuzzy.ErrInvalidOperand, "classification ambiguity of a variable without terms")
	}
	weights := make([]float64, len(terms))
	var total float64
	for i, m := range terms {
		weights[i] = m.Sum()
		total += weights[i]
	}
	if total == 0.0 {
		return 0.0, errors.Wrapf(fuzzy.ErrDegenerateMass, "classification ambiguity of %s", terms[0].Attribute)
	}
	var result float64
	for i, m := range terms {
		ev, err := Evidence(class, m)
		if err != nil {
			return 0.0, err
		}
		a, err := ev.Ambiguity()
		if err != nil {
			return 0.0, err
		}
		result += weights[i] / total * a
	}
	return result, nil
}
