package fuzzy

import (
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Set represents a fuzzy data set: a collection of variables, one per
attribute, all of them with the same number of observations.
*/
type Set struct {
	attributes []string
	variables  map[string]*Variable
}

/*
NewSet takes any number of variables and returns a Set with them, or
an error if they have different lengths or repeated names.
*/
func NewSet(variables ...*Variable) (*Set, error) {
	s := &Set{variables: make(map[string]*Variable)}
	for _, fv := range variables {
		if err := s.Add(fv); err != nil {
			return nil, err
		}
	}
	return s, nil
}

/*
Add takes a variable and adds it to the set. It returns an
ErrDuplicateAttribute error if the set already has a variable with the
same name and an ErrLengthMismatch one if its length differs from the
length of the set.
*/
func (s *Set) Add(fv *Variable) error {
	if fv == nil {
		return errors.Wrap(ErrInvalidOperand, "adding a nil variable")
	}
	if _, ok := s.variables[fv.Name()]; ok {
		return errors.Wrapf(ErrDuplicateAttribute, "%s", fv.Name())
	}
	if len(s.attributes) > 0 && fv.Len() != s.Len() {
		return errors.Wrapf(ErrLengthMismatch, "adding %s with %d observations to a set with %d", fv.Name(), fv.Len(), s.Len())
	}
	s.attributes = append(s.attributes, fv.Name())
	s.variables[fv.Name()] = fv
	return nil
}

/*
Variable takes an attribute name and returns its variable, or an
ErrUnknownAttribute error if the set does not have it.
*/
func (s *Set) Variable(attribute string) (*Variable, error) {
	fv, ok := s.variables[attribute]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAttribute, "%q", attribute)
	}
	return fv, nil
}

// Attributes returns the names of the variables of the set in the
// order they were added.
func (s *Set) Attributes() []string {
	return append([]string(nil), s.attributes...)
}

// Len returns the number of observations of the set.
func (s *Set) Len() int {
	if len(s.attributes) == 0 {
		return 0
	}
	return s.variables[s.attributes[0]].Len()
}

/*
Membership takes an attribute and one of its terms and returns the
membership of the term.
*/
func (s *Set) Membership(attribute, term string) (*Membership, error) {
	fv, err := s.Variable(attribute)
	if err != nil {
		return nil, err
	}
	return fv.Term(term)
}

/*
Mu takes a condition in "attribute:term" form and returns the membership
of the term. The attribute is everything before the first colon.
*/
func (s *Set) Mu(condition string) (*Membership, error) {
	i := strings.Index(condition, ":")
	if i < 0 {
		return nil, errors.Wrapf(ErrInvalidOperand, "condition %q is not in attribute:term form", condition)
	}
	return s.Membership(condition[:i], condition[i+1:])
}

/*
Conjunction takes a list of attribute and term pairs and returns the
intersection of the memberships of all of them. It returns an
ErrInvalidOperand error if no pairs are given.
*/
func (s *Set) Conjunction(pairs ...[2]string) (*Membership, error) {
	if len(pairs) == 0 {
		return nil, errors.Wrap(ErrInvalidOperand, "conjunction of no conditions")
	}
	result, err := s.Membership(pairs[0][0], pairs[0][1])
	if err != nil {
		return nil, err
	}
	for _, p := range pairs[1:] {
		m, err := s.Membership(p[0], p[1])
		if err != nil {
			return nil, err
		}
		result, err = result.And(m)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Ambiguity takes an attribute and returns the mean ambiguity of its
// variable.
func (s *Set) Ambiguity(attribute string) (float64, error) {
	fv, err := s.Variable(attribute)
	if err != nil {
		return 0.0, err
	}
	return fv.Ambiguity()
}
