package fuzzy

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Variable represents a fuzzified attribute: a named set of linguistic
terms, each with the membership degrees of all the observations of a
data set. All terms of a variable have the same number of observations.
*/
type Variable struct {
	name   string
	terms  []string
	values map[string][]float64
}

// NewVariable takes a name and returns an empty Variable with it.
func NewVariable(name string) *Variable {
	return &Variable{name: name, values: make(map[string][]float64)}
}

/*
Add takes a term and the membership degrees of every observation to it
and adds them to the variable. It returns an ErrDuplicateTerm error if
the variable already has the term and an ErrLengthMismatch one if the
number of degrees does not match the other terms.
*/
func (fv *Variable) Add(term string, values []float64) error {
	if _, ok := fv.values[term]; ok {
		return errors.Wrapf(ErrDuplicateTerm, "%s:%s", fv.name, term)
	}
	if len(fv.terms) > 0 && len(values) != fv.Len() {
		return errors.Wrapf(ErrLengthMismatch, "adding %s:%s with %d observations to a variable with %d", fv.name, term, len(values), fv.Len())
	}
	fv.terms = append(fv.terms, term)
	fv.values[term] = values
	return nil
}

// Name returns the name of the attribute the variable represents.
func (fv *Variable) Name() string {
	return fv.name
}

// Terms returns the terms of the variable in declaration order.
func (fv *Variable) Terms() []string {
	return append([]string(nil), fv.terms...)
}

// Len returns the number of observations of the variable.
func (fv *Variable) Len() int {
	if len(fv.terms) == 0 {
		return 0
	}
	return len(fv.values[fv.terms[0]])
}

/*
Term takes a term and returns its membership, or an ErrUnknownTerm error
if the variable does not have it.
*/
func (fv *Variable) Term(term string) (*Membership, error) {
	values, ok := fv.values[term]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTerm, "%s:%s", fv.name, term)
	}
	return &Membership{fv.name, term, values}, nil
}

// Memberships returns the memberships of all the terms of the variable
// in declaration order.
func (fv *Variable) Memberships() []*Membership {
	result := make([]*Membership, len(fv.terms))
	for i, t := range fv.terms {
		result[i] = &Membership{fv.name, t, fv.values[t]}
	}
	return result
}

/*
Value takes the index of an observation and returns its fuzzy value.
It panics if the index is out of range.
*/
func (fv *Variable) Value(i int) *Value {
	v := NewValue()
	for _, t := range fv.terms {
		v.Set(t, fv.values[t][i])
	}
	return v
}

// Values returns the fuzzy value of every observation of the variable.
func (fv *Variable) Values() []*Value {
	result := make([]*Value, fv.Len())
	for i := range result {
		result[i] = fv.Value(i)
	}
	return result
}

/*
Ambiguity returns the mean ambiguity of the values of all the
observations of the variable. Any error computing the ambiguity of a
value is returned.
*/
func (fv *Variable) Ambiguity() (float64, error) {
	n := fv.Len()
	if n == 0 {
		return 0.0, errors.Wrapf(ErrInvalidOperand, "ambiguity of empty variable %s", fv.name)
	}
	var total float64
	for i := 0; i < n; i++ {
		a, err := fv.Value(i).Ambiguity()
		if err != nil {
			return 0.0, errors.Wrapf(err, "observation %d of %s", i, fv.name)
		}
		total += a
	}
	return total / float64(n), nil
}

func (fv *Variable) String() string {
	var sb strings.Builder
	sb.WriteString(fv.name)
	for _, t := range fv.terms {
		sb.WriteString("\t")
		sb.WriteString(t)
	}
	for i := 0; i < fv.Len(); i++ {
		fmt.Fprintf(&sb, "\n%d", i)
		for _, t := range fv.terms {
			fmt.Fprintf(&sb, "\t%g", fv.values[t][i])
		}
	}
	return sb.String()
}
