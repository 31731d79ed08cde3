package partition

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Fuzzifier holds the membership functions of the terms of an attribute
and turns the attribute's raw values into fuzzy variables and values.

Points is set for fuzzifiers built from breakpoints, so they can be
described and rebuilt with a points Spec.
*/
type Fuzzifier struct {
	Name      string     `json:"name"`
	Terms     []string   `json:"terms"`
	Functions []Function `json:"functions"`
	Points    []float64  `json:"points,omitempty"`
}

/*
NewFuzzifier takes an attribute name, its terms and one membership
function per term and returns a Fuzzifier with them, or an error if the
number of terms and functions differ or any function is not valid.
*/
func NewFuzzifier(name string, terms []string, functions []Function) (*Fuzzifier, error) {
	if len(terms) != len(functions) {
		return nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s has %d terms and %d functions", name, len(terms), len(functions))
	}
	if len(terms) == 0 {
		return nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s has no terms", name)
	}
	for i, f := range functions {
		if err := f.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s:%s", name, terms[i])
		}
	}
	return &Fuzzifier{
		Name:      name,
		Terms:     append([]string(nil), terms...),
		Functions: append([]Function(nil), functions...),
	}, nil
}

// Function takes a term and returns its membership function.
func (fz *Fuzzifier) Function(term string) (Function, bool) {
	for i, t := range fz.Terms {
		if t == term {
			return fz.Functions[i], true
		}
	}
	return Function{}, false
}

/*
Fuzzify takes the raw values of the attribute for a set of observations
and returns the variable with the degree of membership of every
observation to every term.
*/
func (fz *Fuzzifier) Fuzzify(values []interface{}) (*fuzzy.Variable, error) {
	fv := fuzzy.NewVariable(fz.Name)
	for i, t := range fz.Terms {
		degrees := make([]float64, len(values))
		for j, v := range values {
			d, err := fz.Functions[i].DegreeOf(v)
			if err != nil {
				return nil, errors.Wrapf(err, "fuzzifying observation %d of %s", j, fz.Name)
			}
			degrees[j] = d
		}
		if err := fv.Add(t, degrees); err != nil {
			return nil, err
		}
	}
	return fv, nil
}

// FuzzifyFloats is like Fuzzify for numeric values.
func (fz *Fuzzifier) FuzzifyFloats(values []float64) (*fuzzy.Variable, error) {
	fv := fuzzy.NewVariable(fz.Name)
	for i, t := range fz.Terms {
		degrees := make([]float64, len(values))
		for j, v := range values {
			degrees[j] = fz.Functions[i].Degree(v)
		}
		if err := fv.Add(t, degrees); err != nil {
			return nil, err
		}
	}
	return fv, nil
}

// FuzzifyValue takes a single raw value and returns its fuzzy value.
func (fz *Fuzzifier) FuzzifyValue(value interface{}) (*fuzzy.Value, error) {
	result := fuzzy.NewValue()
	for i, t := range fz.Terms {
		d, err := fz.Functions[i].DegreeOf(value)
		if err != nil {
			return nil, errors.Wrapf(err, "fuzzifying %s", fz.Name)
		}
		result.Set(t, d)
	}
	return result, nil
}

/*
Sample takes a range and a number of samples n and returns n evenly
spaced values covering the range, both ends included, along with the
variable obtained fuzzifying them. It is useful to plot or inspect the
membership functions.
*/
func (fz *Fuzzifier) Sample(lo, hi float64, n int) ([]float64, *fuzzy.Variable, error) {
	if n < 2 {
		return nil, nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "sampling %s with %d values", fz.Name, n)
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + step*float64(i)
	}
	xs[n-1] = hi
	fv, err := fz.FuzzifyFloats(xs)
	if err != nil {
		return nil, nil, err
	}
	return xs, fv, nil
}

/*
Spec returns a Spec that rebuilds the fuzzifier without any data: a
points spec for fuzzifiers built from breakpoints and a crisp spec for
fuzzifiers whose terms are indicators of themselves. Other fuzzifiers
cannot be described by a Spec and an error is returned for them.
*/
func (fz *Fuzzifier) Spec() (Spec, error) {
	if fz.Points != nil {
		return Spec{
			Name:     fz.Name,
			Strategy: StrategyPoints,
			Terms:    append([]string(nil), fz.Terms...),
			Points:   append([]float64(nil), fz.Points...),
		}, nil
	}
	for i, f := range fz.Functions {
		if f.Kind != Indicator || f.Category != fz.Terms[i] {
			return Spec{}, errors.Wrapf(fuzzy.ErrInvalidOperand, "fuzzifier %s cannot be described by a spec", fz.Name)
		}
	}
	return Spec{
		Name:     fz.Name,
		Strategy: StrategyCrisp,
		Terms:    append([]string(nil), fz.Terms...),
	}, nil
}
