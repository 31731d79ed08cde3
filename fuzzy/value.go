package fuzzy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Value represents the fuzzy value of a single observation: the degree to
which it belongs to each of the terms of an attribute, in the order the
terms were declared.
*/
type Value struct {
	terms   []string
	degrees map[string]float64
}

// NewValue returns an empty Value.
func NewValue() *Value {
	return &Value{degrees: make(map[string]float64)}
}

/*
Set takes a term and a degree and sets the degree of membership of the
value to the term. Terms not seen before are appended to the value's
terms.
*/
func (v *Value) Set(term string, degree float64) {
	if _, ok := v.degrees[term]; !ok {
		v.terms = append(v.terms, term)
	}
	v.degrees[term] = degree
}

/*
Degree takes a term and returns the degree of membership of the value to
it, or an ErrUnknownTerm error if the value does not have the term.
*/
func (v *Value) Degree(term string) (float64, error) {
	d, ok := v.degrees[term]
	if !ok {
		return 0.0, errors.Wrapf(ErrUnknownTerm, "%q", term)
	}
	return d, nil
}

// Terms returns the terms of the value in declaration order.
func (v *Value) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Degrees returns the degrees of the value in term declaration order.
func (v *Value) Degrees() []float64 {
	result := make([]float64, len(v.terms))
	for i, t := range v.terms {
		result[i] = v.degrees[t]
	}
	return result
}

// Len returns the number of terms of the value.
func (v *Value) Len() int {
	return len(v.terms)
}

/*
Max returns the term with the highest degree and the degree itself.
Ties are resolved in favour of the term declared first. NaN degrees
never win unless all degrees are NaN. The empty value returns an empty
term and a 0 degree.
*/
func (v *Value) Max() (string, float64) {
	var term string
	degree := 0.0
	for i, t := range v.terms {
		d := v.degrees[t]
		if i == 0 || d > degree || (math.IsNaN(degree) && !math.IsNaN(d)) {
			term, degree = t, d
		}
	}
	return term, degree
}

/*
Ambiguity returns the non-specificity of the value.

Degrees are normalized by their maximum, a 0 is appended and they are
sorted in descending order as π1 ≥ π2 ≥ ... ≥ πn+1 = 0. The result is
the sum of (πi - πi+1) ln(i) for i from 1 to n. A crisp value has no
ambiguity and a value with n equal degrees has an ambiguity of ln(n).

It returns an ErrInvalidOperand error for an empty value and an
ErrDegenerateMass one if the maximum degree is not positive.
*/
func (v *Value) Ambiguity() (float64, error) {
	if len(v.terms) == 0 {
		return 0.0, errors.Wrap(ErrInvalidOperand, "ambiguity of an empty value")
	}
	_, top := v.Max()
	if !(top > 0.0) {
		return 0.0, errors.Wrapf(ErrDegenerateMass, "ambiguity of %v", v)
	}
	pi := make([]float64, 0, len(v.terms)+1)
	for _, t := range v.terms {
		pi = append(pi, v.degrees[t]/top)
	}
	pi = append(pi, 0.0)
	sort.Sort(sort.Reverse(sort.Float64Slice(pi)))
	var result float64
	for i := 0; i < len(pi)-1; i++ {
		result += (pi[i] - pi[i+1]) * math.Log(float64(i+1))
	}
	return result, nil
}

/*
And takes another value and returns a value with the minimum degree
of both values for every term. The other value must have all the terms
of the receiver, or an ErrUnknownTerm error is returned.
*/
func (v *Value) And(o *Value) (*Value, error) {
	return v.combine(o, math.Min)
}

/*
Or takes another value and returns a value with the maximum degree
of both values for every term. The other value must have all the terms
of the receiver, or an ErrUnknownTerm error is returned.
*/
func (v *Value) Or(o *Value) (*Value, error) {
	return v.combine(o, math.Max)
}

func (v *Value) combine(o *Value, f func(float64, float64) float64) (*Value, error) {
	result := NewValue()
	for _, t := range v.terms {
		d, err := o.Degree(t)
		if err != nil {
			return nil, err
		}
		result.Set(t, f(v.degrees[t], d))
	}
	return result, nil
}

func (v *Value) String() string {
	parts := make([]string, len(v.terms))
	for i, t := range v.terms {
		parts[i] = fmt.Sprintf("%s:%g", t, v.degrees[t])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
