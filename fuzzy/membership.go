package fuzzy

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// AmbiguousAttribute is the attribute of memberships that combine terms
// of different attributes.
const AmbiguousAttribute = "?"

/*
Membership represents the degrees to which every observation of a set
belongs to a linguistic term of an attribute, or to a combination of
terms obtained with the And, Or and Not operations.

Label describes how the membership was derived, for instance "Sunny"
for a term or "Outlook(Sunny) & Wind(Weak)" for a conjunction, and is
only meant for auditing and debugging.

Values may be shared with the Variable the membership was obtained
from and must be considered read-only.
*/
type Membership struct {
	Attribute string
	Label     string
	Values    []float64
}

/*
NewMembership takes an attribute name, a label and a slice of degrees
and returns a Membership with them.
*/
func NewMembership(attribute, label string, values []float64) *Membership {
	return &Membership{attribute, label, values}
}

// Len returns the number of observations in the membership.
func (m *Membership) Len() int {
	return len(m.Values)
}

// Sum returns the total mass of the membership.
func (m *Membership) Sum() float64 {
	return floats.Sum(m.Values)
}

// Max returns the highest degree in the membership, or 0 if it has no
// observations.
func (m *Membership) Max() float64 {
	if len(m.Values) == 0 {
		return 0.0
	}
	return floats.Max(m.Values)
}

/*
And takes another membership and returns their intersection: the
elementwise minimum of both. It returns an ErrLengthMismatch error if
their lengths differ.
*/
func (m *Membership) And(o *Membership) (*Membership, error) {
	return m.combine(o, "&", math.Min)
}

/*
Or takes another membership and returns their union: the elementwise
maximum of both. It returns an ErrLengthMismatch error if their lengths
differ.
*/
func (m *Membership) Or(o *Membership) (*Membership, error) {
	return m.combine(o, "|", math.Max)
}

// Not returns the complement of the membership.
func (m *Membership) Not() *Membership {
	values := make([]float64, len(m.Values))
	for i, v := range m.Values {
		values[i] = 1.0 - v
	}
	return &Membership{m.Attribute, fmt.Sprintf("not(%s)", m.Label), values}
}

/*
Vagueness returns the vagueness of the membership: the mean over all
observations of -(v ln v + (1-v) ln(1-v)), taking 0 ln 0 as 0.
It returns 0 for memberships without observations.
*/
func (m *Membership) Vagueness() float64 {
	if len(m.Values) == 0 {
		return 0.0
	}
	var result float64
	for _, v := range m.Values {
		result -= v*positiveLog(v) + (1.0-v)*positiveLog(1.0-v)
	}
	return result / float64(len(m.Values))
}

func (m *Membership) String() string {
	return fmt.Sprintf("%s:%s %v", m.Attribute, m.Label, m.Values)
}

func (m *Membership) combine(o *Membership, op string, f func(float64, float64) float64) (*Membership, error) {
	if m == nil || o == nil {
		return nil, errors.Wrapf(ErrInvalidOperand, "%s with a nil membership", op)
	}
	if len(m.Values) != len(o.Values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%s %s %s: %d != %d", m.Label, op, o.Label, len(m.Values), len(o.Values))
	}
	attribute := m.Attribute
	label := fmt.Sprintf("%s %s %s", m.Label, op, o.Label)
	if m.Attribute != o.Attribute {
		attribute = AmbiguousAttribute
		label = fmt.Sprintf("%s(%s) %s %s(%s)", m.Attribute, m.Label, op, o.Attribute, o.Label)
	}
	values := make([]float64, len(m.Values))
	for i, v := range m.Values {
		values[i] = f(v, o.Values[i])
	}
	return &Membership{attribute, label, values}, nil
}

/*
Subsethood takes two memberships a and b and returns the degree to which
a is a subset of b: sum(min(a, b)) / sum(a).

An ErrDegenerateMass error is returned if a has no mass, and an
ErrLengthMismatch one if the memberships lengths differ.
*/
func Subsethood(a, b *Membership) (float64, error) {
	intersection, err := a.And(b)
	if err != nil {
		return 0.0, err
	}
	mass := a.Sum()
	if mass == 0.0 {
		return 0.0, errors.Wrapf(ErrDegenerateMass, "subsethood of %s in %s", a.Label, b.Label)
	}
	return intersection.Sum() / mass, nil
}

func positiveLog(v float64) float64 {
	if v > 0.0 {
		return math.Log(v)
	}
	return 0.0
}
