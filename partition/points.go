package partition

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
PointsFuzzifier takes an attribute name, one breakpoint per term and the
terms and returns the fuzzifier of the fixed points partition: a left
shoulder for the first term, a right shoulder for the last one and
triangles centered on their breakpoint for the terms in between, so
that the terms overlap pairwise and the degrees of every value add up
to 1 inside the range of the breakpoints.

It returns an ErrDimensionMismatch error if there are fewer than two
terms or the numbers of terms and breakpoints differ.
*/
func PointsFuzzifier(name string, points []float64, terms []string) (*Fuzzifier, error) {
	if len(terms) != len(points) {
		return nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s has %d terms and %d points", name, len(terms), len(points))
	}
	if len(terms) < 2 {
		return nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s needs at least two terms, got %d", name, len(terms))
	}
	n := len(points)
	functions := make([]Function, n)
	functions[0] = NewLeftShoulder(points[0], points[1])
	for c := 1; c < n-1; c++ {
		functions[c] = NewTriangular(points[c-1], points[c], points[c+1])
	}
	functions[n-1] = NewRightShoulder(points[n-2], points[n-1])
	fz, err := NewFuzzifier(name, terms, functions)
	if err != nil {
		return nil, err
	}
	fz.Points = append([]float64(nil), points...)
	return fz, nil
}

/*
Points takes the values of a numeric attribute, its name, one breakpoint
per term and the terms, and returns the fixed points fuzzifier along
with the variable obtained fuzzifying the values with it.
*/
func Points(values []float64, name string, points []float64, terms []string) (*Fuzzifier, *fuzzy.Variable, error) {
	fz, err := PointsFuzzifier(name, points, terms)
	if err != nil {
		return nil, nil, err
	}
	fv, err := fz.FuzzifyFloats(values)
	if err != nil {
		return nil, nil, err
	}
	return fz, fv, nil
}
