package partition

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Percentile takes the values of a numeric attribute, its name and its
terms and returns a fixed points fuzzifier whose breakpoints are the
values splitting the data into equally populated groups: for n terms,
the k/(n+1) percentiles for k from 1 to n, with linear interpolation.

When two breakpoints coincide the second term is dropped and the
breakpoints recomputed, as long as more than two terms remain. With two
terms left, the minimum and maximum values are used as breakpoints.
Callers must use the terms of the returned fuzzifier, which may be fewer
than the ones given. The given slice of terms is not modified.
*/
func Percentile(values []float64, name string, terms []string) (*Fuzzifier, *fuzzy.Variable, error) {
	if len(values) == 0 {
		return nil, nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "percentile partition of %s without values", name)
	}
	if len(terms) < 2 {
		return nil, nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s needs at least two terms, got %d", name, len(terms))
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	terms = append([]string(nil), terms...)
	var points []float64
	for {
		points = cutPoints(sorted, len(terms))
		if minDiff(points) != 0 {
			break
		}
		if len(terms) > 2 {
			terms = append(terms[:1], terms[2:]...)
			continue
		}
		points = []float64{sorted[0], sorted[len(sorted)-1]}
		break
	}
	return Points(values, name, points, terms)
}

func cutPoints(sorted []float64, n int) []float64 {
	result := make([]float64, n)
	for k := 1; k <= n; k++ {
		result[k-1] = quantile(sorted, float64(k)/float64(n+1))
	}
	return result
}

// quantile returns the q-th quantile of sorted values interpolating
// linearly between the closest ranks.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := math.Floor(pos)
	hi := math.Ceil(pos)
	a, b := sorted[int(lo)], sorted[int(hi)]
	return a + (b-a)*(pos-lo)
}

func minDiff(points []float64) float64 {
	result := math.Inf(1)
	for i := 1; i < len(points); i++ {
		if d := points[i] - points[i-1]; d < result {
			result = d
		}
	}
	return result
}
