package partition

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

// Kind identifies the shape of a membership function.
type Kind string

const (
	// LeftShoulder is 1 below its first breakpoint, 0 above its second
	// one and decreases linearly in between.
	LeftShoulder Kind = "left-shoulder"
	// RightShoulder is 0 below its first breakpoint, 1 above its
	// second one and increases linearly in between.
	RightShoulder Kind = "right-shoulder"
	// Triangular rises from 0 at its first breakpoint to 1 at the
	// second one and falls back to 0 at the third one.
	Triangular Kind = "triangular"
	// Indicator is 1 for values equal to its category and 0 otherwise.
	Indicator Kind = "indicator"
)

/*
Function is a membership function mapping attribute values to degrees.
Params holds the breakpoints of numeric kinds and Category the category
of indicators.
*/
type Function struct {
	Kind     Kind      `json:"kind"`
	Params   []float64 `json:"params,omitempty"`
	Category string    `json:"category,omitempty"`
}

// NewLeftShoulder returns a LeftShoulder function with the given breakpoints.
func NewLeftShoulder(m1, m2 float64) Function {
	return Function{Kind: LeftShoulder, Params: []float64{m1, m2}}
}

// NewRightShoulder returns a RightShoulder function with the given breakpoints.
func NewRightShoulder(m1, m2 float64) Function {
	return Function{Kind: RightShoulder, Params: []float64{m1, m2}}
}

// NewTriangular returns a Triangular function with the given breakpoints.
func NewTriangular(m1, m2, m3 float64) Function {
	return Function{Kind: Triangular, Params: []float64{m1, m2, m3}}
}

// NewIndicator returns an Indicator function for the given category.
func NewIndicator(category string) Function {
	return Function{Kind: Indicator, Category: category}
}

// Validate returns an error if the function's kind is unknown or its
// number of parameters does not match its kind.
func (f Function) Validate() error {
	want := 0
	switch f.Kind {
	case LeftShoulder, RightShoulder:
		want = 2
	case Triangular:
		want = 3
	case Indicator:
	default:
		return errors.Wrapf(fuzzy.ErrInvalidOperand, "unknown membership function kind %q", f.Kind)
	}
	if len(f.Params) != want {
		return errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s function with %d parameters, expected %d", f.Kind, len(f.Params), want)
	}
	return nil
}

/*
Degree takes a numeric value and returns its degree of membership.
Breakpoints that coincide make the function a step instead of dividing
by zero. Indicators compare the shortest decimal representation of x
with their category. Degree panics if the function is not valid.
*/
func (f Function) Degree(x float64) float64 {
	switch f.Kind {
	case LeftShoulder:
		m1, m2 := f.Params[0], f.Params[1]
		if x < m1 {
			return 1.0
		}
		if x > m2 {
			return 0.0
		}
		if m2 == m1 {
			return 1.0
		}
		return (m2 - x) / (m2 - m1)
	case RightShoulder:
		m1, m2 := f.Params[0], f.Params[1]
		if x < m1 {
			return 0.0
		}
		if x > m2 {
			return 1.0
		}
		if m2 == m1 {
			return 1.0
		}
		return (x - m1) / (m2 - m1)
	case Triangular:
		m1, m2, m3 := f.Params[0], f.Params[1], f.Params[2]
		if x < m1 {
			return 0.0
		}
		if x < m2 {
			return (x - m1) / (m2 - m1)
		}
		if x < m3 {
			return (m3 - x) / (m3 - m2)
		}
		return 0.0
	case Indicator:
		return f.indicate(strconv.FormatFloat(x, 'g', -1, 64))
	}
	panic(errors.Wrapf(fuzzy.ErrInvalidOperand, "unknown membership function kind %q", f.Kind))
}

/*
DegreeOf takes a value of any of the kinds data sets hold and returns its
degree of membership. Missing (nil) values belong to no term. Strings
are compared with the category of indicators and parsed as numbers for
the other kinds.
*/
func (f Function) DegreeOf(value interface{}) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0.0, nil
	case string:
		if f.Kind == Indicator {
			return f.indicate(v), nil
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0.0, errors.Wrapf(fuzzy.ErrInvalidOperand, "%s function on non numeric value %q", f.Kind, v)
		}
		return f.Degree(x), nil
	case float64:
		return f.Degree(v), nil
	case float32:
		return f.Degree(float64(v)), nil
	case int:
		return f.Degree(float64(v)), nil
	case int64:
		return f.Degree(float64(v)), nil
	case bool:
		if f.Kind == Indicator {
			return f.indicate(strconv.FormatBool(v)), nil
		}
	}
	return 0.0, errors.Wrapf(fuzzy.ErrInvalidOperand, "%s function on value %v of type %T", f.Kind, value, value)
}

func (f Function) indicate(s string) float64 {
	if s == f.Category {
		return 1.0
	}
	return 0.0
}
