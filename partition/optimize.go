package partition

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/pbanos/fuzzytree/ambiguity"
	"github.com/pbanos/fuzzytree/fuzzy"
)

const (
	minFraction = 0.1
	maxFraction = 0.9

	// DefaultMaxEvaluations is the default limit of objective evaluations
	// of the optimized partition search.
	DefaultMaxEvaluations = 2000
)

// OptimizeOption configures the search of an optimized partition.
type OptimizeOption func(*optimizeConfig)

type optimizeConfig struct {
	initial        []float64
	maxEvaluations int
	logger         *zap.Logger
}

/*
WithInitialFractions sets the starting point of the search: one fraction
per term, each one the share of the remaining range at which its
breakpoint is placed. Fractions are clamped into the open (0.1, 0.9)
interval.
*/
func WithInitialFractions(fractions []float64) OptimizeOption {
	return func(c *optimizeConfig) {
		c.initial = append([]float64(nil), fractions...)
	}
}

// WithMaxEvaluations limits the number of evaluations of the objective.
func WithMaxEvaluations(n int) OptimizeOption {
	return func(c *optimizeConfig) {
		c.maxEvaluations = n
	}
}

// WithLogger sets the logger the search reports its progress to.
func WithLogger(logger *zap.Logger) OptimizeOption {
	return func(c *optimizeConfig) {
		c.logger = logger
	}
}

/*
Optimize takes the class variable, the values of a numeric attribute,
its name and its terms and returns the fixed points fuzzifier that
minimizes the classification ambiguity of the class by the attribute,
along with the variable obtained fuzzifying the values with it.

Breakpoints are chained: each one is placed at a fraction in [0.1, 0.9]
of the range left between the previous breakpoint (initially the
minimum value) and the maximum value. The search starts from evenly
spaced breakpoints unless WithInitialFractions is given and runs a
Nelder-Mead simplex over the fractions. Candidates whose ambiguity
cannot be computed score 1. The best candidate evaluated is returned.

It returns an ErrDegenerateMass error for attributes with a single
distinct value. Each breakpoint may leave as little as a tenth of the
range to the next one, so float64 precision limits the number of terms
to 14 over a range [0, x]. An ErrDimensionMismatch error is returned
when some chain of fractions would place two breakpoints at the same
float64.
*/
func Optimize(class *fuzzy.Variable, values []float64, name string, terms []string, opts ...OptimizeOption) (*Fuzzifier, *fuzzy.Variable, error) {
	if class == nil {
		return nil, nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "optimized partition of %s without a class", name)
	}
	if len(values) == 0 {
		return nil, nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "optimized partition of %s without values", name)
	}
	if len(values) != class.Len() {
		return nil, nil, errors.Wrapf(fuzzy.ErrLengthMismatch, "%s has %d values and class %s %d", name, len(values), class.Name(), class.Len())
	}
	if len(terms) < 2 {
		return nil, nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s needs at least two terms, got %d", name, len(terms))
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if !(hi > lo) {
		return nil, nil, errors.Wrapf(fuzzy.ErrDegenerateMass, "%s is constant", name)
	}
	n := len(terms)
	if !chainable(lo, hi, n) {
		return nil, nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%d breakpoints of %s cannot be told apart within [%g, %g]", n, name, lo, hi)
	}
	config := &optimizeConfig{maxEvaluations: DefaultMaxEvaluations, logger: zap.NewNop()}
	for _, o := range opts {
		o(config)
	}
	if config.initial == nil {
		config.initial = make([]float64, n)
		for c := range config.initial {
			config.initial[c] = 1.0 / float64(n+1-c)
		}
	}
	if len(config.initial) != n {
		return nil, nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s has %d terms and %d initial fractions", name, n, len(config.initial))
	}

	s := &search{
		class:  class,
		values: values,
		name:   name,
		terms:  terms,
		lo:     lo,
		hi:     hi,
		best:   math.Inf(1),
		logger: config.logger,
	}
	z0 := make([]float64, n)
	for c, f := range config.initial {
		z0[c] = logit(clampFraction(f))
	}
	s.evaluate(z0)

	problem := optimize.Problem{Func: s.evaluate}
	settings := &optimize.Settings{
		FuncEvaluations: config.maxEvaluations,
		Converger:       &optimize.FunctionConverge{Absolute: 1e-10, Iterations: 100},
	}
	result, err := optimize.Minimize(problem, z0, settings, &optimize.NelderMead{SimplexSize: 0.5})
	if err != nil {
		s.logger.Debug("partition search stopped", zap.String("attribute", name), zap.Error(err))
	} else {
		s.logger.Debug("partition search finished",
			zap.String("attribute", name),
			zap.Any("status", result.Status),
			zap.Int("evaluations", result.Stats.FuncEvaluations),
		)
	}

	points := s.bestPoints()
	s.logger.Debug("optimized partition",
		zap.String("attribute", name),
		zap.Float64s("points", points),
		zap.Float64("ambiguity", s.best),
	)
	return Points(values, name, points, terms)
}

type search struct {
	class  *fuzzy.Variable
	values []float64
	name   string
	terms  []string
	lo, hi float64
	logger *zap.Logger

	mu    sync.Mutex
	best  float64
	bestZ []float64
}

func (s *search) evaluate(z []float64) float64 {
	points := breakpoints(s.lo, s.hi, fractions(z))
	a := s.score(points)
	s.mu.Lock()
	defer s.mu.Unlock()
	if a < s.best {
		s.best = a
		s.bestZ = append([]float64(nil), z...)
	}
	return a
}

func (s *search) score(points []float64) float64 {
	fz, err := PointsFuzzifier(s.name, points, s.terms)
	if err != nil {
		return 1.0
	}
	fv, err := fz.FuzzifyFloats(s.values)
	if err != nil {
		return 1.0
	}
	a, err := ambiguity.Classification(s.class, fv)
	if err != nil || math.IsNaN(a) {
		return 1.0
	}
	return a
}

func (s *search) bestPoints() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return breakpoints(s.lo, s.hi, fractions(s.bestZ))
}

/*
breakpoints places every breakpoint at its fraction of the range left
between the previous breakpoint, initially lo, and hi.
*/
func breakpoints(lo, hi float64, shares []float64) []float64 {
	result := make([]float64, len(shares))
	mini, d := lo, hi-lo
	for c, f := range shares {
		result[c] = d*f + mini
		d = hi - result[c]
		mini = result[c]
	}
	return result
}

/*
chainable returns whether n chained breakpoints within [lo, hi] stay
strictly increasing for any fractions. The smallest gap between two
breakpoints is that of a chain at maxFraction ending at minFraction, and
it must exceed the rounding error of placing breakpoints near hi.
*/
func chainable(lo, hi float64, n int) bool {
	gap := (hi - lo) * minFraction * math.Pow(1.0-maxFraction, float64(n-1))
	m := math.Max(math.Abs(lo), math.Abs(hi))
	ulp := math.Nextafter(m, math.Inf(1)) - m
	return gap > 16*ulp
}

// fractions maps unconstrained search coordinates into the bounds of
// the fractions.
func fractions(z []float64) []float64 {
	result := make([]float64, len(z))
	for i, v := range z {
		result[i] = minFraction + (maxFraction-minFraction)/(1.0+math.Exp(-v))
	}
	return result
}

func logit(f float64) float64 {
	u := (f - minFraction) / (maxFraction - minFraction)
	return math.Log(u / (1.0 - u))
}

func clampFraction(f float64) float64 {
	const margin = 1e-6
	return math.Min(math.Max(f, minFraction+margin), maxFraction-margin)
}
