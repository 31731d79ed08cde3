/*
Package partition provides the membership functions and partitioning
strategies that turn raw attribute values into fuzzy variables.
*/
package partition

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pbanos/fuzzytree/dataset"
	"github.com/pbanos/fuzzytree/fuzzy"
)

// Strategy names a way of building the fuzzifier of an attribute.
type Strategy string

const (
	// StrategyCrisp builds an indicator term per category.
	StrategyCrisp Strategy = "crisp"
	// StrategyPoints builds a fixed points partition from given
	// breakpoints.
	StrategyPoints Strategy = "points"
	// StrategyPercentile builds a fixed points partition from the
	// percentiles of the data.
	StrategyPercentile Strategy = "percentile"
	// StrategyOptimize builds the fixed points partition that minimizes
	// the classification ambiguity of the class.
	StrategyOptimize Strategy = "optimize"
)

/*
Spec describes how to fuzzify an attribute: its name, the partitioning
strategy, its terms (categories for crisp attributes) and, for the
points strategy, one breakpoint per term.
*/
type Spec struct {
	Name     string    `yaml:"name" json:"name"`
	Strategy Strategy  `yaml:"partition" json:"partition"`
	Terms    []string  `yaml:"terms" json:"terms"`
	Points   []float64 `yaml:"points,omitempty" json:"points,omitempty"`
}

// Validate returns an error if the spec is incomplete or inconsistent.
func (s Spec) Validate() error {
	if s.Name == "" {
		return errors.Wrap(fuzzy.ErrInvalidOperand, "attribute without a name")
	}
	switch s.Strategy {
	case StrategyCrisp:
		if len(s.Terms) == 0 {
			return errors.Wrapf(fuzzy.ErrDimensionMismatch, "crisp attribute %s without categories", s.Name)
		}
	case StrategyPoints:
		if len(s.Points) != len(s.Terms) {
			return errors.Wrapf(fuzzy.ErrDimensionMismatch, "attribute %s has %d terms and %d points", s.Name, len(s.Terms), len(s.Points))
		}
		fallthrough
	case StrategyPercentile, StrategyOptimize:
		if len(s.Terms) < 2 {
			return errors.Wrapf(fuzzy.ErrDimensionMismatch, "attribute %s needs at least two terms", s.Name)
		}
	default:
		return errors.Wrapf(fuzzy.ErrInvalidOperand, "attribute %s has unknown partition %q", s.Name, s.Strategy)
	}
	return nil
}

// Field returns the dataset field the attribute is read into.
func (s Spec) Field() dataset.Field {
	return dataset.Field{Name: s.Name, Categorical: s.Strategy == StrategyCrisp}
}

// Fields returns the dataset fields of a list of specs.
func Fields(specs []Spec) []dataset.Field {
	result := make([]dataset.Field, len(specs))
	for i, s := range specs {
		result[i] = s.Field()
	}
	return result
}

// Fuzzifiers is an ordered collection of fuzzifiers, one per attribute.
type Fuzzifiers []*Fuzzifier

// Get takes an attribute name and returns its fuzzifier.
func (fzs Fuzzifiers) Get(name string) (*Fuzzifier, bool) {
	for _, fz := range fzs {
		if fz.Name == name {
			return fz, true
		}
	}
	return nil, false
}

/*
Apply takes a table and returns the fuzzy set obtained fuzzifying its
columns with the fuzzifiers, in fuzzifier order.
*/
func (fzs Fuzzifiers) Apply(t *dataset.Table) (*fuzzy.Set, error) {
	s, err := fuzzy.NewSet()
	if err != nil {
		return nil, err
	}
	for _, fz := range fzs {
		column, err := t.Column(fz.Name)
		if err != nil {
			return nil, err
		}
		fv, err := fz.Fuzzify(column)
		if err != nil {
			return nil, err
		}
		if err = s.Add(fv); err != nil {
			return nil, err
		}
	}
	return s, nil
}

/*
Specs returns the specs that rebuild every fuzzifier without data, in
order. Percentile and optimized attributes are described by the points
they ended up with.
*/
func (fzs Fuzzifiers) Specs() ([]Spec, error) {
	result := make([]Spec, len(fzs))
	for i, fz := range fzs {
		s, err := fz.Spec()
		if err != nil {
			return nil, err
		}
		result[i] = s
	}
	return result, nil
}

/*
Build takes a table, the specs of its attributes and the name of the
class attribute and returns the fuzzy set of the table along with the
fuzzifiers of every attribute, both in spec order.

The class is fuzzified first so optimized partitions can use it, and
cannot be optimized itself. Optimized partitions are searched with the
given options.
*/
func Build(t *dataset.Table, specs []Spec, class string, opts ...OptimizeOption) (*fuzzy.Set, Fuzzifiers, error) {
	var classSpec *Spec
	for i := range specs {
		if err := specs[i].Validate(); err != nil {
			return nil, nil, err
		}
		if specs[i].Name == class {
			classSpec = &specs[i]
		}
	}
	if classSpec == nil {
		return nil, nil, errors.Wrapf(fuzzy.ErrUnknownAttribute, "class %q has no spec", class)
	}
	if classSpec.Strategy == StrategyOptimize {
		return nil, nil, errors.Wrapf(fuzzy.ErrInvalidOperand, "class %s cannot have an optimized partition", class)
	}
	config := &optimizeConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o(config)
	}
	classFz, classFv, err := fuzzify(t, *classSpec, nil, opts)
	if err != nil {
		return nil, nil, err
	}
	s, err := fuzzy.NewSet()
	if err != nil {
		return nil, nil, err
	}
	fzs := make(Fuzzifiers, 0, len(specs))
	for _, spec := range specs {
		fz, fv := classFz, classFv
		if spec.Name != class {
			fz, fv, err = fuzzify(t, spec, classFv, opts)
			if err != nil {
				return nil, nil, err
			}
		}
		if err = s.Add(fv); err != nil {
			return nil, nil, err
		}
		fzs = append(fzs, fz)
		config.logger.Debug("fuzzified attribute",
			zap.String("attribute", spec.Name),
			zap.String("partition", string(spec.Strategy)),
			zap.Strings("terms", fz.Terms),
		)
	}
	return s, fzs, nil
}

func fuzzify(t *dataset.Table, spec Spec, class *fuzzy.Variable, opts []OptimizeOption) (*Fuzzifier, *fuzzy.Variable, error) {
	switch spec.Strategy {
	case StrategyCrisp:
		values, err := t.Strings(spec.Name)
		if err != nil {
			return nil, nil, err
		}
		return Crisp(values, spec.Name, spec.Terms)
	case StrategyPoints:
		fz, err := PointsFuzzifier(spec.Name, spec.Points, spec.Terms)
		if err != nil {
			return nil, nil, err
		}
		column, err := t.Column(spec.Name)
		if err != nil {
			return nil, nil, err
		}
		fv, err := fz.Fuzzify(column)
		if err != nil {
			return nil, nil, err
		}
		return fz, fv, nil
	}
	values, err := t.Floats(spec.Name)
	if err != nil {
		return nil, nil, err
	}
	if spec.Strategy == StrategyPercentile {
		return Percentile(values, spec.Name, spec.Terms)
	}
	return Optimize(class, values, spec.Name, spec.Terms, opts...)
}

/*
FromSpecs takes the specs of some attributes and returns their
fuzzifiers, in spec order. Only crisp and points specs can be turned
into fuzzifiers without data, like those returned by Fuzzifiers.Specs;
other strategies get an ErrInvalidOperand error.
*/
func FromSpecs(specs []Spec) (Fuzzifiers, error) {
	result := make(Fuzzifiers, 0, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		var fz *Fuzzifier
		var err error
		switch spec.Strategy {
		case StrategyCrisp:
			fz, err = CrispFuzzifier(spec.Name, spec.Terms)
		case StrategyPoints:
			fz, err = PointsFuzzifier(spec.Name, spec.Points, spec.Terms)
		default:
			err = errors.Wrapf(fuzzy.ErrInvalidOperand, "attribute %s needs data to build a %s partition", spec.Name, spec.Strategy)
		}
		if err != nil {
			return nil, err
		}
		result = append(result, fz)
	}
	return result, nil
}
