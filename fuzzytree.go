/*
Package fuzzytree grows fuzzy decision trees from fuzzy sets, choosing
at every node the attribute whose terms leave the least ambiguity about
the class of the observations reaching it.
*/
package fuzzytree

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/queue"
)

// Error represents an error related with the growth of trees.
type Error string

// ErrInvalidParams is returned when growing a tree with parameters
// that do not suit the set it is grown on.
const ErrInvalidParams = Error("invalid tree parameters")

func (e Error) Error() string {
	return string(e)
}

/*
Params holds the configuration of the growth of a tree.
*/
type Params struct {
	// Alpha is the minimum membership an observation must have to a
	// branch for the branch to be developed, in [0, 1].
	Alpha float64
	// Beta is the truth level above which a branch becomes a leaf,
	// in (0, 1].
	Beta float64
	// LHS are the attributes the tree may test, in the order ties
	// between them are resolved.
	LHS []string
	// RHS is the class attribute.
	RHS string
}

/*
Validate takes the fuzzy set a tree is to be grown on and returns an
ErrInvalidParams error if the thresholds are out of range, LHS is empty,
repeats attributes or contains RHS, and a fuzzy.ErrUnknownAttribute one
if any attribute is missing from the set.
*/
func (p Params) Validate(s *fuzzy.Set) error {
	if !(p.Beta > 0.0 && p.Beta <= 1.0) {
		return errors.Wrapf(ErrInvalidParams, "beta %v out of (0, 1]", p.Beta)
	}
	if !(p.Alpha >= 0.0 && p.Alpha <= 1.0) {
		return errors.Wrapf(ErrInvalidParams, "alpha %v out of [0, 1]", p.Alpha)
	}
	if len(p.LHS) == 0 {
		return errors.Wrap(ErrInvalidParams, "no LHS attributes")
	}
	if s == nil {
		return errors.Wrap(fuzzy.ErrInvalidOperand, "nil fuzzy set")
	}
	seen := make(map[string]bool, len(p.LHS))
	for _, a := range p.LHS {
		if a == p.RHS {
			return errors.Wrapf(ErrInvalidParams, "class attribute %s among LHS attributes", a)
		}
		if seen[a] {
			return errors.Wrapf(ErrInvalidParams, "LHS attribute %s repeated", a)
		}
		seen[a] = true
		if _, err := s.Variable(a); err != nil {
			return err
		}
	}
	class, err := s.Variable(p.RHS)
	if err != nil {
		return err
	}
	if len(class.Terms()) == 0 {
		return errors.Wrapf(ErrInvalidParams, "class attribute %s has no terms", p.RHS)
	}
	return nil
}

// Option configures the growth of a tree.
type Option func(*grower)

// WithLogger sets the logger growth events are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(g *grower) {
		if logger != nil {
			g.logger = logger
		}
	}
}

/*
WithWorkers sets the number of goroutines scoring candidate attributes
concurrently. Values below 2 score them serially. Trees grown are the
same regardless of the number of workers.
*/
func WithWorkers(n int) Option {
	return func(g *grower) {
		g.workers = n
	}
}

/*
WithQueue sets the queue holding the nodes pending development. It must
be empty when growth starts and must not be shared with other growths
while it goes on. The default is an in-memory queue.
*/
func WithQueue(q queue.Queue) Option {
	return func(g *grower) {
		if q != nil {
			g.queue = q
		}
	}
}
