package fuzzytree

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pbanos/fuzzytree/ambiguity"
	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/queue"
	"github.com/pbanos/fuzzytree/tree"
)

// worstAmbiguity is the score of candidates whose ambiguity cannot be
// computed. Such candidates never split a node.
const worstAmbiguity = 1.0

type grower struct {
	params  Params
	set     *fuzzy.Set
	class   *fuzzy.Variable
	tree    *tree.Tree
	queue   queue.Queue
	logger  *zap.Logger
	workers int
}

/*
Grow takes a context, a fuzzy set, the parameters of the growth and any
number of options and returns the tree grown on the set.

The root tests the LHS attribute with the least classification
ambiguity. Nodes are then developed in breadth-first order: every
branch of a node is either discarded, turned into a leaf or split with
the candidate attribute that most reduces the ambiguity of the node.

Grow returns an error if the parameters are not valid for the set, the
context is cancelled or the queue fails. Numerical degeneracies found
while growing only affect the branches where they happen.
*/
func Grow(ctx context.Context, s *fuzzy.Set, p Params, opts ...Option) (*tree.Tree, error) {
	if err := p.Validate(s); err != nil {
		return nil, err
	}
	g := &grower{params: p, set: s, logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(g)
	}
	if g.queue == nil {
		g.queue = queue.New()
	}
	g.class, _ = s.Variable(p.RHS)
	g.tree = tree.New(p.Alpha, p.Beta, p.LHS, p.RHS, g.class.Terms(), s)

	pending, err := g.queue.Count(ctx)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, errors.Newf("growth queue already holds %d tasks", pending)
	}
	if err = g.seed(ctx); err != nil {
		return nil, err
	}
	for {
		task, err := g.queue.Pull(ctx)
		if err != nil {
			return nil, err
		}
		if task == nil {
			break
		}
		if err = g.branchOut(ctx, task); err != nil {
			return nil, err
		}
	}
	g.logger.Info("tree grown",
		zap.Int("nodes", g.tree.Len()),
		zap.Int("leaves", len(g.tree.Leaves())))
	return g.tree, nil
}

// seed creates the root of the tree and pushes the task to develop it.
func (g *grower) seed(ctx context.Context) error {
	scores, err := g.score(ctx, g.params.LHS, nil)
	if err != nil {
		return err
	}
	best := bestCandidate(scores)
	for i, a := range g.params.LHS {
		g.logger.Debug("root candidate", zap.String("attribute", a), zap.Float64("ambiguity", scores[i]))
	}
	id, err := g.tree.AddRoot(g.params.LHS[best], scores[best])
	if err != nil {
		return err
	}
	return g.queue.Push(ctx, &queue.Task{Node: id})
}

// branchOut develops every branch of the node of the task.
func (g *grower) branchOut(ctx context.Context, task *queue.Task) error {
	n := g.tree.Node(task.Node)
	if n == nil {
		return errors.Wrapf(tree.ErrUnknownNode, "task %s", task.ID())
	}
	v, err := g.set.Variable(n.Attribute)
	if err != nil {
		return err
	}
	for _, term := range v.Memberships() {
		if err = ctx.Err(); err != nil {
			return err
		}
		mu := term
		if task.Membership != nil {
			if mu, err = task.Membership.And(term); err != nil {
				return err
			}
		}
		if err = g.develop(ctx, n, term.Label, mu); err != nil {
			return err
		}
	}
	return nil
}

// develop decides the fate of the branch of node n for a term, given
// the membership mu of the observations to the branch.
func (g *grower) develop(ctx context.Context, n *tree.Node, branch string, mu *fuzzy.Membership) error {
	logger := g.logger.With(zap.String("node", n.Key()), zap.String("branch", branch))
	if mu.Max() < g.params.Alpha {
		logger.Debug("branch discarded: low activation", zap.Float64("activation", mu.Max()))
		return nil
	}
	evidence, err := ambiguity.RawEvidence(g.class, mu)
	if errors.Is(err, fuzzy.ErrDegenerateMass) {
		logger.Debug("branch discarded: degenerate evidence")
		return nil
	}
	if err != nil {
		return err
	}
	class, truth := evidence.Max()
	if !(truth > 0.0) {
		logger.Debug("branch discarded: zero truth")
		return nil
	}
	if truth > g.params.Beta {
		return g.leaf(logger, "leaf", n, branch, class, truth)
	}

	var candidates []string
	for _, a := range g.params.LHS {
		if !n.Uses(a) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return g.leaf(logger, "forced leaf: no candidates", n, branch, class, truth)
	}
	scores, err := g.score(ctx, candidates, mu)
	if err != nil {
		return err
	}
	best := bestCandidate(scores)
	attribute, amb := candidates[best], scores[best]
	logger = logger.With(zap.String("attribute", attribute), zap.Float64("ambiguity", amb))
	switch {
	case amb < n.Truth:
		id, err := g.tree.AddDecision(n.ID, branch, attribute, amb)
		if err != nil {
			return err
		}
		logger.Debug("branch split", zap.Float64("truth", truth))
		return g.queue.Push(ctx, &queue.Task{Node: id, Membership: mu})
	case amb == worstAmbiguity || math.IsNaN(amb):
		logger.Debug("branch abandoned", zap.Float64("truth", truth))
		return nil
	default:
		return g.leaf(logger, "forced leaf: no ambiguity reduction", n, branch, class, truth)
	}
}

func (g *grower) leaf(logger *zap.Logger, msg string, n *tree.Node, branch, class string, truth float64) error {
	if _, err := g.tree.AddLeaf(n.ID, branch, class, truth); err != nil {
		return err
	}
	logger.Debug(msg, zap.String("class", class), zap.Float64("truth", truth))
	return nil
}

/*
score returns the classification ambiguity of every candidate attribute,
given mu if it is not nil. Candidates are scored concurrently by up to
the configured number of workers, each result kept at the index of its
candidate. Degenerate candidates score worstAmbiguity.
*/
func (g *grower) score(ctx context.Context, candidates []string, mu *fuzzy.Membership) ([]float64, error) {
	scores := make([]float64, len(candidates))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.workers, 1))
	for i, a := range candidates {
		i, a := i, a
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := g.set.Variable(a)
			if err != nil {
				return err
			}
			var amb float64
			if mu == nil {
				amb, err = ambiguity.Classification(g.class, v)
			} else {
				amb, err = ambiguity.ClassificationGiven(g.class, v, mu)
			}
			if errors.Is(err, fuzzy.ErrDegenerateMass) {
				amb, err = worstAmbiguity, nil
			}
			scores[i] = amb
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// bestCandidate returns the index of the lowest score, the first one
// in case of ties. NaN scores only win when every score is NaN.
func bestCandidate(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s < scores[best] || (math.IsNaN(scores[best]) && !math.IsNaN(s)) {
			best = i
		}
	}
	return best
}
