package tree

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

/*
Confusion is a confusion table over the class terms of a tree.
Counts[p][a] is the number of observations predicted as Terms[p] whose
actual class is Terms[a].
*/
type Confusion struct {
	Terms  []string
	Counts [][]int
}

/*
NewConfusion takes the actual class memberships of a set of observations
and the ones predicted for them and returns their confusion table. The
class of an observation is the term with the highest membership, the
first declared one in case of ties. Both variables must have the same
terms and number of observations.
*/
func NewConfusion(actual, predicted *fuzzy.Variable) (*Confusion, error) {
	terms := predicted.Terms()
	if actual.Len() != predicted.Len() {
		return nil, errors.Wrapf(fuzzy.ErrLengthMismatch, "%d actual and %d predicted observations", actual.Len(), predicted.Len())
	}
	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	for _, term := range actual.Terms() {
		if _, ok := index[term]; !ok {
			return nil, errors.Wrapf(fuzzy.ErrUnknownTerm, "actual class %q is not predicted", term)
		}
	}
	c := &Confusion{Terms: terms, Counts: make([][]int, len(terms))}
	for i := range c.Counts {
		c.Counts[i] = make([]int, len(terms))
	}
	for i := 0; i < actual.Len(); i++ {
		a, _ := actual.Value(i).Max()
		p, _ := predicted.Value(i).Max()
		c.Counts[index[p]][index[a]]++
	}
	return c, nil
}

/*
Confusion takes a fuzzy set with the LHS and RHS attributes of the tree,
classifies it and returns the confusion table of the classification
against the RHS variable of the set.
*/
func (t *Tree) Confusion(s *fuzzy.Set) (*Confusion, error) {
	actual, err := s.Variable(t.RHS)
	if err != nil {
		return nil, err
	}
	predicted, err := t.Classify(s)
	if err != nil {
		return nil, err
	}
	return NewConfusion(actual, predicted)
}

// Count returns the number of observations predicted as the first
// term that actually belong to the second.
func (c *Confusion) Count(predicted, actual string) int {
	p, a := c.indexOf(predicted), c.indexOf(actual)
	if p < 0 || a < 0 {
		return 0
	}
	return c.Counts[p][a]
}

// Total returns the number of observations in the table.
func (c *Confusion) Total() int {
	var result int
	for _, row := range c.Counts {
		for _, n := range row {
			result += n
		}
	}
	return result
}

// Accuracy returns the share of observations whose predicted class is
// their actual class, 0 for empty tables.
func (c *Confusion) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0.0
	}
	var hits int
	for i := range c.Counts {
		hits += c.Counts[i][i]
	}
	return float64(hits) / float64(total)
}

func (c *Confusion) indexOf(term string) int {
	for i, t := range c.Terms {
		if t == term {
			return i
		}
	}
	return -1
}

// String renders the table with a row per predicted class and a column
// per actual class.
func (c *Confusion) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "predicted\\actual\t%s\t\n", strings.Join(c.Terms, "\t"))
	for i, term := range c.Terms {
		counts := make([]string, len(c.Counts[i]))
		for j, n := range c.Counts[i] {
			counts[j] = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(w, "%s\t%s\t\n", term, strings.Join(counts, "\t"))
	}
	w.Flush()
	return b.String()
}
