package tree

import (
	"fmt"
	"strings"
)

/*
Rule represents the conjunctive rule a leaf of a tree stands for: if an
observation meets every condition, it belongs to the class with the
given truth level.
*/
type Rule struct {
	Conditions []Condition
	RHS        string
	Class      string
	Truth      float64
}

func (r Rule) String() string {
	conditions := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = fmt.Sprintf("(%s==%s)", c.Attribute, c.Term)
	}
	return fmt.Sprintf("IF %s THEN (%s==%s): %f", strings.Join(conditions, " AND "), r.RHS, r.Class, r.Truth)
}

// Rules is a list of rules, printed one per line.
type Rules []Rule

func (rs Rules) String() string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Rules returns a rule per leaf of the tree, in the order leaves were
// created.
func (t *Tree) Rules() Rules {
	leaves := t.Leaves()
	result := make(Rules, len(leaves))
	for i, leaf := range leaves {
		result[i] = Rule{
			Conditions: leaf.Conditions(),
			RHS:        t.RHS,
			Class:      leaf.Class,
			Truth:      leaf.Truth,
		}
	}
	return result
}
