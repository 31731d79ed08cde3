package partition

import (
	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
)

// CrispFuzzifier returns a fuzzifier with one indicator term per category.
func CrispFuzzifier(name string, categories []string) (*Fuzzifier, error) {
	if len(categories) == 0 {
		return nil, errors.Wrapf(fuzzy.ErrDimensionMismatch, "%s has no categories", name)
	}
	seen := make(map[string]bool)
	functions := make([]Function, len(categories))
	for i, c := range categories {
		if seen[c] {
			return nil, errors.Wrapf(fuzzy.ErrDuplicateTerm, "%s:%s", name, c)
		}
		seen[c] = true
		functions[i] = NewIndicator(c)
	}
	return NewFuzzifier(name, categories, functions)
}

/*
Crisp takes the values of a categorical attribute, its name and its
categories and returns a fuzzifier with a term per category, along with
the variable in which every observation fully belongs to the term of its
category and not at all to the rest.
*/
func Crisp(values []string, name string, categories []string) (*Fuzzifier, *fuzzy.Variable, error) {
	fz, err := CrispFuzzifier(name, categories)
	if err != nil {
		return nil, nil, err
	}
	raw := make([]interface{}, len(values))
	for i, v := range values {
		raw[i] = v
	}
	fv, err := fz.Fuzzify(raw)
	if err != nil {
		return nil, nil, err
	}
	return fz, fv, nil
}
