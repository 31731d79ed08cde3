package main

import (
	"fmt"

	"github.com/pbanos/fuzzytree/partition"
	"github.com/pbanos/fuzzytree/partition/yaml"
)

/*
fittedFuzzifiers reads the metadata at path, as written by grow with the
--fitted flag, and returns the specs and fuzzifiers of the named
attributes, in the given order.
*/
func fittedFuzzifiers(path string, names ...string) ([]partition.Spec, partition.Fuzzifiers, error) {
	specs, err := yaml.ReadSpecsFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	selected := make([]partition.Spec, 0, len(names))
	for _, name := range names {
		found := false
		for _, s := range specs {
			if s.Name == name {
				selected = append(selected, s)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("attribute %q is not described in %s", name, path)
		}
	}
	fzs, err := partition.FromSpecs(selected)
	if err != nil {
		return nil, nil, fmt.Errorf("building fuzzifiers from %s: %v", path, err)
	}
	return selected, fzs, nil
}
