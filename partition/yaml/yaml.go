/*
Package yaml provides methods to parse partition.Spec lists, also known
as metadata, from YAML documents and to write them back.
*/
package yaml

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/pbanos/fuzzytree/partition"
)

type metadata struct {
	Attributes []partition.Spec `yaml:"attributes"`
}

/*
ReadSpecs takes a slice of bytes with attribute specifications in YAML
and returns the specs parsed from it or an error.

The YAML is expected to be an object with an attributes property holding
a list of objects, each one with the name of the attribute, its
partition (one of crisp, points, percentile or optimize), its terms and,
for points partitions, one breakpoint per term:

	attributes:
	- name: Outlook
	  partition: crisp
	  terms: [Sunny, Overcast, Rain]
	- name: Temperature
	  partition: points
	  terms: [Cold, Mild, Hot]
	  points: [10, 20, 30]

Every spec is validated.
*/
func ReadSpecs(md []byte) ([]partition.Spec, error) {
	m := &metadata{}
	err := yaml.Unmarshal(md, m)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml attributes")
	}
	if len(m.Attributes) == 0 {
		return nil, errors.New("metadata has no attribute information")
	}
	seen := make(map[string]bool)
	for _, s := range m.Attributes {
		if err = s.Validate(); err != nil {
			return nil, err
		}
		if seen[s.Name] {
			return nil, errors.Newf("attribute %s is declared twice", s.Name)
		}
		seen[s.Name] = true
	}
	return m.Attributes, nil
}

/*
ReadSpecsFromFile takes a filepath string, reads its contents and uses
ReadSpecs to parse it and return the specs or an error.
*/
func ReadSpecsFromFile(filepath string) ([]partition.Spec, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading attributes yml file %s", filepath)
	}
	specs, err := ReadSpecs(md)
	if err != nil {
		err = errors.Wrapf(err, "parsing attributes yml file %s", filepath)
	}
	return specs, err
}

/*
WriteSpecs takes an io.Writer and a list of specs and writes them as a
YAML document ReadSpecs can parse.
*/
func WriteSpecs(w io.Writer, specs []partition.Spec) error {
	out, err := yaml.Marshal(&metadata{specs})
	if err != nil {
		return errors.Wrap(err, "encoding attributes yml")
	}
	_, err = w.Write(out)
	return err
}

/*
WriteSpecsToFile is like WriteSpecs but the document is written to the
file at the given path, which is created or truncated.
*/
func WriteSpecsToFile(filepath string, specs []partition.Spec) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "creating attributes yml file %s", filepath)
	}
	err = WriteSpecs(f, specs)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
