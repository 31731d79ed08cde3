/*
Package inputsample reads the raw values of a single observation from an
io.Reader, asking for them one at a time.
*/
package inputsample

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/dataset"
)

/*
ValueRequester represents a way to ask for the values of fields and to
reject the given values. Categories lists the values accepted for
categorical fields, all of them when empty.
*/
type ValueRequester interface {
	RequestValueFor(f dataset.Field, categories []string) error
	RejectValueFor(f dataset.Field, categories []string, value string) error
}

/*
Sample represents an observation whose values are read from a reader.
A value is requested with a ValueRequester before reading it, and values
already obtained are not requested again.
*/
type Sample struct {
	obtainedValues map[string]interface{}
	undefinedValue string
	scanner        *bufio.Scanner
	requester      ValueRequester
}

/*
New takes an io.Reader, a ValueRequester and an undefinedValue coding
string and returns a Sample reading its values from the reader.

Each value is expected on its own line. A line holding the
undefinedValue string is taken as an undefined value. Lines are read
until one holds a valid value for the field: a number for numeric
fields, one of the categories for categorical ones. Every line not
accepted is rejected with the requester's RejectValueFor method.
*/
func New(r io.Reader, requester ValueRequester, undefinedValue string) *Sample {
	return &Sample{
		obtainedValues: make(map[string]interface{}),
		undefinedValue: undefinedValue,
		scanner:        bufio.NewScanner(r),
		requester:      requester,
	}
}

/*
ValueFor takes a context, a field and the categories accepted for it and
returns the value of the observation for the field, nil if undefined.
An error is returned if the context is done, the requester fails or the
reader runs out of lines before a valid value is given.
*/
func (s *Sample) ValueFor(ctx context.Context, f dataset.Field, categories []string) (interface{}, error) {
	if value, ok := s.obtainedValues[f.Name]; ok {
		return value, nil
	}
	if err := s.requester.RequestValueFor(f, categories); err != nil {
		return nil, err
	}
	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == s.undefinedValue {
			s.obtainedValues[f.Name] = nil
			return nil, nil
		}
		value, err := f.ParseValue(line)
		if err == nil && value != nil && accepts(categories, value) {
			s.obtainedValues[f.Name] = value
			return value, nil
		}
		if err = s.requester.RejectValueFor(f, categories, line); err != nil {
			return nil, err
		}
	}
	if err := s.scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading value for %s", f.Name)
	}
	return nil, errors.Newf("EOF when requesting value for %s", f.Name)
}

// Values returns the values obtained so far, by field name.
func (s *Sample) Values() map[string]interface{} {
	result := make(map[string]interface{}, len(s.obtainedValues))
	for k, v := range s.obtainedValues {
		result[k] = v
	}
	return result
}

func accepts(categories []string, value interface{}) bool {
	category, ok := value.(string)
	if !ok || len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
