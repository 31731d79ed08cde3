/*
Package json encodes queue tasks as JSON documents, so they can be kept
by queues outside the process memory.
*/
package json

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/queue"
)

// TaskEncodeDecoder turns tasks into the byte slices queues outside the
// process memory keep, and back.
type TaskEncodeDecoder interface {
	// Encode returns the task encoded, or an error if it cannot be.
	Encode(context.Context, *queue.Task) ([]byte, error)
	// Decode returns the task encoded in data, or an error if data
	// does not hold one.
	Decode(ctx context.Context, data []byte) (*queue.Task, error)
}

type jsonEncodeDecoder struct{}

type jsonMembership struct {
	Attribute string    `json:"attribute"`
	Label     string    `json:"label"`
	Values    []float64 `json:"values"`
}

type jsonTask struct {
	Node       int             `json:"node"`
	Membership *jsonMembership `json:"mu,omitempty"`
}

// New returns a TaskEncodeDecoder encoding tasks as JSON.
func New() TaskEncodeDecoder {
	return &jsonEncodeDecoder{}
}

func (jed *jsonEncodeDecoder) Encode(ctx context.Context, t *queue.Task) ([]byte, error) {
	jt := &jsonTask{Node: t.Node}
	if t.Membership != nil {
		jt.Membership = &jsonMembership{t.Membership.Attribute, t.Membership.Label, t.Membership.Values}
	}
	data, err := json.Marshal(jt)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding task %s as json", t.ID())
	}
	return data, nil
}

func (jed *jsonEncodeDecoder) Decode(ctx context.Context, data []byte) (*queue.Task, error) {
	jt := &jsonTask{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, errors.Wrap(err, "decoding task from json")
	}
	t := &queue.Task{Node: jt.Node}
	if jt.Membership != nil {
		t.Membership = fuzzy.NewMembership(jt.Membership.Attribute, jt.Membership.Label, jt.Membership.Values)
	}
	return t, nil
}
