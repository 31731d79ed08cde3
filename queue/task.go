package queue

import (
	"fmt"
	"strconv"

	"github.com/pbanos/fuzzytree/fuzzy"
)

// Task represents a tree node to be developed.
type Task struct {
	// The index of the node to be developed in its tree
	Node int
	// The membership of the observations to the path leading
	// to the node, nil for the root.
	Membership *fuzzy.Membership
}

// ID returns a string that identifies the
// task, the index of its Node.
func (t *Task) ID() string {
	return strconv.Itoa(t.Node)
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %d}", t.Node)
}
