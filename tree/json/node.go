/*
Package json serializes fitted trees as JSON documents and reads them
back.
*/
package json

import (
	"encoding/json"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/tree"
)

/*
NodeEncodeDecoder is an interface for objects
that allow encoding nodes into slices of
bytes and decoding them back to nodes.
*/
type NodeEncodeDecoder interface {

	//Encode receives a *tree.Node
	// and returns a slice of bytes with the node
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Node) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Node decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	//Decoded nodes lack their path, which is
	//rebuilt when they are added to a tree.
	Decode([]byte) (*tree.Node, error)
}

type nodeEncodeDecoder struct{}

type node struct {
	ID        int      `json:"id"`
	ParentID  int      `json:"pId"`
	Branch    string   `json:"branch,omitempty"`
	Attribute string   `json:"attribute,omitempty"`
	Class     string   `json:"class,omitempty"`
	Leaf      bool     `json:"leaf,omitempty"`
	Truth     *float64 `json:"truth"`
}

// NewNodeEncodeDecoder returns a NodeEncodeDecoder that encodes nodes
// as JSON objects. Truth levels that are not numbers are encoded as null.
func NewNodeEncodeDecoder() NodeEncodeDecoder {
	return &nodeEncodeDecoder{}
}

func (ned *nodeEncodeDecoder) Encode(n *tree.Node) ([]byte, error) {
	jn := &node{
		ID:        n.ID,
		ParentID:  n.Parent,
		Branch:    n.Branch,
		Attribute: n.Attribute,
		Class:     n.Class,
		Leaf:      n.Leaf,
	}
	if !math.IsNaN(n.Truth) && !math.IsInf(n.Truth, 0) {
		truth := n.Truth
		jn.Truth = &truth
	}
	data, err := json.Marshal(jn)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding node %s", n.Key())
	}
	return data, nil
}

func (ned *nodeEncodeDecoder) Decode(data []byte) (*tree.Node, error) {
	jn := &node{}
	err := json.Unmarshal(data, jn)
	if err != nil {
		return nil, errors.Wrap(err, "decoding node")
	}
	n := &tree.Node{
		ID:        jn.ID,
		Parent:    jn.ParentID,
		Branch:    jn.Branch,
		Attribute: jn.Attribute,
		Class:     jn.Class,
		Leaf:      jn.Leaf,
		Truth:     math.NaN(),
	}
	if jn.Truth != nil {
		n.Truth = *jn.Truth
	}
	return n, nil
}
