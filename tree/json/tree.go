package json

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/tree"
)

/*
TreeEncodeDecoder is an interface for objects that allow encoding whole
trees into slices of bytes and decoding them back to trees. Stores
outside the process memory use it to keep trees.
*/
type TreeEncodeDecoder interface {
	Encode(context.Context, *tree.Tree) ([]byte, error)
	Decode(context.Context, []byte) (*tree.Tree, error)
}

type treeEncodeDecoder struct {
	ned NodeEncodeDecoder
}

// New returns a TreeEncodeDecoder that encodes trees as JSON with the
// given NodeEncodeDecoder.
func New(ned NodeEncodeDecoder) TreeEncodeDecoder {
	return &treeEncodeDecoder{ned}
}

func (ted *treeEncodeDecoder) Encode(ctx context.Context, t *tree.Tree) ([]byte, error) {
	b := &bytes.Buffer{}
	if err := WriteJSONTree(ctx, t, ted.ned, b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (ted *treeEncodeDecoder) Decode(ctx context.Context, data []byte) (*tree.Tree, error) {
	return ReadJSONTree(ctx, ted.ned, bytes.NewReader(data))
}

type header struct {
	Alpha      float64  `json:"alpha"`
	Beta       float64  `json:"beta"`
	LHS        []string `json:"lhs"`
	RHS        string   `json:"rhs"`
	ClassTerms []string `json:"classTerms"`
}

/*
WriteJSONTree takes a context.Context, a pointer to a tree.Tree
a NodeEncodeDecoder and an io.Writer and serializes the given tree
as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:

  - "alpha" and "beta": the thresholds the tree was grown with
  - "lhs": an array with the names of the candidate attributes
  - "rhs": a string with the name of the attribute the tree classifies
  - "classTerms": an array with the terms of the rhs attribute
  - "nodes": an array containing the nodes of the tree in traversal order
    serialized by the given NodeEncodeDecoder.

An error is returned if the tree cannot be traversed, serialized or written
onto the io.Writer.
*/
func WriteJSONTree(ctx context.Context, t *tree.Tree, ned NodeEncodeDecoder, w io.Writer) error {
	err := marshalJSONTreeHeader(t, w)
	if err != nil {
		return err
	}
	var i int
	err = t.Traverse(ctx, false, func(ctx context.Context, n *tree.Node) error {
		err := writeNode(i, n, ned, w)
		i++
		return err
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(`]}`))
	return errors.Wrap(err, "writing tree")
}

/*
ReadJSONTree takes a context.Context, a NodeEncodeDecoder and an
io.Reader and returns the tree serialized as JSON on the io.Reader, as
WriteJSONTree writes it. Trees read have no fitting set.
An error is returned if the JSON cannot be read from the io.Reader or
its nodes do not make up a tree.
*/
func ReadJSONTree(ctx context.Context, ned NodeEncodeDecoder, r io.Reader) (*tree.Tree, error) {
	jt := &struct {
		header
		Nodes []json.RawMessage `json:"nodes"`
	}{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, errors.Wrap(err, "decoding tree")
	}
	nodes := make([]*tree.Node, 0, len(jt.Nodes))
	for _, jn := range jt.Nodes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		n, err := ned.Decode(jn)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	t := tree.New(jt.Alpha, jt.Beta, jt.LHS, jt.RHS, jt.ClassTerms, nil)
	for i, n := range nodes {
		if n.ID != i {
			return nil, errors.Wrapf(tree.ErrInvalidStructure, "expected node %d, found %d", i, n.ID)
		}
		switch {
		case i == 0:
			_, err = t.AddRoot(n.Attribute, n.Truth)
		case n.Leaf:
			_, err = t.AddLeaf(n.Parent, n.Branch, n.Class, n.Truth)
		default:
			_, err = t.AddDecision(n.Parent, n.Branch, n.Attribute, n.Truth)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decoding node %d", n.ID)
		}
	}
	return t, nil
}

func marshalJSONTreeHeader(t *tree.Tree, w io.Writer) error {
	h, err := json.Marshal(&header{t.Alpha, t.Beta, t.LHS, t.RHS, t.ClassTerms})
	if err != nil {
		return errors.Wrap(err, "encoding tree header")
	}
	// reopen the header object to append the nodes array
	_, err = fmt.Fprintf(w, `%s,"nodes":[`, h[:len(h)-1])
	return errors.Wrap(err, "writing tree")
}

func writeNode(i int, n *tree.Node, ned NodeEncodeDecoder, w io.Writer) error {
	if i != 0 {
		_, err := w.Write([]byte(","))
		if err != nil {
			return errors.Wrap(err, "writing tree")
		}
	}
	jn, err := ned.Encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return errors.Wrap(err, "writing tree")
}
