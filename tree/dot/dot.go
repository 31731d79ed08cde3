/*
Package dot writes trees as graphviz digraphs.
*/
package dot

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/pbanos/fuzzytree/tree"
)

/*
Write takes a context, an io.Writer and a tree and writes the tree onto
the writer as a graphviz digraph:

	digraph G {
	"Humidity" [label="Humidity"]
	"Humidity"->"Humidity:High;Outlook" [label="High"]
	...
	}

Nodes are identified by their keys and labelled with their names, and
edges are labelled with the term of their branch. Nodes are written in
depth-first order, every edge right before the node it leads to.
*/
func Write(ctx context.Context, w io.Writer, t *tree.Tree) error {
	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return errors.Wrap(err, "writing dot graph")
	}
	err := t.Traverse(ctx, false, func(ctx context.Context, n *tree.Node) error {
		if p := t.Node(n.Parent); p != nil {
			if _, err := fmt.Fprintf(w, "%q->%q [label=%q]\n", p.Key(), n.Key(), n.Branch); err != nil {
				return errors.Wrap(err, "writing dot graph")
			}
		}
		_, err := fmt.Fprintf(w, "%q [label=%q]\n", n.Key(), n.Name())
		return errors.Wrap(err, "writing dot graph")
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return errors.Wrap(err, "writing dot graph")
}
