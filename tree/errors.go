package tree

// Error represents an error related with the structure of trees or the
// use of trees to classify.
type Error string

/*
ErrCannotPredictFromSample is the error returned when a prediction for
an observation cannot be made because no leaf of the tree applies to
it, as opposed to cases where the observation cannot be read.
*/
const ErrCannotPredictFromSample = Error("no prediction available for this kind of sample")

// ErrUnknownNode is returned when referencing a node a tree does not have.
const ErrUnknownNode = Error("unknown node")

// ErrInvalidStructure is returned when adding nodes that would break
// the structure of a tree, like a second root or children of leaves.
const ErrInvalidStructure = Error("invalid tree structure")

func (e Error) Error() string {
	return string(e)
}
