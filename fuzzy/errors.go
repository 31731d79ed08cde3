package fuzzy

// Error represents one of the kinds of error the fuzzy algebra and the
// packages built on top of it can return. Errors are usually wrapped
// with context, so they should be matched with errors.Is.
type Error string

const (
	// ErrLengthMismatch is returned when operating on memberships or
	// variables that do not have the same number of observations.
	ErrLengthMismatch = Error("membership lengths do not match")

	// ErrDegenerateMass is returned when a computation would divide by
	// a zero sum or maximum of membership degrees.
	ErrDegenerateMass = Error("degenerate membership mass")

	// ErrInvalidOperand is returned when an operation receives a nil or
	// empty operand, or a value of a kind it cannot work with.
	ErrInvalidOperand = Error("invalid operand")

	// ErrDimensionMismatch is returned when the number of parameters
	// of a partition does not match its number of terms.
	ErrDimensionMismatch = Error("dimension mismatch")

	// ErrUnknownAttribute is returned when looking up an attribute
	// that is not part of a set.
	ErrUnknownAttribute = Error("unknown attribute")

	// ErrUnknownTerm is returned when looking up a term that is not
	// part of a variable or value.
	ErrUnknownTerm = Error("unknown term")

	// ErrDuplicateTerm is returned when adding a term to a variable
	// that already has it.
	ErrDuplicateTerm = Error("duplicate term")

	// ErrDuplicateAttribute is returned when adding a variable to a
	// set that already has a variable with the same name.
	ErrDuplicateAttribute = Error("duplicate attribute")
)

func (e Error) Error() string {
	return string(e)
}
