package projective

import "errors"

var (
	// ErrNotSupported reports an operand kind or a problem shape that an
	// operation cannot handle.
	ErrNotSupported = errors.New("projective: operation not supported for this operand")

	// ErrInvalidShape reports a tensor or matrix whose dimensions do not
	// match what a constructor expects.
	ErrInvalidShape = errors.New("projective: invalid tensor or matrix shape")

	// ErrInvalidConfiguration reports input geometry that violates a
	// constructor's preconditions, such as a tangent line passing through
	// one of the construction points.
	ErrInvalidConfiguration = errors.New("projective: invalid configuration of input elements")

	// ErrNotDegenerate reports an attempt to decompose a quadric whose
	// matrix is not singular.
	ErrNotDegenerate = errors.New("projective: quadric is not degenerate")

	// ErrDegenerate reports an operation that needs an invertible matrix,
	// such as taking the dual of a degenerate quadric.
	ErrDegenerate = errors.New("projective: quadric is degenerate")
)
