// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or -Inf value where a distance was expected.
	ErrNaNInf = errors.New("matrix: NaN or -Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a stop id has no row in the table.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)
