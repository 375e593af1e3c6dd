// errors.go declares the error kinds reported when parsing external input.
// Internal board operations never fail: every 64-indexed table access is
// guarded by the Square constructors, and move application assumes moves
// produced by the legal generator.

package bitbishop

import "errors"

var (
	// ErrInvalidSquareIndex reports a flattened square index outside [0, 63].
	ErrInvalidSquareIndex = errors.New("invalid square index")
	// ErrInvalidAlgebraicSquare reports a malformed algebraic square string.
	ErrInvalidAlgebraicSquare = errors.New("invalid algebraic square")
	// ErrInvalidFileRank reports a file or rank coordinate outside [0, 7].
	ErrInvalidFileRank = errors.New("invalid file or rank")
	// ErrInvalidFenPlacement reports a malformed piece placement field.
	ErrInvalidFenPlacement = errors.New("invalid FEN piece placement")
	// ErrInvalidFenField reports a malformed FEN field past the placement.
	ErrInvalidFenField = errors.New("invalid FEN field")
)
