// move.go defines the Move record and the fixed-capacity MoveList the
// generators append to.

package bitbishop

import "strings"

/*
Move describes a single chess move.  Equality is structural over all six
fields.  Promotion is NoPieceType unless the move promotes, in which case it
holds the promoted-to type (never Pawn or King).
*/
type Move struct {
	From        Square
	To          Square
	Promotion   PieceType
	IsCapture   bool
	IsEnPassant bool
	IsCastling  bool
}

// String returns the move in long algebraic notation.
//
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
func (m Move) String() string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(m.From.String())
	b.WriteString(m.To.String())

	switch m.Promotion {
	case Knight:
		b.WriteByte('n')
	case Bishop:
		b.WriteByte('b')
	case Rook:
		b.WriteByte('r')
	case Queen:
		b.WriteByte('q')
	}

	return b.String()
}

/*
MoveList is used to store moves.  The main idea behind it is to preallocate
an array with enough capacity to store all possible moves and avoid dynamic
memory allocations.  No legal chess position exceeds 218 moves, so 256
slots are always enough.
*/
type MoveList struct {
	Moves [256]Move
	// To keep track of the next move index.
	LastMoveIndex byte
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.LastMoveIndex] = m
	l.LastMoveIndex++
}

// Slice returns the filled portion of the move list.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.LastMoveIndex]
}
