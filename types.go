// types.go contains declarations of the piece and castling-rights types and
// their predefined constants.

package bitbishop

import "fmt"

// PieceType is a piece kind without a color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

/*
Piece is a colored piece.  The constant values double as indices into the
per-piece bitboard array: white pieces are even, black pieces odd, so the
piece of color c and type t has index 2*(t-1)+c.
*/
type Piece uint8

const (
	WPawn Piece = iota
	BPawn
	WKnight
	BKnight
	WBishop
	BBishop
	WRook
	BRook
	WQueen
	BQueen
	WKing
	BKing
	// NoPiece marks an empty square.
	NoPiece
)

// NewPiece builds the piece of the given color and type.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(2*(t-1)) + Piece(c)
}

// Color returns the color of the piece.
func (pc Piece) Color() Color { return Color(pc & 1) }

// Type returns the type of the piece.
func (pc Piece) Type() PieceType {
	if pc == NoPiece {
		return NoPieceType
	}
	return PieceType(pc>>1) + 1
}

// PieceSymbols maps each piece to its FEN symbol.
var PieceSymbols = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b',
	'R', 'r', 'Q', 'q', 'K', 'k',
}

// Symbol returns the FEN symbol of the piece.
func (pc Piece) Symbol() byte { return PieceSymbols[pc] }

// pieceFromSymbol maps a FEN letter to a piece.  Uppercase letters are
// white, lowercase black.
func pieceFromSymbol(symbol byte) (Piece, error) {
	for pc, s := range PieceSymbols {
		if s == symbol {
			return Piece(pc), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: unknown piece symbol %q",
		ErrInvalidFenPlacement, symbol)
}

/*
CastlingRights defines the remaining rights to perform castlings.
  - 0 bit: white king can O-O.
  - 1 bit: white king can O-O-O.
  - 2 bit: black king can O-O.
  - 3 bit: black king can O-O-O.
*/
type CastlingRights uint8

const (
	CastlingWhiteShort CastlingRights = 1 << iota
	CastlingWhiteLong
	CastlingBlackShort
	CastlingBlackLong

	CastlingAll = CastlingWhiteShort | CastlingWhiteLong |
		CastlingBlackShort | CastlingBlackLong
)
