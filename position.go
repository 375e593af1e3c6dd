/*
position.go defines the Position structure and its methods for chessboard
state management, including reversible move application.
*/

package bitbishop

import "strings"

// BoardState holds the non-placement part of a position: whose turn it is,
// the castling rights, the en passant target (NoSquare when absent), and
// the move clocks.
type BoardState struct {
	ActiveColor    Color
	CastlingRights CastlingRights
	EPTarget       Square
	HalfmoveCnt    int
	FullmoveCnt    int
}

// undoInfo captures what Make cannot recompute: the captured piece with
// its square (for en passant that square differs from the destination) and
// the full prior BoardState.  Everything else is reversed from the move
// itself.
type undoInfo struct {
	captured   Piece
	capturedSq Square
	prev       BoardState
}

/*
Position represents a chessboard state.  It holds one bitboard per piece,
the redundant per-color and total occupancies, the BoardState, and the
undo stack driven by Make and Unmake.

The piece bitboards are pairwise disjoint, and the occupancies equal their
unions at all times.
*/
type Position struct {
	pieces   [12]Bitboard
	colors   [2]Bitboard
	occupied Bitboard
	state    BoardState
	history  []undoInfo
}

// State returns the current board state.
func (p *Position) State() BoardState { return p.state }

// SideToMove returns the color that moves next.
func (p *Position) SideToMove() Color { return p.state.ActiveColor }

// Occupied returns the set of all occupied squares.
func (p *Position) Occupied() Bitboard { return p.occupied }

// Pieces returns the bitboard of the given piece.
func (p *Position) Pieces(pc Piece) Bitboard { return p.pieces[pc] }

// ByColor returns the occupancy of one side.
func (p *Position) ByColor(c Color) Bitboard { return p.colors[c] }

// KingSquare returns the square of the given side's king, or NoSquare if
// the board has none (tolerated only in test setups).
func (p *Position) KingSquare(c Color) Square {
	king := p.pieces[WKing+Piece(c)]
	if king == 0 {
		return NoSquare
	}
	return king.LSB()
}

// PieceAt returns the piece that stands on the given square, or NoPiece
// if the square is empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := sq.Bitboard()
	if p.occupied&bb == 0 {
		return NoPiece
	}
	for pc := WPawn; pc <= BKing; pc++ {
		if p.pieces[pc]&bb != 0 {
			return pc
		}
	}
	return NoPiece
}

// Equal reports whether two positions hold the same placement and board
// state.  The undo histories are irrelevant and ignored.
func (p *Position) Equal(o *Position) bool {
	return p.pieces == o.pieces &&
		p.colors == o.colors &&
		p.occupied == o.occupied &&
		p.state == o.state
}

// placePiece places the piece on the specified square as well as updates
// the occupancy bitboards.
func (p *Position) placePiece(pc Piece, sq Square) {
	bb := sq.Bitboard()
	p.pieces[pc] |= bb
	p.colors[pc.Color()] |= bb
	p.occupied |= bb
}

// removePiece removes the piece from the specified square as well as
// updates the occupancy bitboards.
func (p *Position) removePiece(pc Piece, sq Square) {
	bb := sq.Bitboard()
	p.pieces[pc] &^= bb
	p.colors[pc.Color()] &^= bb
	p.occupied &^= bb
}

func (p *Position) movePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.placePiece(pc, to)
}

// epCapturedSquare returns the square of the pawn captured en passant:
// one rank behind the target from the capturer's point of view.
func epCapturedSquare(ep Square, us Color) Square {
	if us == White {
		return ep - 8
	}
	return ep + 8
}

/*
Make applies the move and pushes an undo record onto the history stack.
The move must have been produced by the legal generator for this position;
behavior on foreign moves is undefined.
*/
func (p *Position) Make(m Move) {
	us := p.state.ActiveColor
	moved := p.PieceAt(m.From)

	u := undoInfo{captured: NoPiece, capturedSq: NoSquare, prev: p.state}
	if m.IsEnPassant {
		u.capturedSq = epCapturedSquare(m.To, us)
		u.captured = WPawn + Piece(us.Other())
	} else if m.IsCapture {
		u.capturedSq = m.To
		u.captured = p.PieceAt(m.To)
	}

	// The halfmove clock counts moves since the last irreversible one.
	if moved.Type() == Pawn || m.IsCapture {
		p.state.HalfmoveCnt = 0
	} else {
		p.state.HalfmoveCnt++
	}

	if u.captured != NoPiece {
		p.removePiece(u.captured, u.capturedSq)
	}

	p.removePiece(moved, m.From)
	if m.Promotion != NoPieceType {
		p.placePiece(NewPiece(us, m.Promotion), m.To)
	} else {
		p.placePiece(moved, m.To)
	}

	if m.IsCastling {
		// Update the rook position.
		switch m.To {
		case SG1: // White O-O.
			p.movePiece(WRook, SH1, SF1)
		case SC1: // White O-O-O.
			p.movePiece(WRook, SA1, SD1)
		case SG8: // Black O-O.
			p.movePiece(BRook, SH8, SF8)
		case SC8: // Black O-O-O.
			p.movePiece(BRook, SA8, SD8)
		}
	}

	// The en passant capture is only legal for one move.
	p.state.EPTarget = NoSquare
	if moved.Type() == Pawn {
		switch int(m.To) - int(m.From) {
		case 16:
			p.state.EPTarget = m.From + 8
		case -16:
			p.state.EPTarget = m.From - 8
		}
	}

	switch moved {
	// The king cannot castle after it has moved.
	case WKing:
		p.state.CastlingRights &^= CastlingWhiteShort | CastlingWhiteLong
	case BKing:
		p.state.CastlingRights &^= CastlingBlackShort | CastlingBlackLong
	// The king cannot castle with a rook that has already moved.
	case WRook:
		switch m.From {
		case SA1:
			p.state.CastlingRights &^= CastlingWhiteLong
		case SH1:
			p.state.CastlingRights &^= CastlingWhiteShort
		}
	case BRook:
		switch m.From {
		case SA8:
			p.state.CastlingRights &^= CastlingBlackLong
		case SH8:
			p.state.CastlingRights &^= CastlingBlackShort
		}
	}

	// A rook captured on its home corner takes the matching right with it.
	switch {
	case u.captured == WRook && u.capturedSq == SA1:
		p.state.CastlingRights &^= CastlingWhiteLong
	case u.captured == WRook && u.capturedSq == SH1:
		p.state.CastlingRights &^= CastlingWhiteShort
	case u.captured == BRook && u.capturedSq == SA8:
		p.state.CastlingRights &^= CastlingBlackLong
	case u.captured == BRook && u.capturedSq == SH8:
		p.state.CastlingRights &^= CastlingBlackShort
	}

	p.state.ActiveColor = us.Other()
	if p.state.ActiveColor == White {
		p.state.FullmoveCnt++
	}

	p.history = append(p.history, u)
}

/*
Unmake reverts the most recent Make.  It must be called with the same move
that was made; afterwards the position is bit-for-bit identical to the one
before the Make, board state included.
*/
func (p *Position) Unmake(m Move) {
	u := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	us := u.prev.ActiveColor

	if m.Promotion != NoPieceType {
		// The promoted piece reverts to the pawn it came from.
		p.removePiece(NewPiece(us, m.Promotion), m.To)
		p.placePiece(WPawn+Piece(us), m.From)
	} else {
		moved := p.PieceAt(m.To)
		p.movePiece(moved, m.To, m.From)
	}

	if m.IsCastling {
		switch m.To {
		case SG1:
			p.movePiece(WRook, SF1, SH1)
		case SC1:
			p.movePiece(WRook, SD1, SA1)
		case SG8:
			p.movePiece(BRook, SF8, SH8)
		case SC8:
			p.movePiece(BRook, SD8, SA8)
		}
	}

	if u.captured != NoPiece {
		p.placePiece(u.captured, u.capturedSq)
	}

	p.state = u.prev
}

/*
canCastle checks the board conditions of one castling: the right is still
held, the squares between king and rook are empty, and the king's transit
and destination squares are not attacked.  side indexes the castling
tables: 0 white O-O, 1 white O-O-O, 2 black O-O, 3 black O-O-O.

Being in check is ruled out by the caller, which only generates castling
moves when the checker set is empty.
*/
func (p *Position) canCastle(side int, right CastlingRights, attacks Bitboard) bool {
	return p.state.CastlingRights&right != 0 &&
		p.occupied&castlingPath[side] == 0 &&
		attacks&castlingAttackPath[side] == 0
}

// String formats the position as a rank-by-rank diagram followed by the
// board state, for debugging output.
func (p *Position) String() string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte('1' + byte(rank))
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			pc := p.PieceAt(Square(rank*8 + file))

			symbol := byte('.')
			if pc != NoPiece {
				symbol = pc.Symbol()
			}

			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Active color: ")
	b.WriteString(p.state.ActiveColor.String())

	b.WriteString("\nEn passant: ")
	b.WriteString(p.state.EPTarget.String())

	b.WriteString("\nCastling rights: ")
	if p.state.CastlingRights == 0 {
		b.WriteByte('-')
	}
	if p.state.CastlingRights&CastlingWhiteShort != 0 {
		b.WriteByte('K')
	}
	if p.state.CastlingRights&CastlingWhiteLong != 0 {
		b.WriteByte('Q')
	}
	if p.state.CastlingRights&CastlingBlackShort != 0 {
		b.WriteByte('k')
	}
	if p.state.CastlingRights&CastlingBlackLong != 0 {
		b.WriteByte('q')
	}

	return b.String()
}
