/*
attack.go implements the attack queries: sliding-piece attacks via classical
ray scans, the attackers-to-a-square computation, and the full attacked
set of one side.
*/

package bitbishop

// slidingAttacks scans the four given ray directions from sq.  For every
// direction the attacked set runs up to and including the nearest blocker,
// or to the board edge when the ray is empty.
func slidingAttacks(sq Square, occupancy Bitboard, dirs [4]int) (attacks Bitboard) {
	for _, dir := range dirs {
		ray := rays[dir][sq]

		blockers := ray & occupancy
		if blockers == 0 {
			attacks |= ray
			continue
		}

		var blocker Square
		if dirPositive[dir] {
			blocker = blockers.LSB()
		} else {
			blocker = blockers.MSB()
		}
		attacks |= ray ^ rays[dir][blocker]
	}

	return attacks
}

// bishopAttacks returns a bitboard of squares attacked by a bishop on sq.
// The resulting bitboard includes the occupied blocker squares.
func bishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	return slidingAttacks(sq, occupancy, diagonalDirs)
}

// rookAttacks returns a bitboard of squares attacked by a rook on sq.
// The resulting bitboard includes the occupied blocker squares.
func rookAttacks(sq Square, occupancy Bitboard) Bitboard {
	return slidingAttacks(sq, occupancy, orthogonalDirs)
}

// queenAttacks returns a bitboard of squares attacked by a queen on sq.
func queenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return slidingAttacks(sq, occupancy, diagonalDirs) |
		slidingAttacks(sq, occupancy, orthogonalDirs)
}

// genPawnAttacks returns the squares attacked by all pawns on the given
// bitboard simultaneously.  To get attacks for a single pawn, use the
// pawnAttacks lookup table.
func genPawnAttacks(pawns Bitboard, c Color) Bitboard {
	if c == White {
		return pawns&NOT_A_FILE<<7 | pawns&NOT_H_FILE<<9
	}
	// Handle black pawns.
	return pawns&NOT_A_FILE>>9 | pawns&NOT_H_FILE>>7
}

// genKnightAttacks returns the squares attacked by all knights on the given
// bitboard simultaneously.  To get attacks for a single knight, use the
// knightAttacks lookup table.
func genKnightAttacks(knights Bitboard) Bitboard {
	return knights&NOT_A_FILE>>17 |
		knights&NOT_H_FILE>>15 |
		knights&NOT_AB_FILE>>10 |
		knights&NOT_GH_FILE>>6 |
		knights&NOT_AB_FILE<<6 |
		knights&NOT_GH_FILE<<10 |
		knights&NOT_A_FILE<<15 |
		knights&NOT_H_FILE<<17
}

/*
AttackersTo returns the pieces of the given color that attack sq under the
given occupancy.  The occupancy is a parameter so that callers can query
hypothetical boards, e.g. the en passant legality test.
*/
func (p *Position) AttackersTo(sq Square, by Color, occupancy Bitboard) Bitboard {
	c := Piece(by)

	return pawnAttacks[by.Other()][sq]&p.pieces[WPawn+c] |
		knightAttacks[sq]&p.pieces[WKnight+c] |
		kingAttacks[sq]&p.pieces[WKing+c] |
		bishopAttacks(sq, occupancy)&(p.pieces[WBishop+c]|p.pieces[WQueen+c]) |
		rookAttacks(sq, occupancy)&(p.pieces[WRook+c]|p.pieces[WQueen+c])
}

/*
attackSet generates the bitboard of all squares attacked by the pieces of
the given color.  The main purpose of this function is to produce the set
of squares the enemy king is forbidden to move to.

NOTE: For that purpose the moving side's king must be excluded from the
occupancy before the call.  Otherwise the king blocks the very slider ray
it is trying to retreat along and appears able to step out of check onto a
still-attacked square.
*/
func (p *Position) attackSet(by Color, occupancy Bitboard) Bitboard {
	c := Piece(by)

	attacks := genPawnAttacks(p.pieces[WPawn+c], by) |
		genKnightAttacks(p.pieces[WKnight+c])

	if king := p.pieces[WKing+c]; king != 0 {
		attacks |= kingAttacks[king.LSB()]
	}

	for bb := p.pieces[WBishop+c] | p.pieces[WQueen+c]; bb != 0; {
		attacks |= bishopAttacks(bb.PopLSB(), occupancy)
	}
	for bb := p.pieces[WRook+c] | p.pieces[WQueen+c]; bb != 0; {
		attacks |= rookAttacks(bb.PopLSB(), occupancy)
	}

	return attacks
}

// Checkers returns the enemy pieces currently attacking the king of the
// side to move.  The result is empty unless the mover is in check; more
// than two checkers is impossible in legal chess.
func (p *Position) Checkers() Bitboard {
	us := p.state.ActiveColor

	king := p.pieces[WKing+Piece(us)]
	if king == 0 {
		return 0
	}
	return p.AttackersTo(king.LSB(), us.Other(), p.occupied)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Checkers() != 0
}
