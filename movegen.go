/*
movegen.go implements fully legal move generation.

The pipeline runs once per position: locate the king, compute the enemy
attack set with the king lifted off the board, collect the checkers,
detect pins, build the check mask, and hand all of it to the per-piece
generators.  The emitted list is exactly the set of legal moves; no
make-and-verify filtering happens afterwards.
*/

package bitbishop

// promotionOrder fixes the emission order of promotion moves.
var promotionOrder = [4]PieceType{Queen, Rook, Bishop, Knight}

/*
checkMask returns the destination constraint for non-king moves.  With no
checker every destination is allowed.  With a single checker a move must
capture it or interpose on the ray between it and the king; for knight and
pawn checkers the between set is empty, leaving capture only.  With a
double check no non-king move helps.
*/
func checkMask(kingSq Square, checkers Bitboard) Bitboard {
	switch checkers.Count() {
	case 0:
		return ^Bitboard(0)
	case 1:
		return between[kingSq][checkers.LSB()] | checkers
	default:
		return 0
	}
}

/*
LegalMoves appends every legal move of the side to move to the given list,
clearing it first.  On a checkmate or stalemate the list stays empty; the
caller distinguishes the two by InCheck.
*/
func (p *Position) LegalMoves(l *MoveList) {
	l.LastMoveIndex = 0

	us := p.state.ActiveColor
	king := p.pieces[WKing+Piece(us)]

	if king == 0 {
		// Test boards without a king: nothing constrains the movers.
		var pn Pins
		mask := ^Bitboard(0)
		genPawnMoves(p, l, us, NoSquare, mask, &pn)
		genKnightMoves(p, l, us, mask, &pn)
		genBishopMoves(p, l, us, mask, &pn)
		genRookMoves(p, l, us, mask, &pn)
		genQueenMoves(p, l, us, mask, &pn)
		return
	}

	kingSq := king.LSB()
	them := us.Other()

	enemyAttacks := p.attackSet(them, p.occupied^king)
	checkers := p.AttackersTo(kingSq, them, p.occupied)

	if checkers.Count() >= 2 {
		// Double check: only the king can move.
		genKingMoves(p, l, us, kingSq, enemyAttacks)
		return
	}

	pn := p.pins(kingSq, us)
	mask := checkMask(kingSq, checkers)

	genPawnMoves(p, l, us, kingSq, mask, &pn)
	genKnightMoves(p, l, us, mask, &pn)
	genBishopMoves(p, l, us, mask, &pn)
	genRookMoves(p, l, us, mask, &pn)
	genQueenMoves(p, l, us, mask, &pn)
	genKingMoves(p, l, us, kingSq, enemyAttacks)

	if checkers == 0 {
		genCastlingMoves(p, l, us, enemyAttacks)
	}
}

// pushPawnMoves emits the move from->to, expanded into the four promotions
// when the destination lies on the promotion rank.
func pushPawnMoves(l *MoveList, from, to Square, capture bool, promoRank Bitboard) {
	if to.Bitboard()&promoRank == 0 {
		l.Push(Move{From: from, To: to, IsCapture: capture})
		return
	}
	for _, promo := range promotionOrder {
		l.Push(Move{From: from, To: to, Promotion: promo, IsCapture: capture})
	}
}

/*
genPawnMoves appends the legal pawn moves: single and double pushes,
captures, promotions, and en passant.

Pushes are blocked by any piece regardless of the check mask; the mask and
the pin ray then decide whether an unblocked destination may be emitted.
The double push additionally needs the transit square empty even when the
single push itself is not playable.
*/
func genPawnMoves(p *Position, l *MoveList, us Color, kingSq Square, mask Bitboard, pn *Pins) {
	them := us.Other()
	enemies := p.colors[them]

	startRank, promoRank := RANK_2, RANK_8
	if us == Black {
		startRank, promoRank = RANK_7, RANK_1
	}

	var ep Bitboard
	if p.state.EPTarget != NoSquare {
		ep = p.state.EPTarget.Bitboard()
	}

	for pawns := p.pieces[WPawn+Piece(us)]; pawns != 0; {
		from := pawns.PopLSB()
		pin := pn.moveMask(from)

		if one := pawnPush[us][from]; one&p.occupied == 0 {
			if to := one & mask & pin; to != 0 {
				pushPawnMoves(l, from, to.LSB(), false, promoRank)
			}

			if from.Bitboard()&startRank != 0 {
				if two := pawnDoublePush[us][from]; two&p.occupied == 0 {
					if to := two & mask & pin; to != 0 {
						l.Push(Move{From: from, To: to.LSB()})
					}
				}
			}
		}

		for caps := pawnAttacks[us][from] & enemies & mask & pin; caps != 0; {
			pushPawnMoves(l, from, caps.PopLSB(), true, promoRank)
		}

		// En passant.  The attack table encodes the geometric
		// reachability; the capture resolves a check either by taking
		// the checking pawn or by interposing on the target square.
		if ep != 0 && pawnAttacks[us][from]&ep != 0 {
			capSq := epCapturedSquare(p.state.EPTarget, us)
			if (ep|capSq.Bitboard())&mask != 0 && ep&pin != 0 &&
				p.epLegal(us, kingSq, from, p.state.EPTarget, capSq) {
				l.Push(Move{
					From:        from,
					To:          p.state.EPTarget,
					IsCapture:   true,
					IsEnPassant: true,
				})
			}
		}
	}
}

/*
epLegal runs the final en passant legality test.  The capture removes two
pawns from the board at once, which can expose the king to a slider the
pin scan cannot see, most notoriously along the shared rank.  The capture
is simulated on a scratch occupancy bitboard; the Position itself is never
mutated.
*/
func (p *Position) epLegal(us Color, kingSq, from, to, capSq Square) bool {
	if kingSq == NoSquare {
		return true
	}

	them := Piece(us.Other())
	occupancy := p.occupied ^ from.Bitboard() ^ capSq.Bitboard() ^ to.Bitboard()

	if bishopAttacks(kingSq, occupancy)&(p.pieces[WBishop+them]|p.pieces[WQueen+them]) != 0 {
		return false
	}
	if rookAttacks(kingSq, occupancy)&(p.pieces[WRook+them]|p.pieces[WQueen+them]) != 0 {
		return false
	}
	return true
}

// genKnightMoves appends the legal knight moves.  A pinned knight never
// moves: no knight destination stays on the ray it is pinned to.
func genKnightMoves(p *Position, l *MoveList, us Color, mask Bitboard, pn *Pins) {
	enemies := p.colors[us.Other()]

	for knights := p.pieces[WKnight+Piece(us)]; knights != 0; {
		from := knights.PopLSB()
		if pn.Pinned.Test(from) {
			continue
		}

		dests := knightAttacks[from] &^ p.colors[us] & mask
		for dests != 0 {
			to := dests.PopLSB()
			l.Push(Move{From: from, To: to, IsCapture: enemies.Test(to)})
		}
	}
}

// pushSliderMoves emits one move per destination bit, respecting the
// check mask and the mover's pin ray.
func pushSliderMoves(p *Position, l *MoveList, us Color, from Square,
	attacks, mask Bitboard, pn *Pins) {

	enemies := p.colors[us.Other()]

	dests := attacks &^ p.colors[us] & mask & pn.moveMask(from)
	for dests != 0 {
		to := dests.PopLSB()
		l.Push(Move{From: from, To: to, IsCapture: enemies.Test(to)})
	}
}

// genBishopMoves appends the legal bishop moves.
func genBishopMoves(p *Position, l *MoveList, us Color, mask Bitboard, pn *Pins) {
	for bb := p.pieces[WBishop+Piece(us)]; bb != 0; {
		from := bb.PopLSB()
		pushSliderMoves(p, l, us, from, bishopAttacks(from, p.occupied), mask, pn)
	}
}

// genRookMoves appends the legal rook moves.
func genRookMoves(p *Position, l *MoveList, us Color, mask Bitboard, pn *Pins) {
	for bb := p.pieces[WRook+Piece(us)]; bb != 0; {
		from := bb.PopLSB()
		pushSliderMoves(p, l, us, from, rookAttacks(from, p.occupied), mask, pn)
	}
}

// genQueenMoves appends the legal queen moves.
func genQueenMoves(p *Position, l *MoveList, us Color, mask Bitboard, pn *Pins) {
	for bb := p.pieces[WQueen+Piece(us)]; bb != 0; {
		from := bb.PopLSB()
		pushSliderMoves(p, l, us, from, queenAttacks(from, p.occupied), mask, pn)
	}
}

// genKingMoves appends the legal king steps.  The check mask does not
// apply to the king; its destinations are vetoed by the enemy attack set,
// which the caller computed with this very king off the board.
func genKingMoves(p *Position, l *MoveList, us Color, kingSq Square, enemyAttacks Bitboard) {
	enemies := p.colors[us.Other()]

	dests := kingAttacks[kingSq] &^ p.colors[us] &^ enemyAttacks
	for dests != 0 {
		to := dests.PopLSB()
		l.Push(Move{From: kingSq, To: to, IsCapture: enemies.Test(to)})
	}
}

// genCastlingMoves appends the available castling moves.  The caller
// guarantees the king is not in check; the path tables rule out castling
// through or into an attacked square, and the rook must still stand on
// its home corner.
func genCastlingMoves(p *Position, l *MoveList, us Color, enemyAttacks Bitboard) {
	if us == White {
		if p.canCastle(0, CastlingWhiteShort, enemyAttacks) && p.pieces[WRook].Test(SH1) {
			l.Push(Move{From: SE1, To: SG1, IsCastling: true})
		}
		if p.canCastle(1, CastlingWhiteLong, enemyAttacks) && p.pieces[WRook].Test(SA1) {
			l.Push(Move{From: SE1, To: SC1, IsCastling: true})
		}
		return
	}

	if p.canCastle(2, CastlingBlackShort, enemyAttacks) && p.pieces[BRook].Test(SH8) {
		l.Push(Move{From: SE8, To: SG8, IsCastling: true})
	}
	if p.canCastle(3, CastlingBlackLong, enemyAttacks) && p.pieces[BRook].Test(SA8) {
		l.Push(Move{From: SE8, To: SC8, IsCastling: true})
	}
}

// IsCheckmate reports whether the side to move has no legal moves while
// in check.
func (p *Position) IsCheckmate() bool {
	var l MoveList
	p.LegalMoves(&l)
	return l.LastMoveIndex == 0 && p.InCheck()
}

// IsStalemate reports whether the side to move has no legal moves without
// being in check.
func (p *Position) IsStalemate() bool {
	var l MoveList
	p.LegalMoves(&l)
	return l.LastMoveIndex == 0 && !p.InCheck()
}
