/*
pins.go detects absolutely pinned pieces.

A piece is pinned when it is the only piece between its own king and an
enemy slider compatible with the ray: rook or queen on orthogonal rays,
bishop or queen on diagonal ones.  A pinned piece may still move along the
pin ray, so the result records a per-square movement mask rather than a
simple yes/no.
*/

package bitbishop

// Pins holds the pinned pieces of one side and, for every pinned square,
// the set of squares the piece may still move to: from the king
// (exclusive) through the pinned piece to the pinner (inclusive).
// Ray[sq] is meaningful only for squares set in Pinned.
type Pins struct {
	Pinned Bitboard
	Ray    [64]Bitboard
}

// moveMask returns the movement constraint for the piece on sq: its pin
// ray when pinned, all ones otherwise.
func (pn *Pins) moveMask(sq Square) Bitboard {
	if pn.Pinned.Test(sq) {
		return pn.Ray[sq]
	}
	return ^Bitboard(0)
}

/*
pins scans the eight ray directions outward from the king square.  On each
ray, the nearest blocker is either absent (no pin), an enemy piece (a
checker or an unrelated piece, never recorded here), or a friendly piece;
in the last case the piece is pinned iff the next blocker along the same
ray is a compatible enemy slider.  Two friendly pieces in a row shield
each other, producing no pin.
*/
func (p *Position) pins(kingSq Square, us Color) (pn Pins) {
	them := Piece(us.Other())

	for dir := 0; dir < 8; dir++ {
		var sliders Bitboard
		if dir == dirN || dir == dirS || dir == dirE || dir == dirW {
			sliders = p.pieces[WRook+them] | p.pieces[WQueen+them]
		} else {
			sliders = p.pieces[WBishop+them] | p.pieces[WQueen+them]
		}

		blockers := rays[dir][kingSq] & p.occupied
		if blockers == 0 {
			continue
		}

		var nearest Square
		if dirPositive[dir] {
			nearest = blockers.LSB()
		} else {
			nearest = blockers.MSB()
		}
		if !p.colors[us].Test(nearest) {
			continue
		}

		rest := rays[dir][nearest] & p.occupied
		if rest == 0 {
			continue
		}

		var pinner Square
		if dirPositive[dir] {
			pinner = rest.LSB()
		} else {
			pinner = rest.MSB()
		}
		if !sliders.Test(pinner) {
			continue
		}

		pn.Pinned.Set(nearest)
		pn.Ray[nearest] = between[kingSq][pinner] | pinner.Bitboard()
	}

	return pn
}
