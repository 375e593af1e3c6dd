/*
bitboard.go implements the 64-bit set-of-squares representation.  Bit i set
means the square with index i is occupied.

None of the operations allocate; iteration costs O(popcount).
*/

package bitbishop

import (
	"iter"
	"math/bits"
)

// Bitboard is a set of squares packed into a 64-bit unsigned integer.
type Bitboard uint64

// Test reports whether sq is a member of the set.
func (b Bitboard) Test(sq Square) bool { return b&sq.Bitboard() != 0 }

// Set adds sq to the set.
func (b *Bitboard) Set(sq Square) { *b |= sq.Bitboard() }

// Clear removes sq from the set.
func (b *Bitboard) Clear(sq Square) { *b &^= sq.Bitboard() }

// Any reports whether at least one square is set.
func (b Bitboard) Any() bool { return b != 0 }

// Count returns the number of set squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare if the set is empty.
func (b Bitboard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// MSB returns the highest set square, or NoSquare if the set is empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square.
// The caller must ensure the set is not empty.
func (b *Bitboard) PopLSB() Square {
	lsb := b.LSB()
	*b &= *b - 1
	return lsb
}

// PopMSB removes and returns the highest set square.
// The caller must ensure the set is not empty.
func (b *Bitboard) PopMSB() Square {
	msb := b.MSB()
	*b &^= msb.Bitboard()
	return msb
}

// Squares yields the set squares in ascending bit-index order.
func (b Bitboard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for bb := b; bb != 0; {
			if !yield(bb.PopLSB()) {
				return
			}
		}
	}
}
