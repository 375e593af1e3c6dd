package bitbishop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearTest(t *testing.T) {
	var b Bitboard

	assert.False(t, b.Any())

	b.Set(SE4)
	b.Set(SA1)
	b.Set(SH8)

	assert.True(t, b.Test(SE4))
	assert.True(t, b.Test(SA1))
	assert.True(t, b.Test(SH8))
	assert.False(t, b.Test(SE5))
	assert.Equal(t, 3, b.Count())

	b.Clear(SE4)
	assert.False(t, b.Test(SE4))
	assert.Equal(t, 2, b.Count())

	// Clearing an unset square is a no-op.
	b.Clear(SE4)
	assert.Equal(t, 2, b.Count())
}

func TestBitboardLSBMSB(t *testing.T) {
	b := SC3.Bitboard() | SF6.Bitboard() | SH8.Bitboard()

	assert.Equal(t, SC3, b.LSB())
	assert.Equal(t, SH8, b.MSB())

	assert.Equal(t, NoSquare, Bitboard(0).LSB())
	assert.Equal(t, NoSquare, Bitboard(0).MSB())
}

func TestBitboardPopLSB(t *testing.T) {
	b := SC3.Bitboard() | SF6.Bitboard() | SH8.Bitboard()

	assert.Equal(t, SC3, b.PopLSB())
	assert.Equal(t, SF6, b.PopLSB())
	assert.Equal(t, SH8, b.PopLSB())
	assert.False(t, b.Any())
}

func TestBitboardPopMSB(t *testing.T) {
	b := SC3.Bitboard() | SF6.Bitboard() | SH8.Bitboard()

	assert.Equal(t, SH8, b.PopMSB())
	assert.Equal(t, SF6, b.PopMSB())
	assert.Equal(t, SC3, b.PopMSB())
	assert.False(t, b.Any())
}

func TestBitboardSquares(t *testing.T) {
	b := SH8.Bitboard() | SA1.Bitboard() | SE4.Bitboard()

	// Iteration yields squares in ascending bit-index order.
	var squares []Square
	for sq := range b.Squares() {
		squares = append(squares, sq)
	}
	assert.Equal(t, []Square{SA1, SE4, SH8}, squares)

	// The iterated bitboard is left untouched.
	assert.Equal(t, 3, b.Count())

	for range Bitboard(0).Squares() {
		t.Fatal("empty bitboard must yield no squares")
	}
}
