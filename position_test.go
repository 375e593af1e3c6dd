package bitbishop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		move     Move
		expected string
	}{
		{
			"quiet knight move",
			InitialFEN,
			Move{From: SG1, To: SF3},
			"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			"double push sets the en passant target",
			InitialFEN,
			Move{From: SE2, To: SE4},
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			Move{From: SE4, To: SD5, IsCapture: true},
			"rnbqkbnr/ppp1pppp/8/3P4/2B5/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
		},
		{
			"white en passant",
			"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			Move{From: SE5, To: SD6, IsCapture: true, IsEnPassant: true},
			"rnbqkbnr/ppp1pppp/3P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			"black en passant",
			"rnbqkbnr/1ppppp1p/p7/8/5pP1/8/PPPPPP1P/RNBQKBNR b KQkq g3 0 3",
			Move{From: SF4, To: SG3, IsCapture: true, IsEnPassant: true},
			"rnbqkbnr/1ppppp1p/p7/8/8/6p1/PPPPPP1P/RNBQKBNR w KQkq - 0 4",
		},
		{
			"promotion",
			"8/P7/8/7k/8/8/8/7K w - - 0 1",
			Move{From: SA7, To: SA8, Promotion: Queen},
			"Q7/8/8/7k/8/8/8/7K b - - 0 1",
		},
		{
			"capture promotion",
			"1n6/P7/8/7k/8/8/8/7K w - - 0 1",
			Move{From: SA7, To: SB8, Promotion: Knight, IsCapture: true},
			"1N6/8/8/7k/8/8/8/7K b - - 0 1",
		},
		{
			"white O-O",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			Move{From: SE1, To: SG1, IsCastling: true},
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			"black O-O-O",
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
			Move{From: SE8, To: SC8, IsCastling: true},
			"2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
		},
		{
			"rook move drops one right",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			Move{From: SA1, To: SB1},
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
		},
		{
			"rook capture on the corner drops both matching rights",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			Move{From: SA1, To: SA8, IsCapture: true},
			"R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseFEN(tc.fen)
			require.NoError(t, err)

			p.Make(tc.move)
			assert.Equal(t, tc.expected, p.FEN())
		})
	}
}

// Every legal move must unmake back to the exact prior position, board
// state included.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := append([]string{}, referenceFENs...)
	fens = append(fens,
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/1ppppp1p/p7/8/5pP1/8/PPPPPP1P/RNBQKBNR b KQkq g3 0 3",
		"1n6/P7/8/7k/8/8/8/7K w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	)

	for _, fen := range fens {
		p, err := ParseFEN(fen)
		require.NoError(t, err)

		prior := p

		var l MoveList
		p.LegalMoves(&l)

		for _, m := range l.Slice() {
			p.Make(m)
			p.Unmake(m)

			if !p.Equal(&prior) {
				t.Fatalf("%s: %v does not unmake cleanly", fen, m)
			}
		}

		assert.Equal(t, fen, p.FEN())
	}
}

// A full perft traversal must leave the position untouched: Make and
// Unmake pair up at every depth.
func TestUnmakeAcrossDepth(t *testing.T) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	prior := p
	Perft(&p, 3)

	assert.True(t, p.Equal(&prior))
}

func TestPieceAt(t *testing.T) {
	p, err := ParseFEN(InitialFEN)
	require.NoError(t, err)

	assert.Equal(t, WRook, p.PieceAt(SA1))
	assert.Equal(t, WKing, p.PieceAt(SE1))
	assert.Equal(t, BQueen, p.PieceAt(SD8))
	assert.Equal(t, BPawn, p.PieceAt(SE7))
	assert.Equal(t, NoPiece, p.PieceAt(SE4))
}

func TestOccupancyInvariants(t *testing.T) {
	for _, fen := range referenceFENs {
		p, err := ParseFEN(fen)
		require.NoError(t, err)

		var union Bitboard
		for pc := WPawn; pc <= BKing; pc++ {
			if union&p.Pieces(pc) != 0 {
				t.Fatalf("%s: piece bitboards overlap", fen)
			}
			union |= p.Pieces(pc)
		}

		assert.Equal(t, union, p.Occupied(), fen)
		assert.Equal(t, union, p.ByColor(White)|p.ByColor(Black), fen)
		assert.Equal(t, Bitboard(0), p.ByColor(White)&p.ByColor(Black), fen)
		assert.Equal(t, 1, p.Pieces(WKing).Count(), fen)
		assert.Equal(t, 1, p.Pieces(BKing).Count(), fen)
	}
}

func TestHalfmoveClock(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/4P3/R3K3 w Q - 7 40")
	require.NoError(t, err)

	// A rook move increments the clock.
	p.Make(Move{From: SA1, To: SA8})
	assert.Equal(t, 8, p.State().HalfmoveCnt)
	p.Unmake(Move{From: SA1, To: SA8})

	// A pawn move resets it.
	p.Make(Move{From: SE2, To: SE4})
	assert.Equal(t, 0, p.State().HalfmoveCnt)
}
