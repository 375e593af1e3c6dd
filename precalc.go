/*
precalc.go contains declarations of the precomputed lookup tables and the
board-geometry constants the move generator relies on.

Every table is a pure function of the board geometry: none of them depend
on position state, and all of them are immutable after package
initialization.
*/

package bitbishop

// The following block of constants defines the bitmasks needed to
// calculate possible moves by performing bitwise operations on a bitboard.
const (
	NOT_A_FILE  Bitboard = 0xFEFEFEFEFEFEFEFE // All files except the A.
	NOT_H_FILE  Bitboard = 0x7F7F7F7F7F7F7F7F // All files except the H.
	NOT_AB_FILE Bitboard = 0xFCFCFCFCFCFCFCFC // All files except the A and B.
	NOT_GH_FILE Bitboard = 0x3F3F3F3F3F3F3F3F // All files except the G and H.

	RANK_1 Bitboard = 0x00000000000000FF
	RANK_2 Bitboard = 0x000000000000FF00
	RANK_7 Bitboard = 0x00FF000000000000
	RANK_8 Bitboard = 0xFF00000000000000
)

// Ray directions.  The positive directions grow the square index, so the
// nearest blocker along them is the LSB of the masked occupancy; the
// negative ones shrink it, so the nearest blocker is the MSB.
const (
	dirN = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var (
	dirFileSteps = [8]int{0, 0, 1, -1, 1, -1, 1, -1}
	dirRankSteps = [8]int{1, -1, 0, 0, 1, 1, -1, -1}
	dirPositive  = [8]bool{true, false, true, false, true, true, false, false}

	orthogonalDirs = [4]int{dirN, dirS, dirE, dirW}
	diagonalDirs   = [4]int{dirNE, dirNW, dirSE, dirSW}
)

// Precalculated attack and geometry tables used to speed up the move
// generation process.
var (
	// Pawn movement depends on the color, so the pawn tables are stored
	// per side.  The attack tables hold only the forward-capturing
	// diagonals, never the push squares; the push tables never include
	// captures.
	pawnAttacks    = initPawnAttacks()
	pawnPush       = initPawnPush()
	pawnDoublePush = initPawnDoublePush()

	knightAttacks = initKnightAttacks()
	kingAttacks   = initKingAttacks()

	// rays[dir][sq] holds all squares strictly past sq in that direction.
	rays = initRays()
	// between[a][b] holds the squares strictly between two aligned
	// squares and is empty when a and b share no rank, file, or diagonal.
	between = initBetween()
)

/*
Castling path tables, indexed white short, white long, black short, black
long.  castlingPath lists the squares between king and rook that must be
empty; castlingAttackPath lists the king's transit and destination squares
that must not be attacked.  The queenside B-file square appears only in the
former: the king never crosses it.
*/
var (
	castlingPath = [4]Bitboard{
		SF1.Bitboard() | SG1.Bitboard(),
		SB1.Bitboard() | SC1.Bitboard() | SD1.Bitboard(),
		SF8.Bitboard() | SG8.Bitboard(),
		SB8.Bitboard() | SC8.Bitboard() | SD8.Bitboard(),
	}
	castlingAttackPath = [4]Bitboard{
		SF1.Bitboard() | SG1.Bitboard(),
		SC1.Bitboard() | SD1.Bitboard(),
		SF8.Bitboard() | SG8.Bitboard(),
		SC8.Bitboard() | SD8.Bitboard(),
	}
)
