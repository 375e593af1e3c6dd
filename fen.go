/*
fen.go implements conversions between Forsyth-Edwards Notation strings and
Positions.

Each FEN string consists of six whitespace-separated fields:
 1. Piece placement, rank 8 down to rank 1, ranks separated by "/".
 2. Active color: "w" or "b".
 3. Castling rights: any subset of "KQkq", or "-" for none.
 4. En passant target square in algebraic notation, or "-".
 5. Halfmove clock (non-negative integer).
 6. Fullmove number (positive integer).
*/

package bitbishop

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN encodes the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses the given FEN string into a Position.
func ParseFEN(fen string) (Position, error) {
	var p Position

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, fmt.Errorf("%w: expected 6 fields, got %d",
			ErrInvalidFenField, len(fields))
	}

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.state.ActiveColor = White
	case "b":
		p.state.ActiveColor = Black
	default:
		return Position{}, fmt.Errorf("%w: active color %q",
			ErrInvalidFenField, fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.state.CastlingRights |= CastlingWhiteShort
			case 'Q':
				p.state.CastlingRights |= CastlingWhiteLong
			case 'k':
				p.state.CastlingRights |= CastlingBlackShort
			case 'q':
				p.state.CastlingRights |= CastlingBlackLong
			default:
				return Position{}, fmt.Errorf("%w: castling rights %q",
					ErrInvalidFenField, fields[2])
			}
		}
	}

	p.state.EPTarget = NoSquare
	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: en passant target %q",
				ErrInvalidFenField, fields[3])
		}
		p.state.EPTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, fmt.Errorf("%w: halfmove clock %q",
			ErrInvalidFenField, fields[4])
	}
	p.state.HalfmoveCnt = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, fmt.Errorf("%w: fullmove number %q",
			ErrInvalidFenField, fields[5])
	}
	p.state.FullmoveCnt = fullmove

	return p, nil
}

// parsePlacement fills the piece bitboards from the first FEN field.
// A side may have at most one king; positions without kings are accepted
// for test setups.
func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d",
			ErrInvalidFenPlacement, len(ranks))
	}

	// Piece placement data describes each rank beginning from the eighth.
	for i, rank := range ranks {
		file := 0

		for j := 0; j < len(rank); j++ {
			char := rank[j]

			if char >= '1' && char <= '8' {
				file += int(char - '0')
				continue
			}

			pc, err := pieceFromSymbol(char)
			if err != nil {
				return err
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %q overflows the board",
					ErrInvalidFenPlacement, rank)
			}

			p.placePiece(pc, Square((7-i)*8+file))
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %q describes %d files",
				ErrInvalidFenPlacement, rank, file)
		}
	}

	if p.pieces[WKing].Count() > 1 || p.pieces[BKing].Count() > 1 {
		return fmt.Errorf("%w: more than one king per side",
			ErrInvalidFenPlacement)
	}

	return nil
}

// FEN serializes the position back into a FEN string.
func (p *Position) FEN() string {
	var fen strings.Builder
	fen.Grow(64)

	// 1 field: piece placement.
	for rank := 7; rank >= 0; rank-- {
		empty := 0

		for file := 0; file < 8; file++ {
			pc := p.PieceAt(Square(rank*8 + file))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteByte('0' + byte(empty))
				empty = 0
			}
			fen.WriteByte(pc.Symbol())
		}

		if empty > 0 {
			fen.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			fen.WriteByte('/')
		}
	}

	// 2 field: active color.
	if p.state.ActiveColor == White {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	// 3 field: castling rights.
	if p.state.CastlingRights == 0 {
		fen.WriteByte('-')
	}
	if p.state.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
	}
	if p.state.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
	}
	if p.state.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
	}
	if p.state.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
	}

	// 4 field: en passant target square.
	fen.WriteByte(' ')
	fen.WriteString(p.state.EPTarget.String())

	// 5 and 6 fields: the move clocks.
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.state.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.state.FullmoveCnt))

	return fen.String()
}
