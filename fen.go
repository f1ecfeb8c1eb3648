package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoardText parses the piece-placement field of a FEN-style position
// string (eight '/'-separated ranks, rank 8 first, digits for consecutive
// empty squares).
func ParseBoardText(s string) (Board, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return Board{}, newError(ErrParseBoard, s, nil)
	}
	board := EmptyBoard()
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			role := RoleFromChar(ch)
			if role == NoRole || file > 7 {
				return Board{}, newError(ErrParseBoard, s, nil)
			}
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
			}
			promoted := false
			if j+1 < len(rankStr) && rankStr[j+1] == '~' {
				promoted = true
				j++
			}
			board.SetPieceAt(NewSquare(file, rank), Piece{Color: color, Role: role}, promoted)
			file++
		}
		if file != 8 {
			return Board{}, newError(ErrParseBoard, s, nil)
		}
	}
	return board, nil
}

// BoardText renders b's piece placement as the FEN board field.
func (b Board) BoardText() string {
	var sb strings.Builder
	for r := Rank(7); r >= 0; r-- {
		empty := 0
		for f := File(0); f < 8; f++ {
			p, ok := b.PieceAt(NewSquare(f, r))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
			if b.IsPromoted(NewSquare(f, r)) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParsePositionText parses an extended FEN-style position string: the
// board field (with an optional Crazyhouse "[pocket]" suffix), side to
// move, castling rights (either the X-FEN KQkq shorthand or an explicit
// Shredder-FEN rook file letter), en passant square, and the optional
// halfmove/fullmove counters and Three-Check "+checks" suffix. Missing
// trailing fields default to no pocket, halfmove 0, fullmove 1, and
// standard variant.
func ParsePositionText(s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Position{}, newError(ErrParsePosition, s, nil)
	}

	boardField := fields[0]
	hasPocket := false
	pocketText := ""
	if open := strings.IndexByte(boardField, '['); open >= 0 {
		closeIdx := strings.IndexByte(boardField, ']')
		if closeIdx < open {
			return Position{}, newError(ErrParsePocket, s, nil)
		}
		hasPocket = true
		pocketText = boardField[open+1 : closeIdx]
		boardField = boardField[:open]
	}

	board, err := ParseBoardText(boardField)
	if err != nil {
		return Position{}, newError(ErrParseBoard, s, err)
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return Position{}, newError(ErrParsePosition, s, nil)
	}

	castling := NoCastlingRights
	if len(fields) >= 3 && fields[2] != "-" {
		castling, err = parseCastlingField(fields[2], board)
		if err != nil {
			return Position{}, err
		}
	}

	ep := NoSquare
	if len(fields) >= 4 && fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return Position{}, newError(ErrParsePosition, s, nil)
		}
		ep = sq
	}

	halfmove := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Position{}, newError(ErrParsePosition, s, err)
		}
		halfmove = n
	}

	fullmove := 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 1 {
			fullmove = n
		}
	}

	pos := Position{
		Board:    board,
		Turn:     turn,
		Castling: castling,
		EPSquare: ep,
		Halfmove: halfmove,
		Fullmove: fullmove,
	}

	if hasPocket {
		pockets, err := parsePocketText(pocketText)
		if err != nil {
			return Position{}, err
		}
		pos.Variant = VariantCrazyhouse
		pos.Pockets = pockets
	}

	if len(fields) >= 7 {
		checks, err := parseRemainingChecksField(fields[6])
		if err != nil {
			return Position{}, err
		}
		pos.Variant = VariantThreeCheck
		pos.Checks = checks
	}

	return pos, nil
}

// parseCastlingField accepts either X-FEN shorthand (K/Q per side, meaning
// "the outermost rook on that side of the king") or a Shredder-FEN rook
// file letter (A-H), case indicating color.
func parseCastlingField(s string, board Board) (CastlingRights, error) {
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		ch := s[i]
		var c Color
		switch {
		case ch >= 'A' && ch <= 'Z':
			c = White
		case ch >= 'a' && ch <= 'z':
			c = Black
		default:
			return 0, newError(ErrParsePosition, s, nil)
		}
		backRank := c.BackRank()
		upper := ch &^ 0x20
		var sq Square
		switch upper {
		case 'K':
			found, ok := outermostRook(board, c, backRank, true)
			if !ok {
				return 0, newError(ErrParsePosition, s, nil)
			}
			sq = found
		case 'Q':
			found, ok := outermostRook(board, c, backRank, false)
			if !ok {
				return 0, newError(ErrParsePosition, s, nil)
			}
			sq = found
		default:
			file := File(upper - 'A')
			if file < 0 || file > 7 {
				return 0, newError(ErrParsePosition, s, nil)
			}
			sq = NewSquare(file, backRank)
			if board.RoleAt(sq) != Rook {
				return 0, newError(ErrParsePosition, s, nil)
			}
		}
		cr |= CastlingRights(squareMask(sq))
	}
	return cr, nil
}

// outermostRook finds the rook of color c on backRank farthest from the
// center on the king or queen side of c's king, for resolving X-FEN KQkq
// shorthand to a concrete rook square.
func outermostRook(board Board, c Color, backRank Rank, kingSide bool) (Square, bool) {
	king, ok := board.KingOf(c)
	if !ok {
		return NoSquare, false
	}
	rooks := board.ByPiece(Piece{Color: c, Role: Rook}) & RankBB(backRank)
	best := NoSquare
	it := rooks.Squares()
	for sq, ok2 := it.Next(); ok2; sq, ok2 = it.Next() {
		if kingSide && sq > king {
			if best == NoSquare || sq > best {
				best = sq
			}
		} else if !kingSide && sq < king {
			if best == NoSquare || sq < best {
				best = sq
			}
		}
	}
	if best == NoSquare {
		return NoSquare, false
	}
	return best, true
}

// castlingText renders p's castling rights in X-FEN: the KQkq shorthand for
// a right held by the outermost rook on that side of the king, otherwise the
// rook's file letter (uppercase for White).
func (p Position) castlingText() string {
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		for _, kingSide := range [2]bool{true, false} {
			rook, ok := p.Castling.RookSquare(p.Board, c, kingSide)
			if !ok {
				continue
			}
			ch := Fold(c, byte('Q'), byte('q'))
			if kingSide {
				ch = Fold(c, byte('K'), byte('k'))
			}
			if outer, ok := outermostRook(p.Board, c, c.BackRank(), kingSide); !ok || outer != rook {
				ch = Fold(c, byte('A'+rook.File()), byte('a'+rook.File()))
			}
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// parsePocketText parses a Crazyhouse pocket string such as "Ppn" (one
// white pawn, one black pawn, one black knight): each character is a FEN
// piece letter, case indicating color.
func parsePocketText(s string) (Pockets, error) {
	var pockets Pockets
	for i := 0; i < len(s); i++ {
		ch := s[i]
		role := RoleFromChar(ch)
		if role == NoRole || role == King {
			return Pockets{}, newError(ErrParsePocket, s, nil)
		}
		c := Black
		if ch >= 'A' && ch <= 'Z' {
			c = White
		}
		pockets = pockets.add(c, role, 1)
	}
	return pockets, nil
}

// text renders p as a pocket string, White's holdings (uppercase) then
// Black's (lowercase), in Pawn/Knight/Bishop/Rook/Queen order.
func (p Pockets) text() string {
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		pocket := p.Of(c)
		for _, r := range dropRoles {
			ch := r.Char()
			if c == White {
				ch -= 0x20
			}
			for n := pocket.Count(r); n > 0; n-- {
				sb.WriteByte(ch)
			}
		}
	}
	return sb.String()
}

// parseRemainingChecksField parses a Three-Check "W+B" remaining-checks
// suffix such as "3+3".
func parseRemainingChecksField(s string) (RemainingChecks, error) {
	parts := strings.SplitN(s, "+", 2)
	if len(parts) != 2 {
		return RemainingChecks{}, newError(ErrParseRemainingChecks, s, nil)
	}
	w, errW := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[1])
	if errW != nil || errB != nil || w < 0 || w > 3 || b < 0 || b > 3 {
		return RemainingChecks{}, newError(ErrParseRemainingChecks, s, nil)
	}
	return RemainingChecks{int8(w), int8(b)}, nil
}

// PositionText renders p as an extended FEN-style position string,
// round-tripping through ParsePositionText.
func (p Position) PositionText() string {
	var sb strings.Builder
	sb.WriteString(p.Board.BoardText())
	if p.Variant == VariantCrazyhouse {
		sb.WriteByte('[')
		sb.WriteString(p.Pockets.text())
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingText())
	sb.WriteByte(' ')
	if p.EPSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EPSquare.String())
	}
	fmt.Fprintf(&sb, " %d %d", p.Halfmove, p.Fullmove)
	if p.Variant == VariantThreeCheck {
		fmt.Fprintf(&sb, " %d+%d", p.Checks.Of(White), p.Checks.Of(Black))
	}
	return sb.String()
}

// String implements fmt.Stringer as PositionText.
func (p Position) String() string { return p.PositionText() }
