package chess

import "golang.org/x/exp/slices"

// EncodeUCI renders m in UCI coordinate notation: "e2e4", "e7e8q" for a
// promotion, "e1h1" for a castle (Chess960 king-takes-rook convention —
// the king's destination square is ambiguous in standard chess once the
// rook's starting file is not fixed, so UCI always addresses a castle by
// the king's and rook's starting squares), "N@f3" for a Crazyhouse drop,
// and "0000" for the null move.
func EncodeUCI(m Move) string {
	switch m.Kind {
	case KindNull:
		return "0000"
	case KindPut:
		ch := m.Role.Char()
		if ch >= 'a' && ch <= 'z' {
			ch -= 0x20
		}
		return string(rune(ch)) + "@" + m.To.String()
	case KindCastle:
		return m.King.String() + m.Rook.String()
	default:
		s := m.From.String() + m.To.String()
		if m.Promotion != NoRole {
			s += string(rune(m.Promotion.Char()))
		}
		return s
	}
}

// castleRookSquare returns the square of the side to move's king-side (or
// queen-side) castling rook, if that right is still held.
func (p Position) castleRookSquare(kingSide bool) (Square, bool) {
	return p.Castling.RookSquare(p.Board, p.Turn, kingSide)
}

// candidateFromCoords builds the Move a "from to [promotion]" coordinate
// pair most plausibly names, without regard to legality: a king moving to
// a square its own castling rights hold is a Castle (Chess960
// king-takes-rook UCI), a king moving two files along its back rank is a
// Castle under the standard-chess UCI convention, a pawn changing file
// onto an empty square is an EnPassant, and everything else is Normal.
func (p Position) candidateFromCoords(role Role, from, to Square, promotion Role) Move {
	if role == King {
		if p.Castling.For(p.Turn).Contains(to) {
			return NewCastleMove(from, to)
		}
		backRank := p.Turn.BackRank()
		if from.Rank() == backRank && to.Rank() == backRank && from.Distance(to) == 2 {
			switch to.File() {
			case FileG:
				if rookSq, ok := p.castleRookSquare(true); ok {
					return NewCastleMove(from, rookSq)
				}
			case FileC:
				if rookSq, ok := p.castleRookSquare(false); ok {
					return NewCastleMove(from, rookSq)
				}
			}
		}
	}
	if role == Pawn && from.Valid() && from.File() != to.File() && p.Board.RoleAt(to) == NoRole {
		return NewEnPassantMove(from, to)
	}
	return NewNormalMove(role, from, to, p.Board.RoleAt(to), promotion)
}

// ParseUCI parses coordinate move text and validates it against p's legal
// moves, returning the canonical Move (with Capture/disambiguation fields
// filled in from the position) on success.
func (p Position) ParseUCI(s string) (Move, error) {
	if s == "0000" {
		for _, m := range p.LegalMoves() {
			if m.Kind == KindNull {
				return m, nil
			}
		}
		return NullMove(), nil
	}
	if len(s) == 4 && s[1] == '@' {
		return p.parseDropUCI(s)
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, newError(ErrParseCoord, s, nil)
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, newError(ErrParseCoord, s, nil)
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, newError(ErrParseCoord, s, nil)
	}
	promotion := NoRole
	if len(s) == 5 {
		promotion = RoleFromChar(s[4])
		if promotion == NoRole {
			return Move{}, newError(ErrParseCoord, s, nil)
		}
	}

	role := p.Board.RoleAt(from)
	candidate := p.candidateFromCoords(role, from, to, promotion)
	return p.resolveCandidate(candidate, s)
}

func (p Position) parseDropUCI(s string) (Move, error) {
	role := RoleFromChar(s[0])
	if role == NoRole {
		return Move{}, newError(ErrParseCoord, s, nil)
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, newError(ErrParseCoord, s, nil)
	}
	return p.resolveCandidate(NewPutMove(role, to), s)
}

// resolveCandidate validates candidate against p's legal moves, using
// slices.IndexFunc (golang.org/x/exp/slices) rather than a hand-rolled
// loop-and-break to pick out the matching legal move.
func (p Position) resolveCandidate(candidate Move, text string) (Move, error) {
	legal := p.LegalMoves()
	idx := slices.IndexFunc(legal, func(m Move) bool {
		if m.Kind != candidate.Kind || m.From != candidate.From || m.To != candidate.To {
			return false
		}
		if m.Kind == KindNormal && m.Promotion != candidate.Promotion {
			return false
		}
		if m.Kind == KindCastle && m.Rook != candidate.Rook {
			return false
		}
		if m.Kind == KindPut && m.Role != candidate.Role {
			return false
		}
		return true
	})
	if idx < 0 {
		return Move{}, newError(ErrIllegalCoord, text, nil)
	}
	return legal[idx], nil
}
