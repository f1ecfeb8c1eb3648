package chess

// Position is the full state of a game in progress: piece placement, side
// to move, castling rights, en passant square, move clocks, and (for
// variants that need them) pockets and remaining-check counters.
//
// Like Board, Position is a plain value type. Play returns a new Position
// by value; the receiver is never mutated, matching the "apply move
// yields a new position value" contract. Cloning is a struct copy.
type Position struct {
	Board    Board
	Turn     Color
	Castling CastlingRights
	EPSquare Square
	Halfmove int
	Fullmove int

	Variant VariantKind
	Pockets Pockets
	Checks  RemainingChecks
}

// NewPosition returns an empty board position with no castling rights, no
// en passant square, move counters at their initial values, and White to
// move.
func NewPosition() Position {
	return Position{
		Turn:     White,
		EPSquare: NoSquare,
		Fullmove: 1,
	}
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	pos, err := ParsePositionText("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("chesscore: invalid built-in starting position: " + err.Error())
	}
	return pos
}

func pawnDir(c Color) int { return Fold(c, 1, -1) }

// Checkers returns every opposing piece currently attacking the side to
// move's king.
func (p Position) Checkers() Bitboard {
	king, ok := p.Board.KingOf(p.Turn)
	if !ok {
		return Empty
	}
	return p.Board.AttackersTo(king, p.Turn.Other(), p.Board.Occupied())
}

// isInCheck reports whether color c's king is attacked in the current
// board state.
func (p Position) isInCheck(c Color) bool {
	king, ok := p.Board.KingOf(c)
	if !ok {
		return false
	}
	return p.Board.AttackersTo(king, c.Other(), p.Board.Occupied()).Any()
}

// InCheck reports whether the side to move is in check.
func (p Position) InCheck() bool { return p.Checkers().Any() }

// LegalMoves enumerates every legal move in the position: evasions if the
// side to move is in check, otherwise pseudo-legal generation filtered for
// king safety, plus castling.
func (p Position) LegalMoves() []Move {
	if checkers := p.Checkers(); checkers.Any() {
		return p.evasions(checkers)
	}
	moves := p.filterLegal(p.pseudoLegalMoves())
	return append(moves, p.castlingMoves()...)
}

// pseudoLegalMoves enumerates every move obeying piece movement rules,
// without regard to whether it leaves the mover's own king in check.
// Castling is generated separately (castlingMoves) since its legality is
// fully resolved during generation rather than filtered afterwards.
func (p Position) pseudoLegalMoves() []Move {
	us := p.Turn
	them := us.Other()
	own := p.Board.ByColor(us)
	opp := p.Board.ByColor(them)
	occ := own | opp

	var moves []Move

	if king, ok := p.Board.KingOf(us); ok {
		dests := KingAttacks(king).Diff(own)
		it := dests.Squares()
		for sq, ok := it.Next(); ok; sq, ok = it.Next() {
			moves = append(moves, NewNormalMove(King, king, sq, p.Board.RoleAt(sq), NoRole))
		}
	}

	knights := p.Board.ByPiece(Piece{Color: us, Role: Knight})
	itn := knights.Squares()
	for sq, ok := itn.Next(); ok; sq, ok = itn.Next() {
		dests := KnightAttacks(sq).Diff(own)
		it2 := dests.Squares()
		for d, ok2 := it2.Next(); ok2; d, ok2 = it2.Next() {
			moves = append(moves, NewNormalMove(Knight, sq, d, p.Board.RoleAt(d), NoRole))
		}
	}

	diagSliders := p.Board.ByPiece(Piece{Color: us, Role: Bishop}) | p.Board.ByPiece(Piece{Color: us, Role: Queen})
	itd := diagSliders.Squares()
	for sq, ok := itd.Next(); ok; sq, ok = itd.Next() {
		role := p.Board.RoleAt(sq)
		dests := BishopAttacks(sq, occ).Diff(own)
		it2 := dests.Squares()
		for d, ok2 := it2.Next(); ok2; d, ok2 = it2.Next() {
			moves = append(moves, NewNormalMove(role, sq, d, p.Board.RoleAt(d), NoRole))
		}
	}

	// One rook-ray pass and one (separate, above) bishop-ray pass per
	// queen: a generator that looped queens into both sets twice for the
	// same ray kind would double-count queen moves (the bug the design
	// notes call out against a bishop-ray double-add).
	lineSliders := p.Board.ByPiece(Piece{Color: us, Role: Rook}) | p.Board.ByPiece(Piece{Color: us, Role: Queen})
	itl := lineSliders.Squares()
	for sq, ok := itl.Next(); ok; sq, ok = itl.Next() {
		role := p.Board.RoleAt(sq)
		dests := RookAttacks(sq, occ).Diff(own)
		it2 := dests.Squares()
		for d, ok2 := it2.Next(); ok2; d, ok2 = it2.Next() {
			moves = append(moves, NewNormalMove(role, sq, d, p.Board.RoleAt(d), NoRole))
		}
	}

	pawns := p.Board.ByPiece(Piece{Color: us, Role: Pawn})
	itp := pawns.Squares()
	for sq, ok := itp.Next(); ok; sq, ok = itp.Next() {
		capDests := PawnAttacks(us, sq) & opp
		itc := capDests.Squares()
		for d, ok2 := itc.Next(); ok2; d, ok2 = itc.Next() {
			appendPawnMoves(&moves, us, sq, d, p.Board.RoleAt(d))
		}
		if single, ok2 := sq.Offset(0, pawnDir(us)); ok2 && !occ.Contains(single) {
			appendPawnMoves(&moves, us, sq, single, NoRole)
			if RelativeRank(us, sq.Rank()) == Rank2 {
				if double, ok3 := single.Offset(0, pawnDir(us)); ok3 && !occ.Contains(double) {
					moves = append(moves, NewNormalMove(Pawn, sq, double, NoRole, NoRole))
				}
			}
		}
		if p.EPSquare != NoSquare && PawnAttacks(us, sq).Contains(p.EPSquare) &&
			p.Board.ByPiece(Piece{Color: them, Role: Pawn}).Contains(NewSquare(p.EPSquare.File(), sq.Rank())) {
			moves = append(moves, NewEnPassantMove(sq, p.EPSquare))
		}
	}

	if p.Variant == VariantCrazyhouse {
		moves = append(moves, p.dropMoves()...)
	}

	return moves
}

// appendPawnMoves appends a promotion quartet if dest lands on the far
// back rank, otherwise a single Normal move.
func appendPawnMoves(moves *[]Move, us Color, from, to Square, capture Role) {
	if RelativeRank(us, to.Rank()) == Rank8 {
		for _, promo := range [4]Role{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, NewNormalMove(Pawn, from, to, capture, promo))
		}
		return
	}
	*moves = append(*moves, NewNormalMove(Pawn, from, to, capture, NoRole))
}

var dropRoles = [5]Role{Pawn, Knight, Bishop, Rook, Queen}

// dropMoves enumerates Crazyhouse Put moves for every role the side to
// move holds in pocket.
func (p Position) dropMoves() []Move {
	us := p.Turn
	pocket := p.Pockets.Of(us)
	empty := p.Board.Occupied().Complement()
	var moves []Move
	for _, r := range dropRoles {
		if pocket.Count(r) <= 0 {
			continue
		}
		avail := empty
		if r == Pawn {
			avail = avail.Diff(RankBB(Rank1)).Diff(RankBB(Rank8))
		}
		it := avail.Squares()
		for sq, ok := it.Next(); ok; sq, ok = it.Next() {
			moves = append(moves, NewPutMove(r, sq))
		}
	}
	return moves
}

// pinnedBlockers returns every piece (either color) that stands alone
// between side's king and an opposing slider that would otherwise attack
// it — the set whose members may only move along the pin line.
func (p Position) pinnedBlockers(king Square, side Color) Bitboard {
	opp := side.Other()
	rooksQueens := p.Board.ByPiece(Piece{Color: opp, Role: Rook}) | p.Board.ByPiece(Piece{Color: opp, Role: Queen})
	bishopsQueens := p.Board.ByPiece(Piece{Color: opp, Role: Bishop}) | p.Board.ByPiece(Piece{Color: opp, Role: Queen})
	snipers := (RookAttacks(king, Empty) & rooksQueens) | (BishopAttacks(king, Empty) & bishopsQueens)
	occ := p.Board.Occupied()
	var blockers Bitboard
	it := snipers.Squares()
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		between := Between(king, sq) & occ
		if between.ExactlyOne() {
			blockers |= between
		}
	}
	return blockers
}

// enPassantSafe runs the discovered-check corner-case test (§4.4): with
// both the moving pawn and the captured pawn removed and the moving pawn's
// destination occupied, the king must not come under rook/queen or
// bishop/queen attack along any ray.
func (p Position) enPassantSafe(m Move) bool {
	us := p.Turn
	them := us.Other()
	king, ok := p.Board.KingOf(us)
	if !ok {
		return true
	}
	capturedSq := NewSquare(m.To.File(), m.From.Rank())
	occ := p.Board.Occupied().Remove(m.From).Remove(capturedSq).Insert(m.To)
	rooksQueens := p.Board.ByPiece(Piece{Color: them, Role: Rook}) | p.Board.ByPiece(Piece{Color: them, Role: Queen})
	bishopsQueens := p.Board.ByPiece(Piece{Color: them, Role: Bishop}) | p.Board.ByPiece(Piece{Color: them, Role: Queen})
	attackers := (RookAttacks(king, occ) & rooksQueens) | (BishopAttacks(king, occ) & bishopsQueens)
	return attackers.IsEmpty()
}

// filterLegal drops every pseudo-legal move that would leave the mover's
// own king in check.
func (p Position) filterLegal(moves []Move) []Move {
	us := p.Turn
	king, hasKing := p.Board.KingOf(us)
	var blockers Bitboard
	var occNoKing Bitboard
	if hasKing {
		blockers = p.pinnedBlockers(king, us)
		occNoKing = p.Board.Occupied().Remove(king)
	}
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		switch {
		case m.Kind == KindNormal && m.Role == King:
			if p.Board.AttackersTo(m.To, us.Other(), occNoKing).IsEmpty() {
				out = append(out, m)
			}
		case m.Kind == KindEnPassant:
			if p.enPassantSafe(m) {
				out = append(out, m)
			}
		case m.Kind == KindPut:
			// A drop only adds a piece; it can never expose the mover's own
			// king, so no pin/king-safety filtering applies.
			out = append(out, m)
		default:
			if !blockers.Contains(m.From) || Aligned(m.From, m.To, king) {
				out = append(out, m)
			}
		}
	}
	return out
}

// evasions enumerates the legal replies to being in check: king moves to
// safety always; if exactly one checker, also blocks/captures of it by
// other pieces (plus an en passant capture of a checking pawn); if two or
// more, king moves only.
func (p Position) evasions(checkers Bitboard) []Move {
	us := p.Turn
	them := us.Other()
	king, ok := p.Board.KingOf(us)
	if !ok {
		return nil
	}
	own := p.Board.ByColor(us)
	occNoKing := p.Board.Occupied().Remove(king)

	var out []Move
	dests := KingAttacks(king).Diff(own)
	it := dests.Squares()
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		if p.Board.AttackersTo(sq, them, occNoKing).IsEmpty() {
			out = append(out, NewNormalMove(King, king, sq, p.Board.RoleAt(sq), NoRole))
		}
	}

	if checkers.MoreThanOne() {
		return out
	}
	checkerSq, _ := checkers.First()
	target := Between(king, checkerSq).Insert(checkerSq)

	var candidates []Move
	for _, m := range p.pseudoLegalMoves() {
		if m.Kind == KindNormal && m.Role == King {
			continue
		}
		switch m.Kind {
		case KindNormal:
			if target.Contains(m.To) {
				candidates = append(candidates, m)
			}
		case KindPut:
			if target.Contains(m.To) {
				candidates = append(candidates, m)
			}
		case KindEnPassant:
			if NewSquare(m.To.File(), m.From.Rank()) == checkerSq {
				candidates = append(candidates, m)
			}
		}
	}
	out = append(out, p.filterLegal(candidates)...)
	return out
}

// castlingMoves enumerates legal castles: for every own rook on the back
// rank still holding rights, the king and rook paths must be clear, every
// square on the king's path unattacked, and — the Chess960 corner case —
// the king must not come under slider attack along the destination
// file/rank once the castling rook has vacated its own square.
func (p Position) castlingMoves() []Move {
	us := p.Turn
	them := us.Other()
	king, ok := p.Board.KingOf(us)
	if !ok {
		return nil
	}
	backRank := us.BackRank()
	if king.Rank() != backRank {
		return nil
	}
	occ := p.Board.Occupied()
	oppRQ := p.Board.ByPiece(Piece{Color: them, Role: Rook}) | p.Board.ByPiece(Piece{Color: them, Role: Queen})

	var out []Move
	it := p.Castling.For(us).Squares()
	for rookSq, ok := it.Next(); ok; rookSq, ok = it.Next() {
		if p.Board.RoleAt(rookSq) != Rook {
			continue
		}
		if c, present := p.Board.ColorAt(rookSq); !present || c != us {
			continue
		}
		kingTo, rookTo := CastlingCornerSquares(king, rookSq, backRank)

		emptyForKing := Between(king, kingTo).Insert(kingTo).Diff(squareMask(rookSq)).Diff(squareMask(king))
		emptyForRook := Between(rookSq, rookTo).Insert(rookTo).Diff(squareMask(rookSq)).Diff(squareMask(king))
		if occ.Inter(emptyForKing.Union(emptyForRook)).Any() {
			continue
		}

		kingPath := Between(king, kingTo).Insert(king).Insert(kingTo)
		occNoKing := occ.Remove(king)
		safe := true
		itp := kingPath.Squares()
		for sq, ok2 := itp.Next(); ok2; sq, ok2 = itp.Next() {
			if p.Board.AttackersTo(sq, them, occNoKing).Any() {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}

		occAfterRookLeaves := occ.Remove(rookSq)
		if RookAttacks(kingTo, occAfterRookLeaves).Inter(oppRQ).Any() {
			continue
		}

		out = append(out, NewCastleMove(king, rookSq))
	}
	return out
}

// Play applies m and returns the resulting position. m is assumed legal
// (or, for Put, validated against pocket counts and an empty target);
// playing an illegal move is undefined behavior — callers must validate
// via LegalMoves or ParseUCI first (§7).
func (p Position) Play(m Move) Position {
	np := p

	if m.Kind == KindNull {
		np.Turn = p.Turn.Other()
		if np.Turn == White {
			np.Fullmove++
		}
		return np
	}

	np.EPSquare = NoSquare
	np.Halfmove++

	switch m.Kind {
	case KindNormal:
		if m.Role == Pawn || m.Capture != NoRole {
			np.Halfmove = 0
		}
		if m.Role == Pawn && m.From.File() == m.To.File() && m.From.Distance(m.To) == 2 {
			np.EPSquare = NewSquare(m.From.File(), Fold(p.Turn, Rank3, Rank6))
		}
		if m.Role == King {
			np.Castling = np.Castling.DiscardColor(p.Turn)
		} else {
			np.Castling = np.Castling.Discard(squareMask(m.From).Insert(m.To))
		}
		wasPromoted := p.Board.IsPromoted(m.From)
		np.Board.RemovePieceAt(m.From)
		np.Board.RemovePieceAt(m.To)
		finalRole := m.Role
		promoted := wasPromoted
		if m.Promotion != NoRole {
			finalRole = m.Promotion
			promoted = true
		}
		np.Board.SetPieceAt(m.To, Piece{Color: p.Turn, Role: finalRole}, promoted)

	case KindCastle:
		backRank := p.Turn.BackRank()
		kingTo, rookTo := CastlingCornerSquares(m.King, m.Rook, backRank)
		np.Board.RemovePieceAt(m.King)
		np.Board.RemovePieceAt(m.Rook)
		np.Board.SetPieceAt(kingTo, Piece{Color: p.Turn, Role: King}, false)
		np.Board.SetPieceAt(rookTo, Piece{Color: p.Turn, Role: Rook}, false)
		np.Castling = np.Castling.DiscardColor(p.Turn)

	case KindEnPassant:
		capturedSq := NewSquare(m.To.File(), m.From.Rank())
		np.Board.RemovePieceAt(m.From)
		np.Board.RemovePieceAt(capturedSq)
		np.Board.SetPieceAt(m.To, Piece{Color: p.Turn, Role: Pawn}, false)
		np.Halfmove = 0

	case KindPut:
		np.Board.SetPieceAt(m.To, Piece{Color: p.Turn, Role: m.Role}, false)
	}

	np.Turn = p.Turn.Other()
	if np.Turn == White {
		np.Fullmove++
	}
	applyVariantHooks(&np, p, m)
	return np
}

// OutcomeReason classifies why a position is (or is not) decided.
type OutcomeReason uint8

const (
	NoOutcome OutcomeReason = iota
	Checkmate
	Stalemate
	ThreeCheckWin
	InsufficientMaterial
)

// Outcome is the result of a position, if any.
type Outcome struct {
	HasWinner bool
	Winner    Color
	Reason    OutcomeReason
}

// Outcome reports whether the game is decided: checkmate or stalemate (the
// only endings spec.md's core names), a Three-Check win-by-checks (a
// terminal condition spec.md defines the counter for but never wires up,
// see SPEC_FULL.md §4), or a detected insufficient-material draw. A
// halfmove-clock or repetition draw is out of scope (Non-goals).
func (p Position) Outcome() Outcome {
	if p.Variant == VariantThreeCheck {
		if p.Checks.Of(White) == 0 {
			return Outcome{HasWinner: true, Winner: Black, Reason: ThreeCheckWin}
		}
		if p.Checks.Of(Black) == 0 {
			return Outcome{HasWinner: true, Winner: White, Reason: ThreeCheckWin}
		}
	}
	if len(p.LegalMoves()) == 0 {
		if p.InCheck() {
			return Outcome{HasWinner: true, Winner: p.Turn.Other(), Reason: Checkmate}
		}
		return Outcome{Reason: Stalemate}
	}
	if InsufficientMaterialForBothSides(p.Board) {
		return Outcome{Reason: InsufficientMaterial}
	}
	return Outcome{Reason: NoOutcome}
}

// ReplayUCI parses and plays a sequence of UCI coordinate moves in order,
// as a "position fen ... moves ..." consumer would, stopping at the first
// parse or legality error.
func (p Position) ReplayUCI(moves []string) (Position, error) {
	cur := p
	for _, s := range moves {
		m, err := cur.ParseUCI(s)
		if err != nil {
			return Position{}, err
		}
		cur = cur.Play(m)
	}
	return cur, nil
}
