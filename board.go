package chess

// Board holds the piece placement of a position: one bitboard per role,
// one per color, and a "promoted" overlay tracking which occupied squares
// hold a piece that reached its current role via promotion (needed so a
// Crazyhouse capture of a promoted queen refunds a pawn, not a queen).
//
// Board is a plain value type (nine Bitboards, no pointers or slices) so
// copying one is just a struct assignment — the cost Position.Play relies
// on to hand back a fresh value cheaply.
type Board struct {
	roles    [6]Bitboard // indexed by Role-1
	colors   [2]Bitboard
	promoted Bitboard
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() Board { return Board{} }

// ByRole returns every square occupied by a piece of role r, either color.
func (b Board) ByRole(r Role) Bitboard { return b.roles[r-1] }

// ByColor returns every square occupied by a piece of color c.
func (b Board) ByColor(c Color) Bitboard { return b.colors[c] }

// ByPiece returns every square occupied by p.
func (b Board) ByPiece(p Piece) Bitboard { return b.roles[p.Role-1] & b.colors[p.Color] }

// Occupied returns every occupied square.
func (b Board) Occupied() Bitboard { return b.colors[White] | b.colors[Black] }

// Promoted returns the squares whose occupant is currently a promoted
// piece.
func (b Board) Promoted() Bitboard { return b.promoted }

// PieceAt returns the piece on sq, if any.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	mask := squareMask(sq)
	var c Color
	switch {
	case b.colors[White]&mask != 0:
		c = White
	case b.colors[Black]&mask != 0:
		c = Black
	default:
		return Piece{}, false
	}
	for _, r := range AllRoles {
		if b.roles[r-1]&mask != 0 {
			return Piece{Color: c, Role: r}, true
		}
	}
	return Piece{}, false
}

// RoleAt returns the role occupying sq, or NoRole if empty.
func (b Board) RoleAt(sq Square) Role {
	p, ok := b.PieceAt(sq)
	if !ok {
		return NoRole
	}
	return p.Role
}

// ColorAt returns the color occupying sq and whether sq is occupied.
func (b Board) ColorAt(sq Square) (Color, bool) {
	mask := squareMask(sq)
	if b.colors[White]&mask != 0 {
		return White, true
	}
	if b.colors[Black]&mask != 0 {
		return Black, true
	}
	return White, false
}

// KingOf returns the square of color c's king.
func (b Board) KingOf(c Color) (Square, bool) {
	return b.ByPiece(Piece{Color: c, Role: King}).First()
}

// SetPieceAt places p on sq, marking it promoted iff promoted is true. Any
// piece previously on sq is overwritten without being returned; callers
// that need the replaced piece should call RemovePieceAt first.
func (b *Board) SetPieceAt(sq Square, p Piece, promoted bool) {
	mask := squareMask(sq)
	for _, c := range [2]Color{White, Black} {
		b.colors[c] &^= mask
	}
	for _, r := range AllRoles {
		b.roles[r-1] &^= mask
	}
	b.promoted &^= mask
	b.colors[p.Color] |= mask
	b.roles[p.Role-1] |= mask
	if promoted {
		b.promoted |= mask
	}
}

// RemovePieceAt clears sq and returns what was there, if anything.
func (b *Board) RemovePieceAt(sq Square) (Piece, bool) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return Piece{}, false
	}
	mask := squareMask(sq)
	b.colors[p.Color] &^= mask
	b.roles[p.Role-1] &^= mask
	b.promoted &^= mask
	return p, true
}

// IsPromoted reports whether the piece on sq (if any) is a promoted piece.
func (b Board) IsPromoted(sq Square) bool {
	return b.promoted.Contains(sq)
}

// AttackersTo returns every square occupied by a piece of color `by` that
// attacks sq, given occupancy occ (which the caller may adjust, e.g. to
// lift a king off its own square for king-safety checks).
func (b Board) AttackersTo(sq Square, by Color, occ Bitboard) Bitboard {
	pawns := PawnAttacks(by.Other(), sq) & b.ByPiece(Piece{Color: by, Role: Pawn})
	knights := KnightAttacks(sq) & b.ByPiece(Piece{Color: by, Role: Knight})
	kings := KingAttacks(sq) & b.ByPiece(Piece{Color: by, Role: King})
	rooksQueens := b.ByPiece(Piece{Color: by, Role: Rook}) | b.ByPiece(Piece{Color: by, Role: Queen})
	bishopsQueens := b.ByPiece(Piece{Color: by, Role: Bishop}) | b.ByPiece(Piece{Color: by, Role: Queen})
	sliders := (RookAttacks(sq, occ) & rooksQueens) | (BishopAttacks(sq, occ) & bishopsQueens)
	return pawns | knights | kings | sliders
}

// AttacksTo returns every attacker of sq, of either color, against the
// current occupancy.
func (b Board) AttacksTo(sq Square) Bitboard {
	occ := b.Occupied()
	return b.AttackersTo(sq, White, occ) | b.AttackersTo(sq, Black, occ)
}

// HasInsufficientMaterial reports whether `c` lacks enough material to
// deliver checkmate by force: it holds only a bare king, a king and one
// knight, or a king and one bishop. Only c's own pieces are considered; two
// or more bishops count as sufficient whatever their square colors (see
// InsufficientMaterialForBothSides for the same-color-complex case).
// Ported from the teacher's Board.hasSufficientMaterial, which is
// itself the one piece of endgame-adjacent logic barakmich/chess already
// carries despite otherwise excluding adjudication.
func (b Board) HasInsufficientMaterial(c Color) bool {
	own := b.ByColor(c)
	if (b.ByRole(Queen)|b.ByRole(Rook)|b.ByRole(Pawn))&own != 0 {
		return false
	}
	knights := (b.ByRole(Knight) & own).Count()
	bishops := b.ByRole(Bishop) & own
	switch {
	case knights == 0 && bishops.IsEmpty():
		return true
	case knights == 1 && bishops.IsEmpty():
		return true
	case knights == 0 && bishops.ExactlyOne():
		return true
	}
	return false
}

const (
	lightSquares Bitboard = 0x55AA55AA55AA55AA
	darkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// InsufficientMaterialForBothSides reports whether neither side has enough
// material to checkmate, accounting for same-color-complex bishops on
// opposite sides (king+bishop vs king+bishop is a draw only if the bishops
// share a square color).
func InsufficientMaterialForBothSides(b Board) bool {
	if (b.ByRole(Queen) | b.ByRole(Rook) | b.ByRole(Pawn)).Any() {
		return false
	}
	knights := b.ByRole(Knight)
	bishops := b.ByRole(Bishop)
	if knights.Any() {
		return knights.Count()+bishops.Count() <= 1
	}
	if bishops.IsEmpty() {
		return true
	}
	return bishops&lightSquares == bishops || bishops&darkSquares == bishops
}
