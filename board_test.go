package chess

import "testing"

func TestBoardSetRemovePieceAt(t *testing.T) {
	b := EmptyBoard()
	sq := NewSquare(FileE, Rank4)
	b.SetPieceAt(sq, Piece{Color: White, Role: Queen}, false)

	p, ok := b.PieceAt(sq)
	if !ok || p.Role != Queen || p.Color != White {
		t.Fatalf("PieceAt(e4) = %v, %v; want white queen", p, ok)
	}
	if b.RoleAt(sq) != Queen {
		t.Errorf("RoleAt(e4) = %v, want Queen", b.RoleAt(sq))
	}
	if c, ok := b.ColorAt(sq); !ok || c != White {
		t.Errorf("ColorAt(e4) = %v, %v; want White, true", c, ok)
	}

	removed, ok := b.RemovePieceAt(sq)
	if !ok || removed.Role != Queen {
		t.Fatalf("RemovePieceAt(e4) = %v, %v", removed, ok)
	}
	if _, ok := b.PieceAt(sq); ok {
		t.Errorf("square should be empty after RemovePieceAt")
	}
}

func TestBoardSetPieceAtOverwrites(t *testing.T) {
	b := EmptyBoard()
	sq := NewSquare(FileA, Rank1)
	b.SetPieceAt(sq, Piece{Color: White, Role: Rook}, false)
	b.SetPieceAt(sq, Piece{Color: Black, Role: Knight}, true)

	p, ok := b.PieceAt(sq)
	if !ok || p.Color != Black || p.Role != Knight {
		t.Fatalf("overwritten piece = %v, %v; want black knight", p, ok)
	}
	if !b.IsPromoted(sq) {
		t.Errorf("IsPromoted should be true after SetPieceAt(..., true)")
	}
	if b.ByPiece(Piece{Color: White, Role: Rook}).Any() {
		t.Errorf("the overwritten white rook should no longer be tracked")
	}
}

func TestBoardKingOf(t *testing.T) {
	b := EmptyBoard()
	sq := NewSquare(FileE, Rank1)
	b.SetPieceAt(sq, Piece{Color: White, Role: King}, false)
	got, ok := b.KingOf(White)
	if !ok || got != sq {
		t.Fatalf("KingOf(White) = %v, %v; want e1, true", got, ok)
	}
	if _, ok := b.KingOf(Black); ok {
		t.Errorf("KingOf(Black) should report false on an empty board")
	}
}

func TestBoardAttackersTo(t *testing.T) {
	b := EmptyBoard()
	b.SetPieceAt(NewSquare(FileA, Rank1), Piece{Color: White, Role: Rook}, false)
	b.SetPieceAt(NewSquare(FileH, Rank8), Piece{Color: Black, Role: King}, false)
	attackers := b.AttackersTo(NewSquare(FileA, Rank8), White, b.Occupied())
	if !attackers.Contains(NewSquare(FileA, Rank1)) {
		t.Errorf("rook on a1 should attack a8 along the open file")
	}
}

func TestInsufficientMaterialForBothSides(t *testing.T) {
	b := EmptyBoard()
	b.SetPieceAt(NewSquare(FileE, Rank1), Piece{Color: White, Role: King}, false)
	b.SetPieceAt(NewSquare(FileE, Rank8), Piece{Color: Black, Role: King}, false)
	if !InsufficientMaterialForBothSides(b) {
		t.Errorf("bare kings should be insufficient material")
	}

	b.SetPieceAt(NewSquare(FileD, Rank1), Piece{Color: White, Role: Queen}, false)
	if InsufficientMaterialForBothSides(b) {
		t.Errorf("a queen on the board should be sufficient material")
	}
}

func TestInsufficientMaterialForBothSidesSameColorBishops(t *testing.T) {
	b := EmptyBoard()
	b.SetPieceAt(NewSquare(FileE, Rank1), Piece{Color: White, Role: King}, false)
	b.SetPieceAt(NewSquare(FileE, Rank8), Piece{Color: Black, Role: King}, false)
	b.SetPieceAt(NewSquare(FileC, Rank1), Piece{Color: White, Role: Bishop}, false) // dark square
	b.SetPieceAt(NewSquare(FileF, Rank8), Piece{Color: Black, Role: Bishop}, false) // dark square
	if !InsufficientMaterialForBothSides(b) {
		t.Errorf("same-color-complex bishops on both sides should be insufficient material")
	}
}
