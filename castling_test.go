package chess

import "testing"

func TestStandardCastlingRights(t *testing.T) {
	cr := StandardCastlingRights()
	for _, sq := range []Square{
		NewSquare(FileA, Rank1), NewSquare(FileH, Rank1),
		NewSquare(FileA, Rank8), NewSquare(FileH, Rank8),
	} {
		if !cr.Has(sq) {
			t.Errorf("StandardCastlingRights should include %v", sq)
		}
	}
}

func TestCastlingRightsDiscard(t *testing.T) {
	cr := StandardCastlingRights()
	cr = cr.Discard(BB(NewSquare(FileA, Rank1)))
	if cr.Has(NewSquare(FileA, Rank1)) {
		t.Errorf("Discard should remove a1's right")
	}
	if !cr.Has(NewSquare(FileH, Rank1)) {
		t.Errorf("Discard should leave h1's right alone")
	}
}

func TestCastlingRightsDiscardColor(t *testing.T) {
	cr := StandardCastlingRights().DiscardColor(White)
	if cr.Has(NewSquare(FileA, Rank1)) || cr.Has(NewSquare(FileH, Rank1)) {
		t.Errorf("DiscardColor(White) should clear both white rights")
	}
	if !cr.Has(NewSquare(FileA, Rank8)) || !cr.Has(NewSquare(FileH, Rank8)) {
		t.Errorf("DiscardColor(White) should leave black rights alone")
	}
}

func TestKingSideAndCornerSquares(t *testing.T) {
	king := NewSquare(FileE, Rank1)
	if !KingSide(king, NewSquare(FileH, Rank1)) {
		t.Errorf("h1 rook should be king side of e1")
	}
	if KingSide(king, NewSquare(FileA, Rank1)) {
		t.Errorf("a1 rook should be queen side of e1")
	}

	kingTo, rookTo := CastlingCornerSquares(king, NewSquare(FileH, Rank1), Rank1)
	if kingTo != NewSquare(FileG, Rank1) || rookTo != NewSquare(FileF, Rank1) {
		t.Errorf("king-side corners = (%v,%v), want (g1,f1)", kingTo, rookTo)
	}
	kingTo, rookTo = CastlingCornerSquares(king, NewSquare(FileA, Rank1), Rank1)
	if kingTo != NewSquare(FileC, Rank1) || rookTo != NewSquare(FileD, Rank1) {
		t.Errorf("queen-side corners = (%v,%v), want (c1,d1)", kingTo, rookTo)
	}
}

func TestCastlingRightsRookSquareChess960(t *testing.T) {
	// A Chess960 setup where the king starts on b1 and rooks on a1/g1: the
	// king-side rook is the one with the greater file, regardless of
	// whether it sits on the conventional h-file.
	board := EmptyBoard()
	board.SetPieceAt(NewSquare(FileB, Rank1), Piece{Color: White, Role: King}, false)
	board.SetPieceAt(NewSquare(FileA, Rank1), Piece{Color: White, Role: Rook}, false)
	board.SetPieceAt(NewSquare(FileG, Rank1), Piece{Color: White, Role: Rook}, false)

	cr := CastlingRights(BB(NewSquare(FileA, Rank1)).Insert(NewSquare(FileG, Rank1)))
	if sq, ok := cr.RookSquare(board, White, true); !ok || sq != NewSquare(FileG, Rank1) {
		t.Errorf("king-side rook = %v, %v; want g1, true", sq, ok)
	}
	if sq, ok := cr.RookSquare(board, White, false); !ok || sq != NewSquare(FileA, Rank1) {
		t.Errorf("queen-side rook = %v, %v; want a1, true", sq, ok)
	}
}
