package chess

import "testing"

func TestCrazyhouseCaptureRefundsPocket(t *testing.T) {
	pos, err := ParsePositionText("4k3/8/3n4/4P3/8/8/8/4K3[] w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewNormalMove(Pawn, NewSquare(FileE, Rank5), NewSquare(FileD, Rank6), Knight, NoRole)
	next := pos.Play(m)
	if got := next.Pockets.Of(White).Count(Knight); got != 1 {
		t.Errorf("capturing a plain knight should refund a knight, got count %d", got)
	}
}

func TestCrazyhouseCapturingPromotedPieceRefundsPawn(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(NewSquare(FileE, Rank1), Piece{Color: White, Role: King}, false)
	board.SetPieceAt(NewSquare(FileE, Rank8), Piece{Color: Black, Role: King}, false)
	board.SetPieceAt(NewSquare(FileD, Rank6), Piece{Color: Black, Role: Queen}, true) // promoted from a pawn
	board.SetPieceAt(NewSquare(FileE, Rank5), Piece{Color: White, Role: Pawn}, false)

	pos := Position{Board: board, Turn: White, Variant: VariantCrazyhouse, EPSquare: NoSquare, Fullmove: 1}
	m := NewNormalMove(Pawn, NewSquare(FileE, Rank5), NewSquare(FileD, Rank6), Queen, NoRole)
	next := pos.Play(m)

	if got := next.Pockets.Of(White).Count(Queen); got != 0 {
		t.Errorf("capturing a promoted queen must not refund a queen, got count %d", got)
	}
	if got := next.Pockets.Of(White).Count(Pawn); got != 1 {
		t.Errorf("capturing a promoted queen should refund a pawn, got count %d", got)
	}
}

func TestCrazyhouseDropDebitsPocket(t *testing.T) {
	pos, err := ParsePositionText("4k3/8/8/8/8/8/8/4K3[N] w - - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Pockets.Of(White).Count(Knight) != 1 {
		t.Fatalf("setup error: expected one pocket knight")
	}
	m := NewPutMove(Knight, NewSquare(FileF, Rank3))
	next := pos.Play(m)
	if got := next.Pockets.Of(White).Count(Knight); got != 0 {
		t.Errorf("dropping the pocket knight should debit it, got count %d", got)
	}
	if next.Board.RoleAt(NewSquare(FileF, Rank3)) != Knight {
		t.Errorf("the dropped knight should land on f3")
	}
}

func TestThreeCheckDecrementsOnCheck(t *testing.T) {
	pos, err := ParsePositionText("4k3/8/8/8/7r/8/8/4K3 b - - 0 1 3+3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewNormalMove(Rook, NewSquare(FileH, Rank4), NewSquare(FileE, Rank4), NoRole, NoRole)
	next := pos.Play(m)
	if got := next.Checks.Of(White); got != 2 {
		t.Errorf("White's remaining checks after being checked = %d, want 2", got)
	}
	if got := next.Checks.Of(Black); got != 3 {
		t.Errorf("Black's remaining checks should be untouched, got %d", got)
	}
}

func TestThreeCheckOutcomeWinsOnThirdCheck(t *testing.T) {
	pos, err := ParsePositionText("4k3/8/8/8/7r/8/8/4K3 b - - 0 1 0+3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcome := pos.Outcome()
	if !outcome.HasWinner || outcome.Reason != ThreeCheckWin || outcome.Winner != Black {
		t.Errorf("Outcome() = %+v, want a Black ThreeCheckWin", outcome)
	}
}
