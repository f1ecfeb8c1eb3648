package chess

import "testing"

func TestBitboardSetAlgebra(t *testing.T) {
	a := BB(NewSquare(FileA, Rank1)).Insert(NewSquare(FileB, Rank2))
	b := BB(NewSquare(FileB, Rank2)).Insert(NewSquare(FileC, Rank3))

	if got := a.Union(b).Count(); got != 3 {
		t.Errorf("Union count = %d, want 3", got)
	}
	if got := a.Inter(b).Count(); got != 1 {
		t.Errorf("Inter count = %d, want 1", got)
	}
	if got := a.Diff(b).Count(); got != 1 {
		t.Errorf("Diff count = %d, want 1", got)
	}
	if !a.Diff(b).Contains(NewSquare(FileA, Rank1)) {
		t.Errorf("Diff should retain a1")
	}
}

func TestBitboardSingletonPredicates(t *testing.T) {
	single := BB(NewSquare(FileD, Rank4))
	if !single.ExactlyOne() {
		t.Errorf("ExactlyOne should be true for a singleton")
	}
	if single.MoreThanOne() {
		t.Errorf("MoreThanOne should be false for a singleton")
	}
	pair := single.Insert(NewSquare(FileE, Rank5))
	if pair.ExactlyOne() {
		t.Errorf("ExactlyOne should be false for a pair")
	}
	if !pair.MoreThanOne() {
		t.Errorf("MoreThanOne should be true for a pair")
	}
}

func TestBitboardFirstLastPopFirst(t *testing.T) {
	bb := BB(NewSquare(FileC, Rank3)).Insert(NewSquare(FileF, Rank6))
	first, ok := bb.First()
	if !ok || first != NewSquare(FileC, Rank3) {
		t.Fatalf("First() = %v, want c3", first)
	}
	last, ok := bb.Last()
	if !ok || last != NewSquare(FileF, Rank6) {
		t.Fatalf("Last() = %v, want f6", last)
	}
	popped, ok := bb.PopFirst()
	if !ok || popped != first {
		t.Fatalf("PopFirst() = %v, want %v", popped, first)
	}
	if bb.Count() != 1 {
		t.Fatalf("PopFirst should mutate the receiver, leaving one member")
	}
}

func TestBitboardIterator(t *testing.T) {
	want := []Square{NewSquare(FileA, Rank1), NewSquare(FileD, Rank4), NewSquare(FileH, Rank8)}
	var bb Bitboard
	for _, sq := range want {
		bb = bb.Insert(sq)
	}
	var got []Square
	it := bb.Squares()
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		got = append(got, sq)
	}
	if len(got) != len(want) {
		t.Fatalf("iterated %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("squares[%d] = %v, want %v (ascending order)", i, got[i], want[i])
		}
	}
}

func TestFileAndRankBB(t *testing.T) {
	if got := FileBB(FileA).Count(); got != 8 {
		t.Errorf("FileBB(a) count = %d, want 8", got)
	}
	if got := RankBB(Rank1).Count(); got != 8 {
		t.Errorf("RankBB(1) count = %d, want 8", got)
	}
	if !FileBB(FileE).Contains(NewSquare(FileE, Rank4)) {
		t.Errorf("FileBB(e) should contain e4")
	}
}

func TestRelativeRank(t *testing.T) {
	if RelativeRank(White, Rank1) != Rank1 {
		t.Errorf("RelativeRank(White, 1) should be 1")
	}
	if RelativeRank(Black, Rank1) != Rank8 {
		t.Errorf("RelativeRank(Black, 1) should be 8")
	}
}
