package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed into a 64-bit integer: square s is a
// member iff bit s is set. The least significant bit is a1, the most
// significant is h8.
type Bitboard uint64

// Empty is the bitboard with no members.
const Empty Bitboard = 0

// squareMask returns the singleton bitboard for sq.
func squareMask(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// BB returns the singleton bitboard containing sq.
func BB(sq Square) Bitboard {
	return squareMask(sq)
}

// FileBB returns every square on file f.
func FileBB(f File) Bitboard {
	return fileMasks[f]
}

// RankBB returns every square on rank r.
func RankBB(r Rank) Bitboard {
	return rankMasks[r]
}

// RelativeRank returns rank r as seen from color c's side of the board: rank
// 1 always means "my own back rank" regardless of color.
func RelativeRank(c Color, r Rank) Rank {
	return Fold(c, r, Rank(7-r))
}

// RelativeRankBB returns the rank bitboard for RelativeRank(c, r).
func RelativeRankBB(c Color, r Rank) Bitboard {
	return RankBB(RelativeRank(c, r))
}

var (
	fileMasks [8]Bitboard
	rankMasks [8]Bitboard
)

func init() {
	for f := File(0); f < 8; f++ {
		var bb Bitboard
		for r := Rank(0); r < 8; r++ {
			bb |= squareMask(NewSquare(f, r))
		}
		fileMasks[f] = bb
	}
	for r := Rank(0); r < 8; r++ {
		var bb Bitboard
		for f := File(0); f < 8; f++ {
			bb |= squareMask(NewSquare(f, r))
		}
		rankMasks[r] = bb
	}
}

// Insert returns b with sq added.
func (b Bitboard) Insert(sq Square) Bitboard {
	return b | squareMask(sq)
}

// Remove returns b with sq removed.
func (b Bitboard) Remove(sq Square) Bitboard {
	return b &^ squareMask(sq)
}

// Flip returns b with sq's membership toggled.
func (b Bitboard) Flip(sq Square) Bitboard {
	return b ^ squareMask(sq)
}

// Contains reports whether sq is a member of b.
func (b Bitboard) Contains(sq Square) bool {
	return b&squareMask(sq) != 0
}

// Union returns the set union.
func (b Bitboard) Union(o Bitboard) Bitboard { return b | o }

// Inter returns the set intersection.
func (b Bitboard) Inter(o Bitboard) Bitboard { return b & o }

// Diff returns the squares in b but not in o.
func (b Bitboard) Diff(o Bitboard) Bitboard { return b &^ o }

// Complement returns every square not in b.
func (b Bitboard) Complement() Bitboard { return ^b }

// IsEmpty reports whether b has no members.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Any reports whether b has at least one member.
func (b Bitboard) Any() bool { return b != 0 }

// Count returns the number of members (popcount).
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// ExactlyOne reports whether b has precisely one member.
func (b Bitboard) ExactlyOne() bool { return b != 0 && b&(b-1) == 0 }

// MoreThanOne reports whether b has two or more members.
func (b Bitboard) MoreThanOne() bool { return b&(b-1) != 0 }

// First returns the lowest-indexed member and true, or (NoSquare, false) if
// b is empty.
func (b Bitboard) First() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// Last returns the highest-indexed member and true, or (NoSquare, false) if
// b is empty.
func (b Bitboard) Last() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(63 - bits.LeadingZeros64(uint64(b))), true
}

// PopFirst removes and returns the lowest-indexed member.
func (b *Bitboard) PopFirst() (Square, bool) {
	sq, ok := b.First()
	if ok {
		*b = b.Remove(sq)
	}
	return sq, ok
}

// RelativeShift shifts every member one rank towards the opponent's side
// (north for White, south for Black), n times. Squares that would fall off
// the board's north/south edge are dropped.
func (b Bitboard) RelativeShift(c Color, n int) Bitboard {
	shift := uint(n) * 8
	if c == White {
		return b << shift
	}
	return b >> shift
}

// Iterator walks a bitboard's members from lowest to highest square index.
type Iterator struct{ bb Bitboard }

// Squares returns a forward (ascending) iterator over b's members.
func (b Bitboard) Squares() Iterator { return Iterator{bb: b} }

// Next returns the next square in ascending order, or (NoSquare, false) when
// exhausted.
func (it *Iterator) Next() (Square, bool) {
	return it.bb.PopFirst()
}

// ReverseIterator walks a bitboard's members from highest to lowest square
// index.
type ReverseIterator struct{ bb Bitboard }

// ReverseSquares returns a reverse (descending) iterator over b's members.
func (b Bitboard) ReverseSquares() ReverseIterator { return ReverseIterator{bb: b} }

// Next returns the next square in descending order, or (NoSquare, false)
// when exhausted.
func (it *ReverseIterator) Next() (Square, bool) {
	sq, ok := it.bb.Last()
	if ok {
		it.bb = it.bb.Remove(sq)
	}
	return sq, ok
}

// String renders b as an 8x8 diagram, rank 8 first, useful for debugging
// (mirrors the teacher's bitboard.Draw/Board.Draw debug views).
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank(7); r >= 0; r-- {
		for f := File(0); f < 8; f++ {
			if b.Contains(NewSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if f < 7 {
				sb.WriteByte(' ')
			}
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
