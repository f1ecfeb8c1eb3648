package chess

import "github.com/kvchess/chesscore/internal/sliders"

// Precomputed, read-only attack data. Built once in init(), matching the
// "process-wide read-only data initialized once before any Position
// operation" contract (§5 of the design doc).
var (
	kingAttacksTable   [64]Bitboard
	knightAttacksTable [64]Bitboard
	pawnAttacksTable   [2][64]Bitboard

	rayDir     [64][8]Bitboard // full ray from sq to the edge, direction index, excluding sq
	betweenTbl [64][64]Bitboard
	rayTbl     [64][64]Bitboard
)

// direction indices into rayDir.
const (
	dirN = iota
	dirS
	dirE
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var directionDeltas = [8][2]int{
	dirN:  {0, 1},
	dirS:  {0, -1},
	dirE:  {1, 0},
	dirW:  {-1, 0},
	dirNE: {1, 1},
	dirNW: {-1, 1},
	dirSE: {1, -1},
	dirSW: {-1, -1},
}

var oppositeDirection = [8]int{dirS, dirN, dirW, dirE, dirSW, dirSE, dirNW, dirNE}

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		for _, d := range knightDeltas {
			if to, ok := sq.Offset(d[0], d[1]); ok {
				knightAttacksTable[sq] = knightAttacksTable[sq].Insert(to)
			}
		}
		for _, d := range kingDeltas {
			if to, ok := sq.Offset(d[0], d[1]); ok {
				kingAttacksTable[sq] = kingAttacksTable[sq].Insert(to)
			}
		}
		if to, ok := sq.Offset(-1, 1); ok {
			pawnAttacksTable[White][sq] = pawnAttacksTable[White][sq].Insert(to)
		}
		if to, ok := sq.Offset(1, 1); ok {
			pawnAttacksTable[White][sq] = pawnAttacksTable[White][sq].Insert(to)
		}
		if to, ok := sq.Offset(-1, -1); ok {
			pawnAttacksTable[Black][sq] = pawnAttacksTable[Black][sq].Insert(to)
		}
		if to, ok := sq.Offset(1, -1); ok {
			pawnAttacksTable[Black][sq] = pawnAttacksTable[Black][sq].Insert(to)
		}
		for dir, d := range directionDeltas {
			cur := sq
			var bb Bitboard
			for {
				next, ok := cur.Offset(d[0], d[1])
				if !ok {
					break
				}
				bb = bb.Insert(next)
				cur = next
			}
			rayDir[sq][dir] = bb
		}
	}
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			dir := directionBetween(a, b)
			if dir < 0 {
				continue
			}
			opp := oppositeDirection[dir]
			betweenTbl[a][b] = rayDir[a][dir] & rayDir[b][opp]
			rayTbl[a][b] = rayDir[a][dir] | rayDir[a][opp] | squareMask(a)
		}
	}
}

// directionBetween returns the direction index from a towards b if they lie
// on a common rank, file or diagonal, or -1 otherwise.
func directionBetween(a, b Square) int {
	df := int(b.File()) - int(a.File())
	dr := int(b.Rank()) - int(a.Rank())
	switch {
	case df == 0 && dr > 0:
		return dirN
	case df == 0 && dr < 0:
		return dirS
	case dr == 0 && df > 0:
		return dirE
	case dr == 0 && df < 0:
		return dirW
	case df == dr && df > 0:
		return dirNE
	case df == -dr && df < 0:
		return dirNW
	case df == -dr && df > 0:
		return dirSE
	case df == dr && df < 0:
		return dirSW
	}
	return -1
}

// KingAttacks returns the king's static move mask from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacksTable[sq] }

// KnightAttacks returns the knight's static move mask from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacksTable[sq] }

// PawnAttacks returns the diagonal forward capture squares for a pawn of
// color c on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacksTable[c][sq] }

// RookAttacks returns every square a rook on sq attacks given occupancy occ,
// stopping at (and including) the first occupied square in each direction.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return Bitboard(sliders.RookAttacks(uint64(occ), int(sq)))
}

// BishopAttacks returns every square a bishop on sq attacks given occupancy
// occ, stopping at (and including) the first occupied square in each
// direction.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return Bitboard(sliders.BishopAttacks(uint64(occ), int(sq)))
}

// QueenAttacks returns RookAttacks(sq, occ) | BishopAttacks(sq, occ).
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return Bitboard(sliders.QueenAttacks(uint64(occ), int(sq)))
}

// Between returns the squares strictly between a and b if they share a
// rank, file or diagonal, or Empty otherwise.
func Between(a, b Square) Bitboard {
	return betweenTbl[a][b]
}

// Ray returns the full rank/file/diagonal line through a and b, including
// both endpoints, or Empty if they do not share one.
func Ray(a, b Square) Bitboard {
	if a == b {
		return squareMask(a)
	}
	return rayTbl[a][b]
}

// Aligned reports whether a, b and c are collinear on a common rank, file
// or diagonal.
func Aligned(a, b, c Square) bool {
	line := Ray(a, b)
	return line != 0 && line.Contains(c)
}
