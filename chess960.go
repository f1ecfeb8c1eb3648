package chess

// knightTable enumerates, in Scharnagl's standard Chess960 numbering, the
// 10 ways to place two indistinguishable knights among 5 remaining empty
// files once both bishops and the queen have been seated.
var knightTable = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

func emptyFiles(pieces [8]Role) []File {
	var out []File
	for f := File(0); f < 8; f++ {
		if pieces[f] == NoRole {
			out = append(out, f)
		}
	}
	return out
}

// chess960BackRank computes the back-rank piece arrangement for Scharnagl
// number n (0..959): the light-squared bishop, then the dark-squared
// bishop, then the queen, then the two knights each take the lowest-index
// remaining empty file for their respective counts, and finally the three
// files left over are Rook/King/Rook in file order — which guarantees the
// king always ends up between the two rooks.
func chess960BackRank(n int) [8]Role {
	n %= 960
	if n < 0 {
		n += 960
	}

	lightBishopFile := n % 4
	n /= 4
	darkBishopFile := n % 4
	n /= 4
	queenSlot := n % 6
	n /= 6
	knightPair := knightTable[n%10]

	var pieces [8]Role
	pieces[2*lightBishopFile+1] = Bishop
	pieces[2*darkBishopFile] = Bishop

	empty := emptyFiles(pieces)
	pieces[empty[queenSlot]] = Queen

	empty = emptyFiles(pieces)
	pieces[empty[knightPair[0]]] = Knight
	pieces[empty[knightPair[1]]] = Knight

	empty = emptyFiles(pieces)
	pieces[empty[0]] = Rook
	pieces[empty[1]] = King
	pieces[empty[2]] = Rook

	return pieces
}

// Chess960StartingPosition returns the Fischer Random starting position
// numbered n (0..959 per the standard Scharnagl numbering; out-of-range n
// is reduced modulo 960), mirrored identically for both colors with full
// castling rights on both original rook files.
func Chess960StartingPosition(n int) Position {
	backRank := chess960BackRank(n)

	board := EmptyBoard()
	var castling CastlingRights
	for f := File(0); f < 8; f++ {
		role := backRank[f]
		board.SetPieceAt(NewSquare(f, Rank1), Piece{Color: White, Role: role}, false)
		board.SetPieceAt(NewSquare(f, Rank8), Piece{Color: Black, Role: role}, false)
		board.SetPieceAt(NewSquare(f, Rank2), Piece{Color: White, Role: Pawn}, false)
		board.SetPieceAt(NewSquare(f, Rank7), Piece{Color: Black, Role: Pawn}, false)
		if role == Rook {
			castling |= CastlingRights(squareMask(NewSquare(f, Rank1)))
			castling |= CastlingRights(squareMask(NewSquare(f, Rank8)))
		}
	}

	return Position{
		Board:    board,
		Turn:     White,
		Castling: castling,
		EPSquare: NoSquare,
		Fullmove: 1,
	}
}
