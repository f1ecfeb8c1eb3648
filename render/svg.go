// Package render draws chess boards and positions as SVG, the way the
// teacher library's Board.Draw and bitboard.Draw produce an ASCII
// rendering for debugging — generalized here to a real output format
// using the teacher's one genuine direct dependency, ajstarks/svgo.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	chess "github.com/kvchess/chesscore"
)

const squareSize = 45

var pieceGlyphs = map[chess.Role]string{
	chess.Pawn:   "P",
	chess.Knight: "N",
	chess.Bishop: "B",
	chess.Rook:   "R",
	chess.Queen:  "Q",
	chess.King:   "K",
}

// WriteBoard draws an 8x8 diagram of b to w as an SVG document, light and
// dark squares checkered, each occupied square labeled with its uppercase
// role letter for either color; the letter's fill tells the colors apart
// (white or black, with a distinct tint for a promoted piece).
func WriteBoard(w io.Writer, b chess.Board) {
	canvas := svg.New(w)
	dim := squareSize * 8
	canvas.Start(dim, dim)
	defer canvas.End()
	drawBoard(canvas, b)
}

func drawBoard(canvas *svg.SVG, b chess.Board) {
	for r := chess.Rank(7); r >= 0; r-- {
		for f := chess.File(0); f < 8; f++ {
			sq := chess.NewSquare(f, r)
			x := int(f) * squareSize
			y := (7 - int(r)) * squareSize
			color := "#f0d9b5"
			if (int(f)+int(r))%2 == 0 {
				color = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			piece, ok := b.PieceAt(sq)
			if !ok {
				continue
			}
			glyph := pieceGlyphs[piece.Role]
			fill := "#000000"
			if piece.Color == chess.White {
				fill = "#ffffff"
				if b.IsPromoted(sq) {
					fill = "#ffd966"
				}
			} else if b.IsPromoted(sq) {
				fill = "#993333"
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+6, glyph,
				"text-anchor:middle;font-size:24px;font-weight:bold;fill:"+fill)
		}
	}
}

// WritePosition draws p's board, and additionally frames the en passant
// square (if any) and every checking piece, useful when visually auditing
// a LegalMoves/Checkers result.
func WritePosition(w io.Writer, p chess.Position) {
	canvas := svg.New(w)
	dim := squareSize * 8
	canvas.Start(dim, dim)
	defer canvas.End()

	drawBoard(canvas, p.Board)

	if p.EPSquare != chess.NoSquare {
		x := int(p.EPSquare.File()) * squareSize
		y := (7 - int(p.EPSquare.Rank())) * squareSize
		canvas.Rect(x, y, squareSize, squareSize, "fill:none;stroke:#3388ff;stroke-width:3")
	}

	checkers := p.Checkers()
	it := checkers.Squares()
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		x := int(sq.File()) * squareSize
		y := (7 - int(sq.Rank())) * squareSize
		canvas.Rect(x, y, squareSize, squareSize, "fill:none;stroke:#cc0000;stroke-width:3")
	}
}
