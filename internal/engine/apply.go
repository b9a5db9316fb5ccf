package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveResult reports the side effects of an applied move.
type MoveResult struct {
	// The piece type captured on the destination (Empty if no capture).
	Captured chess.Piece

	// Whether a pawn was promoted to a queen.
	Promoted bool
}

// IsCapture returns true if the move captured a piece.
func (r MoveResult) IsCapture() bool {
	return r.Captured != chess.Empty
}

// CapturedValue returns the material value of the captured piece.
func (r MoveResult) CapturedValue() int {
	return r.Captured.Value()
}

// ApplyMove moves the piece on from to to, discarding whatever stood on to.
// A pawn reaching its promotion row becomes a queen.
//
// The move is not validated; callers must only pass moves obtained from
// LegalDestinations for the current board.
func ApplyMove(board *chess.Board, from, to chess.Square) MoveResult {
	var result MoveResult

	piece := board.Get(from)
	if captured := board.Get(to); captured != chess.Empty {
		result.Captured = chess.ExtractPiece(captured)
	}

	board.Set(from, chess.Empty)

	colour := chess.ExtractColour(piece)
	if chess.ExtractPiece(piece) == chess.Pawn && to.Row == PromotionRow(colour) {
		piece = chess.MakeColouredPiece(colour, chess.Queen)
		result.Promoted = true
	}
	board.Set(to, piece)

	return result
}
