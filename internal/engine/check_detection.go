package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// AttackOracle answers whether a square is attacked by a side.
// The legality filter and the terminal state evaluator only consult the
// board through this interface, so a cached or incremental implementation
// can replace ScanOracle without touching them.
type AttackOracle interface {
	IsAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool
}

// ScanOracle recomputes attacks from scratch on every call by scanning all
// pieces of the attacking side.
type ScanOracle struct{}

// IsAttacked returns true if any piece of byColour could capture onto target.
func (ScanOracle) IsAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		for _, sq := range attackProjection(board, from) {
			if sq == target {
				return true
			}
		}
	}
	return false
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func (e *Engine) IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return e.oracle.IsAttacked(board, king, colour.Opposite())
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return defaultEngine.IsInCheck(board, colour)
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	return defaultEngine.oracle.IsAttacked(board, target, byColour)
}
