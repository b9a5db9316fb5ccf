package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Status classifies a position for the side to move.
type Status int

const (
	Ongoing      Status = iota // Game continues, side to move is not attacked
	Check                      // Game continues, side to move is in check
	Checkmate                  // Side to move is in check with no legal move
	Stalemate                  // Side to move has no legal move and is not in check
	KingCaptured               // Side to move has no king on the board
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"ongoing", "check", "checkmate", "stalemate", "king captured"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Terminal returns true if the status ends the game.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == KingCaptured
}

// Verdict is the result of evaluating a position for the side to move.
type Verdict struct {
	Status Status
	ToMove chess.Colour // The side that was evaluated
}

// Winner returns the winning colour. The second result is false unless
// the status is Checkmate or KingCaptured.
func (v Verdict) Winner() (chess.Colour, bool) {
	switch v.Status {
	case Checkmate, KingCaptured:
		return v.ToMove.Opposite(), true
	default:
		return chess.White, false
	}
}

// String describes the verdict, naming the winner when there is one.
func (v Verdict) String() string {
	if winner, ok := v.Winner(); ok {
		return fmt.Sprintf("%s, %v wins", v.Status, winner)
	}
	if v.Status == Stalemate {
		return "stalemate, draw"
	}
	return v.Status.String()
}

// Evaluate classifies the position for toMove, the side now to move.
//
// A missing king is reported as KingCaptured before anything else. Legal
// move generation should make that unreachable; it is kept as a terminal
// branch for boards built by hand or by rule variants.
func (e *Engine) Evaluate(board *chess.Board, toMove chess.Colour) Verdict {
	verdict := Verdict{ToMove: toMove}

	king, ok := FindKing(board, toMove)
	if !ok {
		verdict.Status = KingCaptured
		return verdict
	}

	inCheck := e.oracle.IsAttacked(board, king, toMove.Opposite())
	hasMove := e.HasLegalMoves(board, toMove)

	switch {
	case !hasMove && inCheck:
		verdict.Status = Checkmate
	case !hasMove:
		verdict.Status = Stalemate
	case inCheck:
		verdict.Status = Check
	default:
		verdict.Status = Ongoing
	}
	return verdict
}

// Evaluate classifies the position for the side to move.
func Evaluate(board *chess.Board, toMove chess.Colour) Verdict {
	return defaultEngine.Evaluate(board, toMove)
}

// IsCheckmate returns true if the position is checkmate for the given colour.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return Evaluate(board, colour).Status == Checkmate
}

// IsStalemate returns true if the position is stalemate for the given colour.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return Evaluate(board, colour).Status == Stalemate
}
