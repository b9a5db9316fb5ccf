package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LeavesKingInCheck reports whether moving the piece on from to to would
// leave its own king attacked. The move is played on a copy of the board;
// the board passed in is never modified.
func (e *Engine) LeavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.Empty {
		return false
	}
	colour := chess.ExtractColour(piece)

	testBoard := board.Copy()
	testBoard.Set(to, piece)
	testBoard.Set(from, chess.Empty)

	king, ok := FindKing(testBoard, colour)
	if !ok {
		return false
	}
	return e.oracle.IsAttacked(testBoard, king, colour.Opposite())
}

// LegalDestinations returns the squares the piece on from may legally move
// to. It is empty if from is empty, holds an opposing piece, or toMove does
// not own it.
func (e *Engine) LegalDestinations(board *chess.Board, from chess.Square, toMove chess.Colour) []chess.Square {
	candidates := PseudoLegalDestinations(board, from, toMove)
	legal := candidates[:0]
	for _, to := range candidates {
		if !e.LeavesKingInCheck(board, from, to) {
			legal = append(legal, to)
		}
	}
	if len(legal) == 0 {
		return nil
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (e *Engine) HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour) {
		for _, to := range PseudoLegalDestinations(board, from, colour) {
			if !e.LeavesKingInCheck(board, from, to) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move for the given colour, grouped by
// origin square in row-major order.
func (e *Engine) AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		for _, to := range e.LegalDestinations(board, from, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// LeavesKingInCheck reports whether the move would expose the mover's king.
func LeavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	return defaultEngine.LeavesKingInCheck(board, from, to)
}

// LegalDestinations returns the legal destinations of the piece on from.
func LegalDestinations(board *chess.Board, from chess.Square, toMove chess.Colour) []chess.Square {
	return defaultEngine.LegalDestinations(board, from, toMove)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	return defaultEngine.HasLegalMoves(board, colour)
}

// AllLegalMoves returns every legal move for the given colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return defaultEngine.AllLegalMoves(board, colour)
}
