package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offsets are {dRow, dCol} pairs.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// PawnDirection returns the row step of a forward pawn move:
// -1 for White, +1 for Black.
func PawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row on which the colour's pawns begin.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// PromotionRow returns the row farthest from the colour's starting side.
func PromotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// PseudoLegalDestinations returns the squares the piece on from can move to
// by its movement rules alone, without regard to the safety of its own king.
// It returns nil if from is empty or holds a piece not belonging to toMove.
// The order of the result is unspecified.
func PseudoLegalDestinations(board *chess.Board, from chess.Square, toMove chess.Colour) []chess.Square {
	piece := board.Get(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != toMove {
		return nil
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnDestinations(board, from, toMove)
	case chess.Knight:
		return stepTargets(board, from, toMove, knightOffsets, false)
	case chess.King:
		return stepTargets(board, from, toMove, kingOffsets, false)
	case chess.Bishop:
		return rayTargets(board, from, toMove, diagonalDirs, false)
	case chess.Rook:
		return rayTargets(board, from, toMove, straightDirs, false)
	case chess.Queen:
		return rayTargets(board, from, toMove, queenDirs, false)
	}
	return nil
}

// pawnDestinations generates forward pushes and diagonal captures.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := PawnDirection(colour)

	one := chess.Sq(from.Row+dir, from.Col)
	if one.Valid() && board.Get(one) == chess.Empty {
		moves = append(moves, one)
		two := chess.Sq(from.Row+2*dir, from.Col)
		if from.Row == pawnStartRow(colour) && two.Valid() && board.Get(two) == chess.Empty {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		to := chess.Sq(from.Row+dir, from.Col+dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// stepTargets returns the on-board squares at the given offsets from from.
// Squares holding a piece of colour are skipped unless includeOwn is set.
func stepTargets(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, includeOwn bool) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to := chess.Sq(from.Row+offset[0], from.Col+offset[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if includeOwn || target == chess.Empty || chess.ExtractColour(target) != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// rayTargets casts a ray from from along each direction until the board
// edge or the first occupied square. That square is included when it holds
// an opposing piece, or always when includeBlockers is set.
func rayTargets(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, includeBlockers bool) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := chess.Sq(from.Row+dir[0], from.Col+dir[1])
		for to.Valid() {
			target := board.Get(to)
			if target != chess.Empty {
				if includeBlockers || chess.ExtractColour(target) != colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to = chess.Sq(to.Row+dir[0], to.Col+dir[1])
		}
	}
	return targets
}

// attackProjection returns every square the piece on from could capture
// onto. Pawns project only onto their two forward diagonals, occupied or
// not; other pieces project along their movement pattern, including the
// first blocker of either colour.
func attackProjection(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		var targets []chess.Square
		dir := PawnDirection(colour)
		for _, dc := range []int{-1, 1} {
			if to := chess.Sq(from.Row+dir, from.Col+dc); to.Valid() {
				targets = append(targets, to)
			}
		}
		return targets
	case chess.Knight:
		return stepTargets(board, from, colour, knightOffsets, true)
	case chess.King:
		return stepTargets(board, from, colour, kingOffsets, true)
	case chess.Bishop:
		return rayTargets(board, from, colour, diagonalDirs, true)
	case chess.Rook:
		return rayTargets(board, from, colour, straightDirs, true)
	case chess.Queen:
		return rayTargets(board, from, colour, queenDirs, true)
	}
	return nil
}
