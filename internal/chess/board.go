package chess

// Board is the 8x8 grid of optional pieces. Squares[row][col] holds a
// coloured piece or Empty.
//
// Board is a plain value: assigning or copying it yields an independent
// grid, which is what legality simulation relies on.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
// Black occupies rows 0 and 1, White rows 6 and 7.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on the given square, or Empty if the square is
// empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Occupied returns every square holding a piece of the given colour, in
// row-major order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece != Empty && ExtractColour(piece) == colour {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Count returns how many pieces of the given type and colour are on the
// board. Passing Empty counts all pieces of that colour.
func (b *Board) Count(colour Colour, pieceType Piece) int {
	n := 0
	for _, sq := range b.Occupied(colour) {
		if pieceType == Empty || ExtractPiece(b.Get(sq)) == pieceType {
			n++
		}
	}
	return n
}
