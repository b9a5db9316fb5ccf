// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// pieceValues holds the material value of each piece type.
var pieceValues = [NumPieceValues]int{
	Empty:  0,
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// Value returns the material value of a piece type.
func (p Piece) Value() int {
	if p < 0 || p >= NumPieceValues {
		return 0
	}
	return pieceValues[p]
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// Square identifies a cell by row and column, both in [0, BoardSize).
// Row 0 is Black's back rank; White pawns move towards it.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InsideBoard reports whether the coordinates denote a square on the board.
func InsideBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return InsideBoard(s.Row, s.Col)
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	col := int(name[0]) - 'a'
	row := '8' - int(name[1])
	if !InsideBoard(row, col) {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: row, Col: col}, nil
}

// Move is an origin and destination pair. Captures and promotions are
// implied by the board the move is applied to.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a coordinate move such as "e2e4" or "e2-e4".
func ParseMove(text string) (Move, error) {
	switch {
	case len(text) == 4:
	case len(text) == 5 && text[2] == '-':
		text = text[:2] + text[3:]
	default:
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Expected: "move like e2e4", Got: fmt.Sprintf("%q", text)}
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
