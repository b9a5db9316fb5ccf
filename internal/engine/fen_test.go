package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN_Initial(t *testing.T) {
	board, toMove := mustBoard(t, InitialFEN)

	testutil.AssertEqual(t, toMove, chess.White)
	if diff := cmp.Diff(*chess.NewInitialBoard(), *board); diff != "" {
		t.Errorf("initial FEN board mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBoardFromFEN_SideToMove(t *testing.T) {
	tests := []struct {
		fen  string
		want chess.Colour
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White},
		{"4k3/8/8/8/8/8/8/4K3 b - - 0 1", chess.Black},
		{"4k3/8/8/8/8/8/8/4K3 b KQkq e3 12 40", chess.Black},
		{"4k3/8/8/8/8/8/8/4K3", chess.White},
	}
	for _, tt := range tests {
		_, toMove := mustBoard(t, tt.fen)
		testutil.AssertEqual(t, toMove, tt.want, "side to move of %q", tt.fen)
	}
}

func TestNewBoardFromFEN_Placement(t *testing.T) {
	board, _ := mustBoard(t, "r3k2r/8/8/8/3Pp3/8/8/R3K2R b - - 0 1")

	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"a8", chess.B(chess.Rook)},
		{"e8", chess.B(chess.King)},
		{"h8", chess.B(chess.Rook)},
		{"d4", chess.W(chess.Pawn)},
		{"e4", chess.B(chess.Pawn)},
		{"a1", chess.W(chess.Rook)},
		{"e1", chess.W(chess.King)},
		{"d5", chess.Empty},
	}
	for _, tt := range tests {
		got := board.Get(testutil.MustSquare(t, tt.square))
		testutil.AssertEqual(t, got, tt.want, "piece on %s", tt.square)
	}
	testutil.AssertEqual(t, board.Count(chess.White, chess.Empty), 4, "white pieces")
	testutil.AssertEqual(t, board.Count(chess.Black, chess.Empty), 4, "black pieces")
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too few ranks", "8/8/8/8/8/8/8 w"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w"},
		{"piece past the edge", "4k3/8/8/8/8/8/8/8K w"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, _, err := NewBoardFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewBoardFromFEN(%q) = nil error; want ErrInvalidFEN", tt.fen)
			}
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
			if board != nil {
				t.Errorf("NewBoardFromFEN(%q) returned a board alongside an error", tt.fen)
			}
		})
	}
}

func TestToFEN(t *testing.T) {
	testutil.AssertEqual(t, ToFEN(chess.NewInitialBoard(), chess.White), InitialFEN)

	board := chess.NewBoard()
	board.Set(testutil.MustSquare(t, "e1"), chess.W(chess.King))
	board.Set(testutil.MustSquare(t, "e8"), chess.B(chess.King))
	board.Set(testutil.MustSquare(t, "h2"), chess.B(chess.Pawn))
	testutil.AssertEqual(t, ToFEN(board, chess.Black), "4k3/8/8/8/8/8/7p/4K3 b - - 0 1")
}

func TestFENRoundTrip(t *testing.T) {
	positions := []string{
		InitialFEN,
		"r3k2r/pp1q1ppp/2n2n2/3pp3/1b1PP3/2N2N2/PPPQ1PPP/R3KB1R w - - 0 1",
		"6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1",
		"8/8/8/8/8/5k2/5p2/5K2 w - - 0 1",
	}
	for _, fen := range positions {
		board, toMove := mustBoard(t, fen)
		testutil.AssertEqual(t, ToFEN(board, toMove), fen)
	}
}

func TestColouredPieceToFENLetter(t *testing.T) {
	testutil.AssertEqual(t, ColouredPieceToFENLetter(chess.W(chess.Knight)), byte('N'))
	testutil.AssertEqual(t, ColouredPieceToFENLetter(chess.B(chess.Knight)), byte('n'))
	testutil.AssertEqual(t, ConvertFENCharToPiece('q'), chess.Queen)
	testutil.AssertEqual(t, ConvertFENCharToPiece('x'), chess.Empty)
}
