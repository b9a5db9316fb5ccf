package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// mustBoard parses a FEN position, failing the test on error.
func mustBoard(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board, toMove
}

func TestPseudoLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"pawn on starting square", InitialFEN, "e2", []string{"e3", "e4"}},
		{"black pawn on starting square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1", "d7", []string{"d6", "d5"}},
		{"pawn off starting rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", []string{"e4"}},
		{"pawn blocked directly", "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e2", nil},
		{"pawn double step blocked", "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1", "e2", []string{"e3"}},
		{"pawn captures both diagonals", "4k3/8/8/8/8/3p1n2/4P3/4K3 w - - 0 1", "e2", []string{"e3", "e4", "d3", "f3"}},
		{"pawn does not capture own piece", "4k3/8/8/8/8/3P4/4P3/4K3 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"rook stops before own king", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1"}},
		{"rook captures first opposing piece", "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "b1", "c1", "d1"}},
		{"bishop in the centre", "4k3/8/8/8/3B4/8/8/4K3 w - - 0 1", "d4",
			[]string{"c5", "b6", "a7", "e5", "f6", "g7", "h8", "c3", "b2", "a1", "e3", "f2", "g1"}},
		{"queen in the centre", "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1", "d4",
			[]string{"c5", "b6", "a7", "e5", "f6", "g7", "h8", "c3", "b2", "a1", "e3", "f2", "g1",
				"d5", "d6", "d7", "d8", "d3", "d2", "d1", "c4", "b4", "a4", "e4", "f4", "g4", "h4"}},
		{"knight in the corner", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", "a1", []string{"b3", "c2"}},
		{"knight with own and opposing targets", "4k3/8/3p1P2/8/4N3/8/8/4K3 w - - 0 1", "e4",
			[]string{"c3", "c5", "d2", "d6", "f2", "g3", "g5"}},
		{"king next to own pawn", "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1", "e1", []string{"d1", "e2", "f1", "f2"}},
		{"empty square", InitialFEN, "e4", nil},
		{"opposing piece", InitialFEN, "e7", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, toMove := mustBoard(t, tt.fen)
			got := PseudoLegalDestinations(board, testutil.MustSquare(t, tt.from), toMove)
			testutil.AssertSquareSet(t, got, tt.want)
		})
	}
}

func TestPseudoLegalDestinations_SideMismatch(t *testing.T) {
	board := chess.NewInitialBoard()
	if got := PseudoLegalDestinations(board, testutil.MustSquare(t, "e2"), chess.Black); got != nil {
		t.Errorf("PseudoLegalDestinations(e2, Black) = %v; want nil", got)
	}
	if got := PseudoLegalDestinations(board, testutil.MustSquare(t, "g8"), chess.White); got != nil {
		t.Errorf("PseudoLegalDestinations(g8, White) = %v; want nil", got)
	}
}

func TestEmptySquaresHaveNoDestinations(t *testing.T) {
	board := chess.NewInitialBoard()
	for row := 2; row <= 5; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				if got := LegalDestinations(board, chess.Sq(row, col), colour); len(got) != 0 {
					t.Errorf("LegalDestinations(%v, %v) = %v; want empty", chess.Sq(row, col), colour, got)
				}
			}
		}
	}
}

func TestPawnDirectionAndPromotionRow(t *testing.T) {
	testutil.AssertEqual(t, PawnDirection(chess.White), -1)
	testutil.AssertEqual(t, PawnDirection(chess.Black), 1)
	testutil.AssertEqual(t, PromotionRow(chess.White), 0)
	testutil.AssertEqual(t, PromotionRow(chess.Black), 7)
}
