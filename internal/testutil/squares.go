package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// Squares parses a list of algebraic square names.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}

// SquareNames returns the sorted algebraic names of squares.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// AssertSquareSet compares two square collections ignoring order.
func AssertSquareSet(t *testing.T, got []chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	wantSorted := append([]string{}, want...)
	sort.Strings(wantSorted)
	if diff := cmp.Diff(wantSorted, SquareNames(got)); diff != "" {
		report(t, "square set mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
