// Package output writes per-game reports as tab-separated text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Options selects the optional report columns.
type Options struct {
	ShowScores bool
	ListMoves  bool
}

// winnerName returns the winning colour, or "-" if the game has none.
func winnerName(result worker.ProcessResult) string {
	if colour, ok := result.Verdict.Winner(); ok {
		return colour.String()
	}
	return "-"
}

// WriteText writes a one-line report for a game: number, status, winner,
// plies, optional scores and the final position. Legal moves follow on an
// indented line when requested.
func WriteText(w io.Writer, result worker.ProcessResult, opts Options) {
	if result.FEN == "" {
		fmt.Fprintf(w, "%d\terror\n", result.Index+1)
		return
	}

	fmt.Fprintf(w, "%d\t%v\t%s\t%d", result.Index+1, result.Verdict.Status, winnerName(result), result.Plies)
	if opts.ShowScores {
		fmt.Fprintf(w, "\t%d-%d", result.Scores[chess.White], result.Scores[chess.Black])
	}
	if result.Error != nil {
		fmt.Fprint(w, "\trejected")
	}
	fmt.Fprintf(w, "\t%s\n", result.FEN)

	if opts.ListMoves && len(result.Moves) > 0 {
		fmt.Fprintf(w, "\t%s\n", strings.Join(result.Moves, " "))
	}
}
