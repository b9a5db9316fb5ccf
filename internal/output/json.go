package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// JSONGame represents a played game in JSON format.
type JSONGame struct {
	Game     int         `json:"game"`
	Session  string      `json:"session,omitempty"`
	Status   string      `json:"status"`
	ToMove   string      `json:"toMove,omitempty"`
	Winner   string      `json:"winner,omitempty"`
	PlyCount int         `json:"plyCount"`
	Scores   *JSONScores `json:"scores,omitempty"`
	FinalFEN string      `json:"finalFEN,omitempty"`
	Moves    []string    `json:"legalMoves,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// JSONScores holds the material captured by each side.
type JSONScores struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// ResultToJSON converts a played game to JSON format.
func ResultToJSON(result worker.ProcessResult, opts Options) *JSONGame {
	jg := &JSONGame{
		Game:     result.Index + 1,
		Session:  result.ID,
		PlyCount: result.Plies,
		FinalFEN: result.FEN,
	}
	if result.Error != nil {
		jg.Error = result.Error.Error()
	}
	if result.FEN == "" {
		jg.Status = "error"
		return jg
	}

	jg.Status = result.Verdict.Status.String()
	jg.ToMove = result.Verdict.ToMove.String()
	if colour, ok := result.Verdict.Winner(); ok {
		jg.Winner = colour.String()
	}
	if opts.ShowScores {
		jg.Scores = &JSONScores{
			White: result.Scores[chess.White],
			Black: result.Scores[chess.Black],
		}
	}
	if opts.ListMoves {
		jg.Moves = result.Moves
	}
	return jg
}

// WriteJSON writes every game as a single indented JSON document.
func WriteJSON(w io.Writer, results []worker.ProcessResult, opts Options) error {
	games := make([]*JSONGame, len(results))
	for i, result := range results {
		games[i] = ResultToJSON(result, opts)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: games})
}
