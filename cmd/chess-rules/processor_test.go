package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func TestReadGames(t *testing.T) {
	const input = `# comment line
f2f3 e7e5 g2g4 d8h4

7k/8/5Q2/6K1/8/8/8/8 w - - 0 1 ; f6f7
e2-e4
`
	items, err := readGames(strings.NewReader(input), engine.InitialFEN)
	if err != nil {
		t.Fatalf("readGames() error = %v", err)
	}

	want := []worker.WorkItem{
		{Index: 0, FEN: engine.InitialFEN, Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{Index: 1, FEN: "7k/8/5Q2/6K1/8/8/8/8 w - - 0 1", Moves: []string{"f6f7"}},
		{Index: 2, FEN: engine.InitialFEN, Moves: []string{"e2-e4"}},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("readGames() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectGames_Args(t *testing.T) {
	cfg := config.NewConfig()
	items, err := collectGames(cfg, []string{"e2e4", "e7e5"})
	if err != nil {
		t.Fatalf("collectGames() error = %v", err)
	}
	want := []worker.WorkItem{{Index: 0, FEN: engine.InitialFEN, Moves: []string{"e2e4", "e7e5"}}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("collectGames() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectGames_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.txt")
	if err := os.WriteFile(path, []byte("e2e4\nd2d4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewConfig()
	cfg.InputFilename = path
	items, err := collectGames(cfg, nil)
	if err != nil {
		t.Fatalf("collectGames() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d; want 2", len(items))
	}

	cfg.InputFilename = filepath.Join(dir, "missing.txt")
	if _, err := collectGames(cfg, nil); err == nil {
		t.Error("collectGames() with a missing file should fail")
	}
}

func TestPlayGames(t *testing.T) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithWorkers(2).
		WithOutput(&out).
		WithLog(&log).
		Build()

	items := []worker.WorkItem{
		{Index: 0, FEN: engine.InitialFEN, Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{Index: 1, FEN: engine.InitialFEN, Moves: []string{"e2e5"}},
		{Index: 2, FEN: "7k/8/5Q2/6K1/8/8/8/8 w - - 0 1", Moves: []string{"f6f7"}},
	}

	failed := playGames(cfg, items)
	if failed != 1 {
		t.Errorf("playGames() failed = %d; want 1", failed)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"1\tcheckmate\tBlack\t4\t0-0\trnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
		"2\tongoing\t-\t0\t0-0\trejected\t" + engine.InitialFEN,
		"3\tstalemate\t-\t1\t0-0\t7k/5Q2/8/6K1/8/8/8/8 b - - 0 1",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(log.String(), "game 2: ") || !strings.Contains(log.String(), "illegal move") {
		t.Errorf("log missing rejection:\n%s", log.String())
	}
}

func TestPlayGames_JSON(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithJSONOutput(true).
		WithListMoves(true).
		WithVerbosity(0).
		WithOutput(&out).
		WithLog(&bytes.Buffer{}).
		Build()

	items := []worker.WorkItem{{Index: 0, FEN: "7k/8/8/8/8/8/8/K7 w - - 0 1"}}
	if failed := playGames(cfg, items); failed != 0 {
		t.Errorf("playGames() failed = %d; want 0", failed)
	}

	var decoded output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(decoded.Games) != 1 {
		t.Fatalf("decoded %d games; want 1", len(decoded.Games))
	}
	want := []string{"a1a2", "a1b2", "a1b1"}
	if diff := cmp.Diff(want, decoded.Games[0].Moves); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
	if decoded.Games[0].Status != "ongoing" {
		t.Errorf("status = %q; want ongoing", decoded.Games[0].Status)
	}
}
