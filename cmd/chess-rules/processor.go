package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// lockedWriter serialises writes from concurrent sessions.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// collectGames builds the work list from the batch file, or from the
// positional arguments when no batch file is given.
func collectGames(cfg *config.Config, args []string) ([]worker.WorkItem, error) {
	if cfg.InputFilename == "" {
		return []worker.WorkItem{{Index: 0, FEN: cfg.StartFEN, Moves: args}}, nil
	}

	file, err := os.Open(cfg.InputFilename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.InputFilename, err)
	}
	defer file.Close()

	items, err := readGames(file, cfg.StartFEN)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", cfg.InputFilename)
	}
	return items, nil
}

// readGames parses one game per line. A line of the form "FEN ; moves"
// overrides the start position for that game.
func readGames(r io.Reader, defaultFEN string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fen := defaultFEN
		if before, after, found := strings.Cut(line, ";"); found {
			fen = strings.TrimSpace(before)
			line = after
		}
		items = append(items, worker.WorkItem{
			Index: len(items),
			FEN:   fen,
			Moves: strings.Fields(line),
		})
	}
	return items, scanner.Err()
}

// playGames plays every item through the worker pool and writes one report
// per game. It returns the number of games with a rejected move.
func playGames(cfg *config.Config, items []worker.WorkItem) int {
	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(items) {
		numWorkers = len(items)
	}

	log := &lockedWriter{w: cfg.LogFile}
	play := worker.PlayFunc(worker.PlayOptions{
		ListMoves: cfg.ListMoves,
		Session:   []game.Option{game.WithLog(log), game.WithVerbosity(cfg.Verbosity)},
	})
	pool := worker.NewPoolWithOptions(play,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(cfg.BufferSize),
	)
	results := pool.Run(items)

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(log, "game %d: %v\n", result.Index+1, result.Error)
			}
		}
	}

	opts := output.Options{ShowScores: cfg.ShowScores, ListMoves: cfg.ListMoves}
	if cfg.JSONFormat {
		if err := output.WriteJSON(cfg.OutputFile, results, opts); err != nil {
			fmt.Fprintf(log, "Error writing output: %v\n", err)
		}
		return failed
	}
	for _, result := range results {
		output.WriteText(cfg.OutputFile, result, opts)
	}
	return failed
}
