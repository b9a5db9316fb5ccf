// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Input options
	startFEN  = flag.String("fen", "", "Start position in FEN (default: the initial position)")
	inputFile = flag.String("i", "", "Batch file with one game per line")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	listMoves  = flag.Bool("moves", false, "List the legal moves of the side to move after each game")
	noScores   = flag.Bool("noscores", false, "Don't output captured material")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 verdicts, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Processing
	workers = flag.Int("workers", 0, "Number of batch workers (0 = one per CPU)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line settings into cfg.
func applyFlags(cfg *config.Config) {
	applyInputFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Workers = *workers
}

func applyInputFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	cfg.InputFilename = *inputFile
}

func applyOutputFlags(cfg *config.Config) {
	cfg.OutputFilename = *outputFile
	cfg.ListMoves = *listMoves
	cfg.ShowScores = !*noScores
	cfg.JSONFormat = *jsonOutput
}
