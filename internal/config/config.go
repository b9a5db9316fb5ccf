// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Processing
	Verbosity  int    // 0=nothing, 1=verdicts, 2=running commentary
	Workers    int    // 0 selects one worker per CPU
	BufferSize int    // Work and result channel capacity
	StartFEN   string // Position every game starts from

	// Output options
	ListMoves  bool // List the legal moves of the side to move after each game
	ShowScores bool
	JSONFormat bool

	// File handling
	InputFilename  string
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		BufferSize: 64,
		StartFEN:   engine.InitialFEN,
		ShowScores: true,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be positive: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
