// Package game holds a playable game session on top of the rules engine.
//
// A Session owns one board, the side to move and the running verdict. Every
// move is checked against the legal destinations of its origin before it is
// applied, so a session can never reach a position the engine would reject.
package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Turn describes one accepted move.
type Turn struct {
	Ply     int
	Mover   chess.Colour
	Move    chess.Move
	Result  engine.MoveResult
	Verdict engine.Verdict // Evaluated for the side that moves next
}

// Session is a single game in progress.
type Session struct {
	ID      string
	Board   *chess.Board
	ToMove  chess.Colour
	Over    bool
	Verdict engine.Verdict
	Scores  [2]int // Captured material, indexed by chess.Colour
	Plies   int

	engine    *engine.Engine
	startFEN  string
	logFile   io.Writer
	verbosity int
}

// Option configures a Session.
type Option func(*Session)

// WithLog sets the writer that receives move and verdict diagnostics.
func WithLog(w io.Writer) Option {
	return func(s *Session) {
		s.logFile = w
	}
}

// WithVerbosity sets the diagnostic level: 0 silent, 1 verdicts, 2 every move.
func WithVerbosity(level int) Option {
	return func(s *Session) {
		s.verbosity = level
	}
}

// WithEngine sets the rules engine used for legality and evaluation.
func WithEngine(e *engine.Engine) Option {
	return func(s *Session) {
		if e != nil {
			s.engine = e
		}
	}
}

// NewSession starts a game from the standard initial position.
func NewSession(opts ...Option) *Session {
	s, _ := NewSessionFromFEN(engine.InitialFEN, opts...)
	return s
}

// NewSessionFromFEN starts a game from a FEN position.
func NewSessionFromFEN(fen string, opts ...Option) (*Session, error) {
	s := &Session{
		ID:       uuid.NewString(),
		engine:   engine.New(),
		startFEN: fen,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	board, toMove, err := engine.NewBoardFromFEN(s.startFEN)
	if err != nil {
		return errors.Wrapf(err, "session %s", s.ID)
	}
	s.Board = board
	s.ToMove = toMove
	s.Scores = [2]int{}
	s.Plies = 0
	s.Verdict = s.engine.Evaluate(board, toMove)
	s.Over = s.Verdict.Status.Terminal()
	return nil
}

// Reset restores the starting position and clears scores. The session ID
// is kept.
func (s *Session) Reset() {
	// The start FEN parsed once already.
	_ = s.load()
}

// Destinations returns the legal destinations of the piece on from for the
// side to move. It is empty once the game is over.
func (s *Session) Destinations(from chess.Square) []chess.Square {
	if s.Over {
		return nil
	}
	return s.engine.LegalDestinations(s.Board, from, s.ToMove)
}

// Moves returns every legal move for the side to move.
func (s *Session) Moves() []chess.Move {
	if s.Over {
		return nil
	}
	return s.engine.AllLegalMoves(s.Board, s.ToMove)
}

// FEN returns the current position.
func (s *Session) FEN() string {
	return engine.ToFEN(s.Board, s.ToMove)
}

// Score returns the material captured by colour.
func (s *Session) Score(colour chess.Colour) int {
	return s.Scores[colour]
}

// Play moves the piece on from to to for the side to move.
func (s *Session) Play(from, to chess.Square) (Turn, error) {
	move := chess.Move{From: from, To: to}
	if s.Over {
		return Turn{}, s.moveError(errors.ErrGameOver, move)
	}
	if !s.isLegal(from, to) {
		return Turn{}, s.moveError(errors.ErrIllegalMove, move)
	}

	mover := s.ToMove
	result := engine.ApplyMove(s.Board, from, to)
	s.Scores[mover] += result.CapturedValue()
	s.Plies++

	// The side to move is always the side the verdict was evaluated for.
	s.ToMove = mover.Opposite()
	s.Verdict = s.engine.Evaluate(s.Board, s.ToMove)
	s.Over = s.Verdict.Status.Terminal()

	turn := Turn{Ply: s.Plies, Mover: mover, Move: move, Result: result, Verdict: s.Verdict}
	s.logTurn(turn)
	return turn, nil
}

// PlayMoves replays coordinate moves such as "e2e4" in order. It stops at
// the first move that fails and returns the turns played so far.
func (s *Session) PlayMoves(moves []string) ([]Turn, error) {
	turns := make([]Turn, 0, len(moves))
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return turns, &errors.MoveError{Err: err, GameID: s.ID, PlyNum: s.Plies + 1, MoveText: text}
		}
		turn, err := s.Play(m.From, m.To)
		if err != nil {
			return turns, err
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *Session) isLegal(from, to chess.Square) bool {
	for _, dest := range s.engine.LegalDestinations(s.Board, from, s.ToMove) {
		if dest == to {
			return true
		}
	}
	return false
}

func (s *Session) moveError(err error, move chess.Move) error {
	return &errors.MoveError{
		Err:      err,
		GameID:   s.ID,
		PlyNum:   s.Plies + 1,
		MoveText: move.String(),
	}
}

func (s *Session) logTurn(turn Turn) {
	if s.logFile == nil {
		return
	}
	if s.verbosity >= 2 {
		var extra string
		if turn.Result.IsCapture() {
			extra += fmt.Sprintf(" captures %v", turn.Result.Captured)
		}
		if turn.Result.Promoted {
			extra += " promotes"
		}
		fmt.Fprintf(s.logFile, "%s: ply %d %v %v%s\n", s.ID, turn.Ply, turn.Mover, turn.Move, extra)
	}
	if s.verbosity >= 1 && turn.Verdict.Status.Terminal() {
		fmt.Fprintf(s.logFile, "%s: %v after %d plies\n", s.ID, turn.Verdict, turn.Ply)
	}
}
