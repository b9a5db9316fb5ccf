// Package worker provides a worker pool for parallel game playback.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// WorkItem represents a game to be played.
type WorkItem struct {
	Index int      // Original index for tracking
	FEN   string   // Start position; empty means the initial position
	Moves []string // Coordinate moves such as "e2e4"
}

// ProcessResult represents the result of playing a game.
type ProcessResult struct {
	Index   int
	ID      string // Session ID
	Verdict engine.Verdict
	Plies   int
	Scores  [2]int
	FEN     string   // Final position
	Moves   []string // Legal moves of the side to move, if requested
	Error   error
}

// ProcessFunc plays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
	closeOnce   sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel capacity. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers workers and channels of bufferSize.
// Both are raised to 1 if smaller.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for item := range p.workChan {
		if p.stopped.Load() {
			// Drain without playing.
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues an item without blocking. It returns false if the work
// channel is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip any item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel. Calling Close more than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.workChan)
		p.wg.Wait()
		close(p.resultChan)
	})
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, plays every item and returns the results ordered by
// Index. The pool cannot be reused afterwards.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range p.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// PlayOptions controls how PlayFunc plays each item.
type PlayOptions struct {
	Engine    *engine.Engine
	ListMoves bool
	Session   []game.Option
}

// PlayFunc returns a ProcessFunc that plays every item on its own Session.
// Each item gets a fresh board, so workers never share position state.
func PlayFunc(opts PlayOptions) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		fen := item.FEN
		if fen == "" {
			fen = engine.InitialFEN
		}
		sessionOpts := append([]game.Option{game.WithEngine(opts.Engine)}, opts.Session...)

		result := ProcessResult{Index: item.Index}
		session, err := game.NewSessionFromFEN(fen, sessionOpts...)
		if err != nil {
			result.Error = err
			return result
		}

		_, err = session.PlayMoves(item.Moves)
		result.ID = session.ID
		result.Verdict = session.Verdict
		result.Plies = session.Plies
		result.Scores = session.Scores
		result.FEN = session.FEN()
		result.Error = err
		if opts.ListMoves {
			for _, m := range session.Moves() {
				result.Moves = append(result.Moves, m.String())
			}
		}
		return result
	}
}
