package livesearch

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle phase of the result panel a session drives
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

const (
	// ListingDelay is the debounce window for the main listing filters
	ListingDelay = 400 * time.Millisecond

	// PaletteDelay is the shorter window for the command palette
	PaletteDelay = 300 * time.Millisecond
)

// Request is one snapshot of the client's filter controls
type Request struct {
	Query     string   `json:"query"`
	Amenities []string `json:"amenities"`
	Price     string   `json:"price"`
	Sort      string   `json:"sort"`
}

// Update is pushed to the client on every state transition. Seq identifies
// the snapshot an update belongs to.
type Update struct {
	Seq     uint64      `json:"seq"`
	State   State       `json:"state"`
	Results interface{} `json:"results,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// FetchFunc executes one snapshot against the backing store
type FetchFunc func(ctx context.Context, req Request) (interface{}, error)

// SendFunc delivers an update to the client
type SendFunc func(Update)

// Session debounces rapid filter changes and guarantees last-state-wins:
// only the newest dispatched snapshot may change what the client sees, so a
// slow old response can never overwrite a fresh one. A failed fetch reports
// the error but keeps the last good results on screen.
type Session struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	delay time.Duration
	fetch FetchFunc
	send  SendFunc

	timer   *time.Timer
	pending Request

	seq         uint64 // newest dispatched snapshot
	state       State
	lastResults interface{}
	closed      bool
}

func NewSession(ctx context.Context, delay time.Duration, fetch FetchFunc, send SendFunc) *Session {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		ctx:    ctx,
		cancel: cancel,
		delay:  delay,
		fetch:  fetch,
		send:   send,
		state:  StateIdle,
	}
}

// Submit records a new filter snapshot and restarts the debounce timer.
// Changes landing inside the window collapse into a single fetch of the
// final state.
func (s *Session) Submit(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.pending = req
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.dispatch)
}

// dispatch fires when the debounce window closes with no further input
func (s *Session) dispatch() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.seq++
	seq := s.seq
	req := s.pending
	s.state = StateLoading
	send := s.send
	s.mu.Unlock()

	send(Update{Seq: seq, State: StateLoading})

	go s.run(seq, req)
}

func (s *Session) run(seq uint64, req Request) {
	results, err := s.fetch(s.ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	// A newer snapshot was dispatched while this one was in flight;
	// its answer owns the screen now, drop ours.
	if seq != s.seq {
		return
	}

	if err != nil {
		s.state = StateError
		s.send(Update{
			Seq:     seq,
			State:   StateError,
			Results: s.lastResults,
			Error:   err.Error(),
		})
		return
	}

	s.state = StateSuccess
	s.lastResults = results
	s.send(Update{Seq: seq, State: StateSuccess, Results: results})
}

// State returns the session's current phase
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close stops the timer and cancels any in-flight fetch. Further Submits are
// ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.cancel()
}
