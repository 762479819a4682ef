package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"agendas-mcp/internal/stats"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// State is the lifecycle state of the in-memory dataset.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// ErrNotReady is returned by Snapshot while no dataset has been loaded successfully.
var ErrNotReady = errors.New("dataset not ready")

// Status describes the store for surfaces that need to explain an empty dashboard.
type Status struct {
	State      State     `json:"state"`
	SnapshotID string    `json:"snapshotId,omitempty"` // changes on every successful load
	Records    int       `json:"records"`
	Sources    []string  `json:"sources,omitempty"`
	Meta       []Meta    `json:"meta,omitempty"`
	Attempts   int       `json:"attempts"`
	LoadedAt   time.Time `json:"loadedAt,omitzero"`
	LastError  string    `json:"lastError,omitempty"`
}

// LoadObserver is notified after every load attempt.
type LoadObserver interface {
	ObserveLoad(outcome string, records int, seconds float64)
}

// Store keeps the loaded records read-only for the rest of the process. A reload swaps the
// whole slice, so callers holding a previous snapshot are never affected.
type Store struct {
	loader   *Loader
	observer LoadObserver

	mu       sync.RWMutex
	records  []stats.Record
	status   Status
	loadLock sync.Mutex
}

// NewStore creates an empty store in the loading state.
func NewStore(loader *Loader, observer LoadObserver) *Store {
	return &Store{
		loader:   loader,
		observer: observer,
		status:   Status{State: StateLoading},
	}
}

// Load runs the loader and publishes its result. On failure the previous records, if any,
// stay available and the store reports the error.
func (s *Store) Load(ctx context.Context) error {
	s.loadLock.Lock()
	defer s.loadLock.Unlock()

	s.mu.Lock()
	s.status.Attempts++
	if s.records == nil {
		s.status.State = StateLoading
	}
	s.mu.Unlock()

	start := time.Now()
	res, err := s.loader.Load(ctx)
	elapsed := time.Since(start).Seconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status.LastError = err.Error()
		if s.records == nil {
			s.status.State = StateFailed
		}
		s.observe("failure", 0, elapsed)
		log.Error().Err(err).Int("attempts", s.status.Attempts).Msg("Dataset load failed")
		return fmt.Errorf("load dataset: %w", err)
	}

	records := res.Records
	if records == nil {
		records = []stats.Record{}
	}
	s.records = records
	s.status.SnapshotID = uuid.NewString()
	s.status.State = StateReady
	s.status.Records = len(records)
	s.status.Sources = res.Sources
	s.status.Meta = res.Meta
	s.status.LoadedAt = time.Now()
	s.status.LastError = ""
	s.observe("success", len(records), elapsed)
	log.Info().Str("snapshot", s.status.SnapshotID).Int("records", len(records)).Strs("sources", res.Sources).Msg("Dataset ready")
	return nil
}

// Reload is the retry action exposed to users.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Snapshot returns the current records. The slice must be treated as read-only.
func (s *Store) Snapshot() ([]stats.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.records == nil {
		if s.status.LastError != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrNotReady, s.status.State, s.status.LastError)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotReady, s.status.State)
	}
	return s.records, nil
}

// Status returns a copy of the store status.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.status
	st.Sources = append([]string(nil), s.status.Sources...)
	st.Meta = append([]Meta(nil), s.status.Meta...)
	return st
}

func (s *Store) observe(outcome string, records int, seconds float64) {
	if s.observer != nil {
		s.observer.ObserveLoad(outcome, records, seconds)
	}
}
