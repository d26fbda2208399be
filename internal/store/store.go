// Package store owns the AppState aggregate: problem sessions, community
// reviews, download counters and rating aggregates. All mutation goes through
// the store's methods, which apply the change, persist a snapshot, then
// notify subscribers in registration order.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/engine"
)

// StatePersister loads and saves AppState snapshots. Load returns (nil, nil)
// when no snapshot exists.
type StatePersister interface {
	Load() (*domain.AppState, error)
	Save(*domain.AppState) error
}

// Listener receives a deep-cloned snapshot after every mutation
type Listener func(*domain.AppState)

// Store is the single source of truth for session, review, download and
// rating data. Persistence failures degrade silently: the in-memory state
// stays correct, the failure is logged at Warn.
type Store struct {
	mu        sync.Mutex
	state     *domain.AppState
	persister StatePersister
	listeners []listenerEntry
	nextSub   int
	logger    *zap.Logger
}

type listenerEntry struct {
	id int
	fn Listener
}

// New builds a store from the persisted snapshot, falling back to seed data.
// Recovery is per slice: a loaded snapshot with an empty reviews, downloads
// or ratings collection has that collection alone reseeded; recovered problem
// sessions are kept either way.
func New(persister StatePersister, logger *zap.Logger) *Store {
	s := &Store{
		persister: persister,
		logger:    logger,
	}
	s.state = s.loadState()
	return s
}

func (s *Store) loadState() *domain.AppState {
	loaded, err := s.persister.Load()
	if err != nil {
		s.logger.Warn("failed to load app state, starting from seed data", zap.Error(err))
		return seedState()
	}
	if loaded == nil {
		return seedState()
	}

	if loaded.Problems == nil {
		loaded.Problems = []*domain.ProblemSession{}
	}
	if len(loaded.Reviews) == 0 {
		loaded.Reviews = seedReviews()
	}
	if len(loaded.Downloads) == 0 {
		loaded.Downloads = seedDownloads()
	}
	if len(loaded.Ratings) == 0 {
		loaded.Ratings = seedRatings()
	}

	return loaded
}

// persist then notify, in that order, while holding the lock
func (s *Store) commit() {
	if err := s.persister.Save(s.state); err != nil {
		s.logger.Warn("failed to save app state", zap.Error(err))
	}
	snapshot := s.state.Clone()
	for _, l := range s.listeners {
		l.fn(snapshot)
	}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Listeners are notified synchronously, in registration order.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() *domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func newProblemID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("problem_%d_%s", time.Now().UnixMilli(), suffix)
}

// CreateProblem classifies the intent of the raw problem text, allocates a
// session with empty answers and recommendations, and marks it active.
func (s *Store) CreateProblem(rawProblem string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	problem := &domain.ProblemSession{
		ID:                  newProblemID(),
		RawProblem:          rawProblem,
		DerivedIntent:       engine.DetectIntent(rawProblem),
		Answers:             domain.AnswerMap{},
		RecommendedDatasets: []domain.DatasetRef{},
		CreatedAt:           time.Now().UnixMilli(),
	}

	s.state.Problems = append(s.state.Problems, problem)
	s.state.ActiveProblemID = problem.ID
	s.commit()

	return problem.ID
}

// UpdateProblemAnswer writes one answer and recomputes the full
// recommendation list from the current answer set. An unknown session id is
// a silent no-op; an answer key outside the enumerated set is rejected.
func (s *Store) UpdateProblemAnswer(problemID string, key domain.AnswerKey, value domain.AnswerValue) error {
	if !key.Valid() {
		return domain.ErrInvalidAnswerKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	problem := s.findProblem(problemID)
	if problem == nil {
		return nil
	}

	problem.Answers[key] = value
	problem.RecommendedDatasets = engine.Recommendations(problem.DerivedIntent, problem.Answers)

	s.commit()
	return nil
}

// AddReview stamps the current time, appends the review and updates the
// rating aggregate for its dataset. Field validation is a presentation-layer
// responsibility.
func (s *Store) AddReview(review domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.Date = time.Now().UnixMilli()
	s.state.Reviews = append(s.state.Reviews, review)

	rating := s.state.Ratings[review.DatasetID]
	rating.Sum += review.Stars
	rating.Count++
	s.state.Ratings[review.DatasetID] = rating

	s.commit()
}

// IncrementDownload bumps the counter for a dataset, initializing at 1
func (s *Store) IncrementDownload(datasetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Downloads[datasetID]++
	s.commit()
}

// AverageRating returns sum/count for a dataset, or 0 with no reviews
func (s *Store) AverageRating(datasetID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Ratings[datasetID].Average()
}

// Rating returns the raw aggregate for a dataset
func (s *Store) Rating(datasetID string) domain.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Ratings[datasetID]
}

// ActiveProblem returns a copy of the session the active pointer names, or
// nil when there is none.
func (s *Store) ActiveProblem() *domain.ProblemSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findProblem(s.state.ActiveProblemID); p != nil {
		return p.Clone()
	}
	return nil
}

// Problem returns a copy of the session with the given id, or nil
func (s *Store) Problem(problemID string) *domain.ProblemSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findProblem(problemID); p != nil {
		return p.Clone()
	}
	return nil
}

func (s *Store) findProblem(id string) *domain.ProblemSession {
	if id == "" {
		return nil
	}
	for _, p := range s.state.Problems {
		if p.ID == id {
			return p
		}
	}
	return nil
}
