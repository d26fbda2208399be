package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liliang-cn/datagenie/internal/domain"
)

// memoryPersister keeps snapshots in memory and can be primed or broken
type memoryPersister struct {
	state   *domain.AppState
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryPersister) Load() (*domain.AppState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.state == nil {
		return nil, nil
	}
	return m.state.Clone(), nil
}

func (m *memoryPersister) Save(state *domain.AppState) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state.Clone()
	return nil
}

func newTestStore(t *testing.T) (*Store, *memoryPersister) {
	t.Helper()
	p := &memoryPersister{}
	return New(p, zap.NewNop()), p
}

func TestNewStoreSeedsWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	state := s.Snapshot()

	assert.Empty(t, state.Problems)
	assert.Len(t, state.Reviews, 8)
	assert.Len(t, state.Downloads, 8)
	assert.Len(t, state.Ratings, 8)
}

func TestNewStoreSeedsOnLoadError(t *testing.T) {
	p := &memoryPersister{loadErr: errors.New("disk on fire")}
	s := New(p, zap.NewNop())

	assert.Len(t, s.Snapshot().Reviews, 8)
}

func TestPerSliceSeedFallback(t *testing.T) {
	// A recovered snapshot with an empty reviews slice gets reviews reseeded
	// while its problems and downloads survive untouched.
	p := &memoryPersister{state: &domain.AppState{
		Problems: []*domain.ProblemSession{{
			ID:            "problem_1_abc",
			RawProblem:    "mobile repair shop",
			DerivedIntent: domain.IntentRetail,
			Answers:       domain.AnswerMap{},
		}},
		Reviews:   []domain.Review{},
		Downloads: map[string]int{"census-2021": 7},
		Ratings:   map[string]domain.Rating{},
	}}
	s := New(p, zap.NewNop())
	state := s.Snapshot()

	require.Len(t, state.Problems, 1)
	assert.Equal(t, "problem_1_abc", state.Problems[0].ID)
	assert.Len(t, state.Reviews, 8)
	assert.Equal(t, map[string]int{"census-2021": 7}, state.Downloads)
	assert.Len(t, state.Ratings, 8)
}

func TestCreateProblem(t *testing.T) {
	s, p := newTestStore(t)

	id := s.CreateProblem("where to open a mobile repair store")
	require.NotEmpty(t, id)

	active := s.ActiveProblem()
	require.NotNil(t, active)
	assert.Equal(t, id, active.ID)
	assert.Equal(t, domain.IntentRetail, active.DerivedIntent)
	assert.Empty(t, active.Answers)
	assert.Empty(t, active.RecommendedDatasets)
	assert.Equal(t, 1, p.saves)
}

func TestCreateProblemIDsAreUnique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.CreateProblem("generic question")
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestUpdateProblemAnswerRecomputesRecommendations(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateProblem("retail shop location")

	err := s.UpdateProblemAnswer(id, domain.KeyGeography, domain.TextAnswer("Coburg"))
	require.NoError(t, err)

	problem := s.Problem(id)
	require.NotNil(t, problem)
	require.Len(t, problem.RecommendedDatasets, 5)
	assert.Equal(t, "cabee-2024", problem.RecommendedDatasets[0].ID)
	assert.Equal(t, 95, problem.RecommendedDatasets[0].FitScore)

	// A later answer recomputes the full list, not a patch.
	err = s.UpdateProblemAnswer(id, domain.KeyAnchor, domain.ChoiceAnswer("station"))
	require.NoError(t, err)
	problem = s.Problem(id)
	assert.Len(t, problem.RecommendedDatasets, 5)
}

func TestUpdateProblemAnswerUnknownSessionIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	s.CreateProblem("a house near a station")

	before := s.Snapshot()
	err := s.UpdateProblemAnswer("problem_0_missing", domain.KeyGeography, domain.TextAnswer("x"))
	require.NoError(t, err)
	assert.Equal(t, before, s.Snapshot())
}

func TestUpdateProblemAnswerRejectsInvalidKey(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateProblem("retail shop")

	err := s.UpdateProblemAnswer(id, domain.AnswerKey("dropTables"), domain.TextAnswer("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidAnswerKey)
}

func TestUpdateProblemAnswerToleratesAllValueKinds(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.CreateProblem("which school for my kid")

	lat, lon := -37.76, 144.96
	values := map[domain.AnswerKey]domain.AnswerValue{
		domain.KeyAddressOrSuburb: domain.TextAnswer("Coburg"),
		domain.KeyMaxMins:         domain.NumberAnswer(25),
		domain.KeyContextCheck:    domain.BoolAnswer(true),
		domain.KeyMode:            domain.ChoiceAnswer("pt"),
		domain.KeySupports:        domain.NoneAnswer(),
		domain.KeyGeography: domain.GeographyAnswer(domain.GeographyValue{
			Type: "suburb", Value: "Coburg", Lat: &lat, Lon: &lon,
		}),
	}
	for key, value := range values {
		require.NoError(t, s.UpdateProblemAnswer(id, key, value))
	}

	problem := s.Problem(id)
	assert.Len(t, problem.Answers, len(values))
}

func TestAddReviewUpdatesRatingAggregate(t *testing.T) {
	s, _ := newTestStore(t)

	// Unrated dataset to start from a clean aggregate.
	assert.Equal(t, 0.0, s.AverageRating("no-such-dataset"))

	s.AddReview(domain.Review{DatasetID: "new-ds", Stars: 4, Title: "t", Body: "b", Author: "a"})
	assert.Equal(t, 4.0, s.AverageRating("new-ds"))

	s.AddReview(domain.Review{DatasetID: "new-ds", Stars: 2, Title: "t", Body: "b", Author: "a"})
	assert.Equal(t, 3.0, s.AverageRating("new-ds"))

	last := s.Snapshot().Reviews[len(s.Snapshot().Reviews)-1]
	assert.NotZero(t, last.Date)
}

func TestIncrementDownload(t *testing.T) {
	s, _ := newTestStore(t)

	s.IncrementDownload("fresh-ds")
	assert.Equal(t, 1, s.Snapshot().Downloads["fresh-ds"])

	s.IncrementDownload("fresh-ds")
	s.IncrementDownload("fresh-ds")
	assert.Equal(t, 3, s.Snapshot().Downloads["fresh-ds"])
}

func TestSubscribeNotifiesInRegistrationOrder(t *testing.T) {
	s, _ := newTestStore(t)

	var order []string
	s.Subscribe(func(*domain.AppState) { order = append(order, "first") })
	s.Subscribe(func(*domain.AppState) { order = append(order, "second") })

	s.IncrementDownload("census-2021")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func(*domain.AppState) { calls++ })

	s.IncrementDownload("census-2021")
	unsubscribe()
	s.IncrementDownload("census-2021")

	assert.Equal(t, 1, calls)
}

func TestListenerReceivesCloneNotLiveState(t *testing.T) {
	s, _ := newTestStore(t)

	var received *domain.AppState
	s.Subscribe(func(state *domain.AppState) { received = state })

	s.IncrementDownload("census-2021")
	require.NotNil(t, received)

	// Mutating the delivered snapshot must not leak into the store.
	received.Downloads["census-2021"] = 9999
	assert.NotEqual(t, 9999, s.Snapshot().Downloads["census-2021"])
}

func TestSaveFailureDegradesSilently(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	s := New(p, zap.NewNop())

	s.IncrementDownload("census-2021")
	// In-memory state stays correct even though the save failed.
	assert.Equal(t, seedDownloads()["census-2021"]+1, s.Snapshot().Downloads["census-2021"])
}

func TestActiveProblemTracksLatest(t *testing.T) {
	s, _ := newTestStore(t)

	s.CreateProblem("first problem about a shop")
	second := s.CreateProblem("second problem about a house")

	active := s.ActiveProblem()
	require.NotNil(t, active)
	assert.Equal(t, second, active.ID)
	assert.Len(t, s.Snapshot().Problems, 2)
}
