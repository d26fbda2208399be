package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liliang-cn/datagenie/internal/domain"
)

func newTestRepo(t *testing.T) *StateRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStateRepository(db)
}

func TestLoadWithoutSnapshotReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	lat, lon := -37.76, 144.96
	state := &domain.AppState{
		Problems: []*domain.ProblemSession{{
			ID:            "problem_1700000000000_abc123def",
			RawProblem:    "where to open a mobile repair store",
			DerivedIntent: domain.IntentRetail,
			Answers: domain.AnswerMap{
				domain.KeyGeography: domain.GeographyAnswer(domain.GeographyValue{
					Type: "suburb", Value: "Coburg", Lat: &lat, Lon: &lon,
				}),
				domain.KeyAnchor: domain.NoneAnswer(),
				domain.KeyFocus:  domain.ChoiceAnswer("workers"),
			},
			RecommendedDatasets: []domain.DatasetRef{
				{ID: "cabee-2024", FitScore: 95},
				{ID: "census-2021", FitScore: 87},
			},
			CreatedAt: 1700000000000,
		}},
		ActiveProblemID: "problem_1700000000000_abc123def",
		Reviews: []domain.Review{
			{DatasetID: "seifa-2021", Stars: 5, Title: "t", Body: "b", Author: "a", Date: 1700000000000},
		},
		Downloads: map[string]int{"seifa-2021": 3},
		Ratings:   map[string]domain.Rating{"seifa-2021": {Sum: 5, Count: 1}},
	}

	require.NoError(t, repo.Save(state))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	repo := newTestRepo(t)

	first := &domain.AppState{
		Problems:  []*domain.ProblemSession{},
		Reviews:   []domain.Review{},
		Downloads: map[string]int{"a": 1},
		Ratings:   map[string]domain.Rating{},
	}
	require.NoError(t, repo.Save(first))

	second := first.Clone()
	second.Downloads["a"] = 2
	require.NoError(t, repo.Save(second))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Downloads["a"])
}

func TestLoadCorruptSnapshotErrors(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO app_state (key, value) VALUES (?, ?)`, StateKey, "{not json")
	require.NoError(t, err)

	repo := NewStateRepository(db)
	_, err = repo.Load()
	assert.Error(t, err)
}
