package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liliang-cn/datagenie/internal/domain"
)

func rankedIDs(scored []ScoredDataset) []string {
	ids := make([]string, len(scored))
	for i, ds := range scored {
		ids[i] = ds.ID
	}
	return ids
}

func scoreByID(scored []ScoredDataset) map[string]int {
	out := make(map[string]int, len(scored))
	for _, ds := range scored {
		out[ds.ID] = ds.Score
	}
	return out
}

func TestRetailBaseRanking(t *testing.T) {
	scored := FitScores(domain.IntentRetail, domain.AnswerMap{})

	assert.Equal(t, []string{
		"cabee-2024", "census-2021", "jtw-2021", "seifa-2021", "gtfs-vic",
	}, rankedIDs(scored))

	scores := scoreByID(scored)
	assert.Equal(t, 95, scores["cabee-2024"])
	assert.Equal(t, 90, scores["census-2021"])
	assert.Equal(t, 88, scores["jtw-2021"])
	assert.Equal(t, 85, scores["seifa-2021"])
	assert.Equal(t, 45, scores["gtfs-vic"])
}

func TestRetailStationAnchorRaisesTransit(t *testing.T) {
	answers := domain.AnswerMap{
		domain.KeyAnchor: domain.ChoiceAnswer("station"),
	}
	scored := FitScores(domain.IntentRetail, answers)
	scores := scoreByID(scored)

	assert.Equal(t, 75, scores["gtfs-vic"])
	// Transit still ranks below seifa (85) but above anything under 75.
	ids := rankedIDs(scored)
	assert.Equal(t, "gtfs-vic", ids[len(ids)-1])
	assert.Less(t, scores["gtfs-vic"], scores["seifa-2021"])
}

func TestGeographyBonusAppliesToSensitiveSubsetOnly(t *testing.T) {
	intents := []domain.Intent{
		domain.IntentRetail, domain.IntentProperty,
		domain.IntentSchool, domain.IntentGeneric,
	}

	for _, intent := range intents {
		before := scoreByID(FitScores(intent, domain.AnswerMap{}))
		after := scoreByID(FitScores(intent, domain.AnswerMap{
			domain.KeyGeography: domain.TextAnswer("Brunswick East"),
		}))

		for id, base := range before {
			if geographySensitive[id] {
				assert.Equal(t, base+5, after[id], "intent %s dataset %s", intent, id)
			} else {
				assert.Equal(t, base, after[id], "intent %s dataset %s", intent, id)
			}
		}
	}
}

func TestGeographyNoneChipGetsNoBonus(t *testing.T) {
	before := scoreByID(FitScores(domain.IntentRetail, domain.AnswerMap{}))
	after := scoreByID(FitScores(domain.IntentRetail, domain.AnswerMap{
		domain.KeyGeography: domain.NoneAnswer(),
	}))
	assert.Equal(t, before, after)
}

func TestPropertyStationNameRaisesTransit(t *testing.T) {
	without := scoreByID(FitScores(domain.IntentProperty, domain.AnswerMap{}))
	assert.Equal(t, 40, without["gtfs-vic"])

	with := scoreByID(FitScores(domain.IntentProperty, domain.AnswerMap{
		domain.KeyStationName: domain.TextAnswer("Coburg"),
	}))
	assert.Equal(t, 85, with["gtfs-vic"])
}

func TestSchoolPTModeRaisesTransit(t *testing.T) {
	without := scoreByID(FitScores(domain.IntentSchool, domain.AnswerMap{}))
	assert.Equal(t, 50, without["gtfs-vic"])

	with := scoreByID(FitScores(domain.IntentSchool, domain.AnswerMap{
		domain.KeyMode: domain.ChoiceAnswer("pt"),
	}))
	assert.Equal(t, 80, with["gtfs-vic"])
}

func TestGenericRanking(t *testing.T) {
	scored := FitScores(domain.IntentGeneric, domain.AnswerMap{})
	assert.Equal(t, []string{
		"census-2021", "seifa-2021", "cabee-2024", "building-approvals-2024", "rppi-2024",
	}, rankedIDs(scored))
}

func TestDisplayScoreStaircase(t *testing.T) {
	expected := []int{95, 87, 79, 71, 63, 55, 47, 45, 45}
	for rank, want := range expected {
		assert.Equal(t, want, DisplayScore(rank), "rank %d", rank)
	}
}

func TestRecommendationsUseStaircaseNotRawScores(t *testing.T) {
	refs := Recommendations(domain.IntentRetail, domain.AnswerMap{})
	require.Len(t, refs, 5)

	// gtfs-vic has raw score 45 but its display score comes from its rank.
	assert.Equal(t, domain.DatasetRef{ID: "cabee-2024", FitScore: 95}, refs[0])
	assert.Equal(t, domain.DatasetRef{ID: "census-2021", FitScore: 87}, refs[1])
	assert.Equal(t, domain.DatasetRef{ID: "jtw-2021", FitScore: 79}, refs[2])
	assert.Equal(t, domain.DatasetRef{ID: "seifa-2021", FitScore: 71}, refs[3])
	assert.Equal(t, domain.DatasetRef{ID: "gtfs-vic", FitScore: 63}, refs[4])
}

func TestEqualScoresKeepInsertionOrder(t *testing.T) {
	// Ordering must be deterministic across invocations; equal scores keep
	// the base-table insertion order.
	answers := domain.AnswerMap{
		domain.KeyGeography: domain.TextAnswer("Coburg"),
	}
	first := rankedIDs(FitScores(domain.IntentRetail, answers))
	second := rankedIDs(FitScores(domain.IntentRetail, answers))
	assert.Equal(t, first, second)
}
