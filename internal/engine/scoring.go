package engine

import (
	"sort"

	"github.com/liliang-cn/datagenie/internal/domain"
)

// ScoredDataset pairs a dataset identifier with its raw internal score. The
// raw score determines ordering only; the displayed percentage comes from
// DisplayScore.
type ScoredDataset struct {
	ID    string
	Score int
}

// Datasets receiving the +5 geography bonus when a geography answer is
// present. The bonus only applies to datasets already scored for the intent.
var geographySensitive = map[string]bool{
	"census-2021":             true,
	"seifa-2021":              true,
	"cabee-2024":              true,
	"building-approvals-2024": true,
	"jtw-2021":                true,
}

// FitScores computes the ranked dataset list for an intent and the current
// answer set. Pure: it is re-invoked in full on every answer change. Equal
// scores keep the insertion order of the base-score table, so the result is
// deterministic.
func FitScores(intent domain.Intent, answers domain.AnswerMap) []ScoredDataset {
	var scored []ScoredDataset
	add := func(id string, score int) {
		scored = append(scored, ScoredDataset{ID: id, Score: score})
	}

	switch intent {
	case domain.IntentRetail:
		add("census-2021", 90)
		add("seifa-2021", 85)
		add("cabee-2024", 95)
		add("jtw-2021", 88)
		if answers[domain.KeyAnchor].Choice == "station" {
			add("gtfs-vic", 75)
		} else {
			add("gtfs-vic", 45)
		}
	case domain.IntentProperty:
		add("census-2021", 80)
		add("seifa-2021", 75)
		add("building-approvals-2024", 95)
		add("rppi-2024", 90)
		if answers[domain.KeyStationName].Text != "" {
			add("gtfs-vic", 85)
		} else {
			add("gtfs-vic", 40)
		}
	case domain.IntentSchool:
		add("census-2021", 70)
		add("seifa-2021", 65)
		add("myschool-2024", 95)
		if answers[domain.KeyMode].Choice == "pt" {
			add("gtfs-vic", 80)
		} else {
			add("gtfs-vic", 50)
		}
	default:
		add("census-2021", 85)
		add("seifa-2021", 80)
		add("cabee-2024", 60)
		add("building-approvals-2024", 55)
		add("rppi-2024", 50)
	}

	if geo, ok := answers[domain.KeyGeography]; ok && !geo.IsNone() {
		for i := range scored {
			if geographySensitive[scored[i].ID] {
				scored[i].Score += 5
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// DisplayScore derives the fit percentage shown to the user from the 0-based
// rank in the sorted sequence: 95, 87, 79, ... floored at 45. It is
// independent of the raw internal scores.
func DisplayScore(rank int) int {
	score := 95 - rank*8
	if score < 45 {
		return 45
	}
	return score
}

// Recommendations builds the ranked dataset references for a session,
// applying the display-score staircase after sorting.
func Recommendations(intent domain.Intent, answers domain.AnswerMap) []domain.DatasetRef {
	ranked := FitScores(intent, answers)
	refs := make([]domain.DatasetRef, 0, len(ranked))
	for i, ds := range ranked {
		refs = append(refs, domain.DatasetRef{ID: ds.ID, FitScore: DisplayScore(i)})
	}
	return refs
}
