package domain

// AppState is the root aggregate: the single unit of persistence and the
// single object broadcast to subscribers.
type AppState struct {
	Problems        []*ProblemSession `json:"problems"`
	ActiveProblemID string            `json:"activeProblemId,omitempty"`
	Reviews         []Review          `json:"reviews"`
	Downloads       map[string]int    `json:"downloads"`
	Ratings         map[string]Rating `json:"ratings"`
}

// Clone returns a deep copy so subscribers and callers cannot mutate the
// store's nested structures.
func (s *AppState) Clone() *AppState {
	out := &AppState{
		ActiveProblemID: s.ActiveProblemID,
		Problems:        make([]*ProblemSession, 0, len(s.Problems)),
		Reviews:         append([]Review(nil), s.Reviews...),
		Downloads:       make(map[string]int, len(s.Downloads)),
		Ratings:         make(map[string]Rating, len(s.Ratings)),
	}
	for _, p := range s.Problems {
		out.Problems = append(out.Problems, p.Clone())
	}
	for k, v := range s.Downloads {
		out.Downloads[k] = v
	}
	for k, v := range s.Ratings {
		out.Ratings[k] = v
	}
	return out
}

// Stats summarizes store contents for the admin dashboard
type Stats struct {
	TotalProblems  int `json:"total_problems"`
	TotalReviews   int `json:"total_reviews"`
	TotalDownloads int `json:"total_downloads"`
	TotalDatasets  int `json:"total_datasets"`
}
