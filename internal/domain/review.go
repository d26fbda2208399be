package domain

// Review is one community review of a dataset. Reviews are append-only.
type Review struct {
	DatasetID string `json:"datasetId"`
	Stars     int    `json:"stars"` // 1..5
	Title     string `json:"title"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	Date      int64  `json:"date"` // epoch millis
}

// Rating is the running aggregate of stars for one dataset
type Rating struct {
	Sum   int `json:"sum"`
	Count int `json:"count"`
}

// Average returns sum/count, or 0 when there are no reviews
func (r Rating) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Sum) / float64(r.Count)
}
