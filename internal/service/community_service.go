package service

import (
	"github.com/liliang-cn/datagenie/internal/catalog"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/store"
)

// CommunityService handles reviews, ratings, download counters and catalog
// browsing.
type CommunityService struct {
	store *store.Store
}

// NewCommunityService creates a new community service
func NewCommunityService(st *store.Store) *CommunityService {
	return &CommunityService{store: st}
}

// Datasets returns the full catalog
func (s *CommunityService) Datasets() []domain.Dataset {
	return catalog.All()
}

// Dataset looks up one catalog entry
func (s *CommunityService) Dataset(id string) (*domain.Dataset, error) {
	ds := catalog.ByID(id)
	if ds == nil {
		return nil, domain.ErrNotFound
	}
	return ds, nil
}

// SearchDatasets filters the catalog by tags
func (s *CommunityService) SearchDatasets(tags []string) []domain.Dataset {
	return catalog.Search(tags)
}

// UseCases returns the demo success stories
func (s *CommunityService) UseCases() []domain.UseCase {
	return catalog.UseCases()
}

// Reviews lists reviews, optionally filtered to one dataset
func (s *CommunityService) Reviews(datasetID string) []domain.Review {
	all := s.store.Snapshot().Reviews
	if datasetID == "" {
		return all
	}
	var filtered []domain.Review
	for _, r := range all {
		if r.DatasetID == datasetID {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AddReview validates the submission and appends it. The store itself does
// not enforce these fields; that contract lives here at the API boundary.
func (s *CommunityService) AddReview(review domain.Review) error {
	if review.DatasetID == "" || review.Title == "" || review.Body == "" || review.Author == "" {
		return domain.ErrInvalidRequest
	}
	if review.Stars < 1 || review.Stars > 5 {
		return domain.ErrInvalidRequest
	}
	if catalog.ByID(review.DatasetID) == nil {
		return domain.ErrNotFound
	}
	s.store.AddReview(review)
	return nil
}

// RecordDownload bumps the download counter for a dataset and returns the
// new count.
func (s *CommunityService) RecordDownload(datasetID string) (int, error) {
	if catalog.ByID(datasetID) == nil {
		return 0, domain.ErrNotFound
	}
	s.store.IncrementDownload(datasetID)
	return s.store.Snapshot().Downloads[datasetID], nil
}

// DatasetRating returns the aggregate and average rating for a dataset
func (s *CommunityService) DatasetRating(datasetID string) (domain.Rating, float64) {
	rating := s.store.Rating(datasetID)
	return rating, rating.Average()
}
