package service

import (
	"github.com/liliang-cn/datagenie/internal/catalog"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/store"
)

// AdminService backs the toy admin dashboard: a demo credential check and
// aggregate statistics. This is not real authentication.
type AdminService struct {
	store    *store.Store
	username string
	password string
}

// NewAdminService creates a new admin service
func NewAdminService(st *store.Store, username, password string) *AdminService {
	return &AdminService{
		store:    st,
		username: username,
		password: password,
	}
}

// Login checks the demo credentials
func (s *AdminService) Login(username, password string) error {
	if username != s.username || password != s.password {
		return domain.ErrUnauthorized
	}
	return nil
}

// Stats returns aggregate totals across the store and catalog
func (s *AdminService) Stats() domain.Stats {
	state := s.store.Snapshot()

	totalDownloads := 0
	for _, n := range state.Downloads {
		totalDownloads += n
	}

	return domain.Stats{
		TotalProblems:  len(state.Problems),
		TotalReviews:   len(state.Reviews),
		TotalDownloads: totalDownloads,
		TotalDatasets:  catalog.Size(),
	}
}
