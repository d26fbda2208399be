package service

import (
	"github.com/liliang-cn/datagenie/internal/catalog"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/engine"
	"github.com/liliang-cn/datagenie/internal/store"
)

// WizardService drives the recommendation wizard: problem intake, follow-up
// questions and ranked recommendations.
type WizardService struct {
	store *store.Store
}

// NewWizardService creates a new wizard service
func NewWizardService(st *store.Store) *WizardService {
	return &WizardService{store: st}
}

// ProblemResponse is the wizard's view of a session: the session itself, its
// question sequence, and catalog entries hydrated for the recommendations.
type ProblemResponse struct {
	Session   *domain.ProblemSession    `json:"session"`
	Questions []domain.FollowUpQuestion `json:"questions"`
	Datasets  []RecommendedDataset      `json:"datasets"`
}

// RecommendedDataset joins a ranked reference with its catalog entry
type RecommendedDataset struct {
	domain.DatasetRef
	Dataset *domain.Dataset `json:"dataset"`
}

// CreateProblem starts a new session from the raw problem text
func (s *WizardService) CreateProblem(rawProblem string) *ProblemResponse {
	id := s.store.CreateProblem(rawProblem)
	return s.problemResponse(s.store.Problem(id))
}

// Problem returns the wizard view of a session, or ErrNotFound
func (s *WizardService) Problem(id string) (*ProblemResponse, error) {
	session := s.store.Problem(id)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return s.problemResponse(session), nil
}

// ActiveProblem returns the wizard view of the active session, or ErrNotFound
func (s *WizardService) ActiveProblem() (*ProblemResponse, error) {
	session := s.store.ActiveProblem()
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return s.problemResponse(session), nil
}

// UpdateAnswer writes one answer and returns the refreshed wizard view.
// Unknown sessions surface as ErrNotFound here even though the store treats
// them as a silent no-op.
func (s *WizardService) UpdateAnswer(id string, key domain.AnswerKey, value domain.AnswerValue) (*ProblemResponse, error) {
	if s.store.Problem(id) == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.store.UpdateProblemAnswer(id, key, value); err != nil {
		return nil, err
	}
	return s.problemResponse(s.store.Problem(id)), nil
}

// Questions returns the follow-up sequence for a session's intent
func (s *WizardService) Questions(id string) ([]domain.FollowUpQuestion, error) {
	session := s.store.Problem(id)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return engine.FollowUpQuestions(session.DerivedIntent), nil
}

func (s *WizardService) problemResponse(session *domain.ProblemSession) *ProblemResponse {
	datasets := make([]RecommendedDataset, 0, len(session.RecommendedDatasets))
	for _, ref := range session.RecommendedDatasets {
		datasets = append(datasets, RecommendedDataset{
			DatasetRef: ref,
			Dataset:    catalog.ByID(ref.ID),
		})
	}
	return &ProblemResponse{
		Session:   session,
		Questions: engine.FollowUpQuestions(session.DerivedIntent),
		Datasets:  datasets,
	}
}
