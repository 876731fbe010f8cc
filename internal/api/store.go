package api

import (
	"sort"
	"sync"

	"github.com/encuestapp/survey-api/internal/services"
)

// MemoryStore keeps responses in process memory. It backs handler tests
// and the `memory` database mode; nothing survives a restart.
type MemoryStore struct {
	mu        sync.RWMutex
	responses []*services.SurveyResponse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{responses: []*services.SurveyResponse{}}
}

func (s *MemoryStore) InsertResponse(r *services.SurveyResponse) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *r
	s.responses = append(s.responses, &copy)
	return copy.ID, nil
}

func (s *MemoryStore) ListResponses() ([]*services.SurveyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*services.SurveyResponse, 0, len(s.responses))
	for _, r := range s.responses {
		copy := *r
		out = append(out, &copy)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *MemoryStore) CountResponses() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.responses), nil
}
