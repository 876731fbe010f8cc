package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResponseStore abstracts persistence for the submission workflow.
type ResponseStore interface {
	InsertResponse(r *SurveyResponse) (string, error)
}

// ResponseService hosts the submission workflow: validate, stamp, persist.
type ResponseService struct {
	store ResponseStore
	now   func() time.Time
	idGen func() string
}

// SubmitRequest carries the sanitized handler input into the service layer.
type SubmitRequest struct {
	Answers   AnswerSet
	IPAddress string
	UserAgent string
}

func NewResponseService(store ResponseStore) *ResponseService {
	return &ResponseService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: defaultResponseID,
	}
}

func defaultResponseID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Submit validates the answers against the question schema and persists a
// new response record. The form already validates client-side, but the
// network boundary is untrusted so the full check runs again here.
func (s *ResponseService) Submit(req SubmitRequest) (*SurveyResponse, error) {
	if len(req.Answers) == 0 {
		return nil, NewInvalidError("responses are required")
	}
	if err := ValidateAnswers(req.Answers); err != nil {
		return nil, err
	}
	resp := &SurveyResponse{
		ID:          s.idGen(),
		Answers:     req.Answers,
		SubmittedAt: s.now(),
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
	}
	id, err := s.store.InsertResponse(resp)
	if err != nil {
		return nil, err
	}
	if id != "" {
		resp.ID = id
	}
	return resp, nil
}
