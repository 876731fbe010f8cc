package services

import (
	"testing"
	"time"
)

type stubResponseStore struct {
	inserted []*SurveyResponse
	err      error
}

func (s *stubResponseStore) InsertResponse(r *SurveyResponse) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	copy := *r
	s.inserted = append(s.inserted, &copy)
	return r.ID, nil
}

func TestSubmitStoresResponse(t *testing.T) {
	store := &stubResponseStore{}
	svc := NewResponseService(store)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }
	svc.idGen = func() string { return "abc123" }

	resp, err := svc.Submit(SubmitRequest{
		Answers:   fullAnswers(),
		IPAddress: "203.0.113.9",
		UserAgent: "test-agent",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if resp.ID != "abc123" || !resp.SubmittedAt.Equal(at) {
		t.Fatalf("unexpected record: %+v", resp)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.inserted))
	}
	if store.inserted[0].IPAddress != "203.0.113.9" || store.inserted[0].UserAgent != "test-agent" {
		t.Fatalf("submitter metadata not stored: %+v", store.inserted[0])
	}
}

func TestSubmitEmptyAnswers(t *testing.T) {
	svc := NewResponseService(&stubResponseStore{})
	for _, answers := range []AnswerSet{nil, {}} {
		_, err := svc.Submit(SubmitRequest{Answers: answers})
		if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
			t.Fatalf("expected invalid error for empty answers, got %v", err)
		}
	}
}

func TestSubmitRevalidatesServerSide(t *testing.T) {
	store := &stubResponseStore{}
	svc := NewResponseService(store)

	a := fullAnswers()
	delete(a, "recommendation")
	_, err := svc.Submit(SubmitRequest{Answers: a})
	se, ok := AsServiceError(err)
	if !ok || se.Field != "recommendation" {
		t.Fatalf("expected validation error naming recommendation, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("invalid submission must not be persisted")
	}
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	svc := NewResponseService(&stubResponseStore{err: NewStoreError("insert failed")})
	_, err := svc.Submit(SubmitRequest{Answers: fullAnswers()})
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorStore {
		t.Fatalf("expected store error, got %v", err)
	}
}
