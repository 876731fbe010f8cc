package api

import "github.com/encuestapp/survey-api/internal/services"

// Store is the persistence surface the API consumes. The core never
// queries by id, filters or paginates; aggregation happens in-process over
// the full result set.
type Store interface {
	// InsertResponse persists the record and returns its id. The insert is
	// durable before it returns.
	InsertResponse(r *services.SurveyResponse) (string, error)
	// ListResponses returns all responses ordered by submission time,
	// newest first.
	ListResponses() ([]*services.SurveyResponse, error)
	CountResponses() (int, error)
}

var _ Store = (*MemoryStore)(nil)
