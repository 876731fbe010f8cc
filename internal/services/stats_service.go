package services

import (
	"bytes"
	"encoding/json"
	"math"
)

// RecommendationCategory enumerates the five answers of the recommendation
// question. Distribution counts are indexed by category, never by raw
// answer string.
type RecommendationCategory int

const (
	RecommendDefinitelyYes RecommendationCategory = iota
	RecommendProbablyYes
	RecommendMaybe
	RecommendProbablyNo
	RecommendDefinitelyNo
	recommendationCategoryCount
)

var recommendationCategoryLabels = [recommendationCategoryCount]string{
	RecommendDefinitelyYes: "Definitivamente sí",
	RecommendProbablyYes:   "Probablemente sí",
	RecommendMaybe:         "Tal vez",
	RecommendProbablyNo:    "Probablemente no",
	RecommendDefinitelyNo:  "Definitivamente no",
}

// Label returns the exact answer string shown on the form.
func (c RecommendationCategory) Label() string {
	return recommendationCategoryLabels[c]
}

// ParseRecommendationCategory maps an answer string to its category. Only
// exact matches count; anything else is dropped by the aggregation.
func ParseRecommendationCategory(s string) (RecommendationCategory, bool) {
	for c, label := range recommendationCategoryLabels {
		if s == label {
			return RecommendationCategory(c), true
		}
	}
	return 0, false
}

func recommendationLabels() []string {
	out := make([]string, recommendationCategoryCount)
	for c, label := range recommendationCategoryLabels {
		out[c] = label
	}
	return out
}

// RecommendationDistribution counts responses per category.
type RecommendationDistribution [recommendationCategoryCount]int

// Count returns the bucket for one category.
func (d RecommendationDistribution) Count(c RecommendationCategory) int { return d[c] }

// MarshalJSON emits an object keyed by the exact answer labels, in
// category order, matching the dashboard's wire format.
func (d RecommendationDistribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for c, n := range d {
		if c > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(recommendationCategoryLabels[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		nb, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		buf.Write(nb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Statistics is the derived dashboard view, recomputed from the full
// response set on every fetch. Never persisted.
type Statistics struct {
	TotalResponses             int                        `json:"totalResponses"`
	AverageRatings             map[string]float64         `json:"averageRatings"`
	RecommendationDistribution RecommendationDistribution `json:"recommendationDistribution"`
}

// ComputeStatistics aggregates the given responses: total count, the mean
// of every rating question rounded half-away-from-zero to two decimals,
// and the recommendation distribution. Missing or non-numeric rating
// answers count as 0; unrecognized recommendation answers are dropped.
func ComputeStatistics(responses []*SurveyResponse) *Statistics {
	stats := &Statistics{
		TotalResponses: len(responses),
		AverageRatings: map[string]float64{},
	}
	sums := map[string]float64{}
	for _, q := range surveyQuestions {
		if q.Kind == QuestionRating {
			sums[q.ID] = 0
		}
	}
	for _, r := range responses {
		for id := range sums {
			sums[id] += numericAnswer(r.Answers[id])
		}
		if raw, ok := r.Answers["recommendation"].(string); ok {
			if c, ok := ParseRecommendationCategory(raw); ok {
				stats.RecommendationDistribution[c]++
			}
		}
	}
	for id, sum := range sums {
		if stats.TotalResponses == 0 {
			stats.AverageRatings[id] = 0
			continue
		}
		stats.AverageRatings[id] = round2(sum / float64(stats.TotalResponses))
	}
	return stats
}

func numericAnswer(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DashboardStore abstracts the reads backing the admin dashboard.
type DashboardStore interface {
	ListResponses() ([]*SurveyResponse, error)
	CountResponses() (int, error)
}

// DashboardService assembles the admin views over the full response set.
type DashboardService struct {
	store DashboardStore
}

// DashboardData pairs the raw response list with the derived statistics.
type DashboardData struct {
	Responses []*SurveyResponse `json:"responses"`
	Stats     *Statistics       `json:"stats"`
}

// ResponseList is the listing view: responses plus the store's count.
type ResponseList struct {
	Responses []*SurveyResponse `json:"responses"`
	Total     int               `json:"total"`
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

// Overview fetches all responses, newest first, and recomputes statistics.
func (s *DashboardService) Overview() (*DashboardData, error) {
	responses, err := s.store.ListResponses()
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*SurveyResponse{}
	}
	return &DashboardData{Responses: responses, Stats: ComputeStatistics(responses)}, nil
}

// List returns all responses with the store's total count.
func (s *DashboardService) List() (*ResponseList, error) {
	responses, err := s.store.ListResponses()
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*SurveyResponse{}
	}
	total, err := s.store.CountResponses()
	if err != nil {
		return nil, err
	}
	return &ResponseList{Responses: responses, Total: total}, nil
}
