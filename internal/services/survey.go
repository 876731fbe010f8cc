package services

import (
	"fmt"
	"strings"
	"time"
)

type QuestionKind string

const (
	QuestionRating         QuestionKind = "rating"
	QuestionText           QuestionKind = "text"
	QuestionMultipleChoice QuestionKind = "multiple-choice"
)

// Question is one entry of the static survey schema.
type Question struct {
	ID        string       `json:"id"`
	Kind      QuestionKind `json:"type"`
	Prompt    string       `json:"question"`
	Required  bool         `json:"required"`
	MaxRating int          `json:"maxRating,omitempty"`
	Options   []string     `json:"options,omitempty"`
}

// AnswerSet maps question ids to submitted values, a number for rating
// questions and a string for text and multiple-choice questions. Values are
// kept as submitted; no coercion happens anywhere past the JSON decoder.
type AnswerSet map[string]any

// SurveyResponse is one stored submission. Immutable once inserted.
type SurveyResponse struct {
	ID          string    `json:"id"`
	Answers     AnswerSet `json:"responses"`
	SubmittedAt time.Time `json:"submittedAt"`
	IPAddress   string    `json:"ipAddress,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
}

var surveyQuestions = []Question{
	{
		ID:        "overall_satisfaction",
		Kind:      QuestionRating,
		Prompt:    "¿Qué tan satisfecho está con nuestro servicio en general?",
		Required:  true,
		MaxRating: 5,
	},
	{
		ID:        "service_quality",
		Kind:      QuestionRating,
		Prompt:    "¿Cómo calificaría la calidad del servicio recibido?",
		Required:  true,
		MaxRating: 5,
	},
	{
		ID:        "staff_friendliness",
		Kind:      QuestionRating,
		Prompt:    "¿Qué tan amable fue nuestro personal?",
		Required:  true,
		MaxRating: 5,
	},
	{
		ID:       "recommendation",
		Kind:     QuestionMultipleChoice,
		Prompt:   "¿Recomendaría nuestros servicios a familiares y amigos?",
		Required: true,
		Options:  recommendationLabels(),
	},
	{
		ID:     "comments",
		Kind:   QuestionText,
		Prompt: "¿Hay algo que nos gustaría saber para mejorar nuestro servicio?",
	},
}

// Questions returns the survey schema in presentation order. Callers get a
// fresh slice; the schema itself is immutable.
func Questions() []Question {
	out := make([]Question, len(surveyQuestions))
	copy(out, surveyQuestions)
	return out
}

// ValidateAnswers checks that every required question has a non-empty
// answer, in schema order. The first violation is reported with the
// question id; non-required questions may be absent or empty.
func ValidateAnswers(answers AnswerSet) error {
	for _, q := range surveyQuestions {
		if !q.Required {
			continue
		}
		if !answered(answers[q.ID]) {
			return NewFieldError(q.ID, fmt.Sprintf("required question %q not answered", q.ID))
		}
	}
	return nil
}

func answered(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	default:
		// accepted as submitted
		return true
	}
}
