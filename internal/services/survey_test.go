package services

import "testing"

func fullAnswers() AnswerSet {
	return AnswerSet{
		"overall_satisfaction": float64(5),
		"service_quality":      float64(4),
		"staff_friendliness":   float64(5),
		"recommendation":       "Definitivamente sí",
		"comments":             "",
	}
}

func TestQuestionsSchema(t *testing.T) {
	qs := Questions()
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if qs[0].ID != "overall_satisfaction" || qs[0].Kind != QuestionRating || qs[0].MaxRating != 5 {
		t.Fatalf("unexpected first question: %+v", qs[0])
	}
	if qs[3].Kind != QuestionMultipleChoice || len(qs[3].Options) != 5 {
		t.Fatalf("unexpected recommendation question: %+v", qs[3])
	}
	if qs[4].Required {
		t.Fatalf("comments must not be required")
	}

	// Mutating the returned slice must not affect the schema.
	qs[0].ID = "mutated"
	if Questions()[0].ID != "overall_satisfaction" {
		t.Fatalf("schema was mutated through the returned copy")
	}
}

func TestValidateAnswersComplete(t *testing.T) {
	if err := ValidateAnswers(fullAnswers()); err != nil {
		t.Fatalf("expected complete answers to validate, got %v", err)
	}

	// comments is optional and may be absent entirely.
	a := fullAnswers()
	delete(a, "comments")
	if err := ValidateAnswers(a); err != nil {
		t.Fatalf("expected answers without comments to validate, got %v", err)
	}
}

func TestValidateAnswersMissingRequired(t *testing.T) {
	a := fullAnswers()
	delete(a, "service_quality")
	err := ValidateAnswers(a)
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
	if se.Field != "service_quality" {
		t.Fatalf("expected error to name service_quality, got %q", se.Field)
	}
}

func TestValidateAnswersReportsFirstInSchemaOrder(t *testing.T) {
	err := ValidateAnswers(AnswerSet{})
	se, ok := AsServiceError(err)
	if !ok || se.Field != "overall_satisfaction" {
		t.Fatalf("expected first missing question in schema order, got %v", err)
	}
}

func TestValidateAnswersEmptyValues(t *testing.T) {
	a := fullAnswers()
	a["recommendation"] = "   "
	if se, ok := AsServiceError(ValidateAnswers(a)); !ok || se.Field != "recommendation" {
		t.Fatalf("blank string must not satisfy a required question")
	}

	a = fullAnswers()
	a["overall_satisfaction"] = float64(0)
	if se, ok := AsServiceError(ValidateAnswers(a)); !ok || se.Field != "overall_satisfaction" {
		t.Fatalf("zero rating must not satisfy a required question")
	}
}
