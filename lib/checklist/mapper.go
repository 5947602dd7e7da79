package checklist

import (
	"onboarding-checklist-backend/models"
	dbmodels "onboarding-checklist-backend/models/db"
)

// MapResponses reshapes the flat per-question answers into the named boolean
// map shown on the admin detail view, one entry per single-choice question.
// A nil record passes through as a nil map.
func MapResponses(rec *dbmodels.ChecklistSubmission) map[string]bool {
	if rec == nil {
		return nil
	}
	responses := make(map[string]bool, len(models.ResponseTopics))
	for key, topic := range models.ResponseTopics {
		responses[topic] = rec.ScalarAnswer(key) == models.AnswerYes
	}
	return responses
}
