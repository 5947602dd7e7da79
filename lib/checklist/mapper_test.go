package checklist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"onboarding-checklist-backend/models"
	dbmodels "onboarding-checklist-backend/models/db"
)

func TestMapResponses(t *testing.T) {
	t.Run(`nil record passes through`, func(t *testing.T) {
		require.Nil(t, MapResponses(nil))
	})

	t.Run(`answers map to named topics`, func(t *testing.T) {
		rec := &dbmodels.ChecklistSubmission{
			Q1:  models.AnswerYes,
			Q2:  models.AnswerNo,
			Q10: models.AnswerOptOutPersonalDevice,
			Q12: models.AnswerYes,
		}
		responses := MapResponses(rec)
		require.Equal(t, true, responses["company_handbook"])
		require.Equal(t, false, responses["team_introduction"])
		// opt-out is not an affirmative answer
		require.Equal(t, false, responses["software_access"])
		require.Equal(t, true, responses["job_description_review"])
	})

	t.Run(`one entry per single-choice question`, func(t *testing.T) {
		responses := MapResponses(&dbmodels.ChecklistSubmission{})
		require.Equal(t, len(models.ScalarQuestionKeys), len(responses))
		require.NotContains(t, responses, "manager_checkin")
	})
}
