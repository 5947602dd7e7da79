package checklistapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"onboarding-checklist-backend/models"
)

func fullDraft() SubmissionDraft {
	return SubmissionDraft{
		EmployeeName:  "Jordan Lee",
		EmployeeID:    "E-1042",
		Department:    "IT Support",
		StartDate:     "2024-03-01",
		Signature:     "Jordan Lee",
		SignatureDate: "2024-03-04",
		Q1:            models.AnswerYes,
		Q2:            models.AnswerYes,
		Q3:            models.AnswerNo,
		Q4:            models.AnswerYes,
		Q5:            models.AnswerYes,
		Q6:            []string{"Workday", "Mimecast", "Office 365"},
		Q7:            models.AnswerYes,
		Q8:            models.AnswerYes,
		Q9:            models.AnswerNo,
		Q10:           models.AnswerOptOutPersonalDevice,
		Q11:           models.AnswerYes,
		Q12:           models.AnswerYes,
	}
}

func TestValidate(t *testing.T) {
	t.Run(`empty draft yields one error per rule`, func(t *testing.T) {
		errs := SubmissionDraft{}.Validate()
		require.Equal(t, false, errs.IsValid())
		// 6 identity/signature fields + 11 single-choice questions + q6
		require.Equal(t, 18, len(errs))
		require.Equal(t, "Employee Name is required", errs["employee_name"])
		require.Equal(t, "Question 1 must be answered", errs["q1"])
		require.Equal(t, "Please select at least 3 options", errs["q6"])
	})

	t.Run(`full draft is valid`, func(t *testing.T) {
		errs := fullDraft().Validate()
		require.Equal(t, true, errs.IsValid())
	})

	t.Run(`two multi-select options reject the draft`, func(t *testing.T) {
		draft := fullDraft()
		draft.Q6 = []string{"Workday", "Mimecast"}
		errs := draft.Validate()
		require.Equal(t, false, errs.IsValid())
		require.Equal(t, 1, len(errs))
		require.Contains(t, errs, "q6")
	})

	t.Run(`opt-out answer allowed on q10 only`, func(t *testing.T) {
		draft := fullDraft()
		draft.Q11 = models.AnswerOptOutPersonalDevice
		errs := draft.Validate()
		require.Equal(t, "Question 11 has an invalid answer", errs["q11"])
	})
}

func TestCompletionPercentage(t *testing.T) {
	t.Run(`complete draft scores 100`, func(t *testing.T) {
		require.Equal(t, 100, fullDraft().CompletionPercentage())
	})

	t.Run(`any missing scalar field scores below 100`, func(t *testing.T) {
		draft := fullDraft()
		draft.Signature = ""
		pct := draft.CompletionPercentage()
		require.Less(t, pct, 100)
		require.Greater(t, pct, 0)
	})

	t.Run(`short multi-select scales a full draft to 90`, func(t *testing.T) {
		draft := fullDraft()
		draft.Q6 = []string{"Workday", "Mimecast"}
		require.Equal(t, 90, draft.CompletionPercentage())
	})

	t.Run(`empty draft scores 0`, func(t *testing.T) {
		require.Equal(t, 0, SubmissionDraft{}.CompletionPercentage())
	})
}

func TestStatusByCompletion(t *testing.T) {
	require.Equal(t, models.SubmissionStatusComplete, models.StatusByCompletion(100))
	require.Equal(t, models.SubmissionStatusPending, models.StatusByCompletion(99))
	require.Equal(t, models.SubmissionStatusPending, models.StatusByCompletion(50))
	require.Equal(t, models.SubmissionStatusIncomplete, models.StatusByCompletion(49))
	require.Equal(t, models.SubmissionStatusIncomplete, models.StatusByCompletion(0))
}

func TestToSubmission(t *testing.T) {
	t.Run(`derives status and completion`, func(t *testing.T) {
		now := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
		rec, err := fullDraft().ToSubmission(now)
		require.Nil(t, err)
		require.Equal(t, models.SubmissionStatusComplete, rec.Status)
		require.Equal(t, 100, rec.CompletionPercentage)
		require.Equal(t, "2024-03-01", rec.StartDate.Format("2006-01-02"))
		require.Equal(t, "2024-03-05", rec.SubmissionDate.Format("2006-01-02"))
	})

	t.Run(`bad date fails`, func(t *testing.T) {
		draft := fullDraft()
		draft.StartDate = "03/01/2024"
		_, err := draft.ToSubmission(time.Now())
		require.NotNil(t, err)
	})
}
