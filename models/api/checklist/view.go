package checklistapimodels

import (
	"github.com/pkg/errors"

	"onboarding-checklist-backend/lib/utils/helpers"
	"onboarding-checklist-backend/models"
	apimodels "onboarding-checklist-backend/models/api"
	dbmodels "onboarding-checklist-backend/models/db"
)

// SubmissionView is the stored record reshaped for the admin panel:
// dates rendered as YYYY-MM-DD and the per-topic response map attached.
type SubmissionView struct {
	ID                   string                  `json:"id"`
	EmployeeName         string                  `json:"employee_name"`
	EmployeeID           string                  `json:"employee_id"`
	Department           string                  `json:"department"`
	StartDate            string                  `json:"start_date"`
	SubmissionDate       string                  `json:"submission_date"`
	Signature            string                  `json:"signature"`
	SignatureDate        string                  `json:"signature_date"`
	Status               models.SubmissionStatus `json:"status"`
	CompletionPercentage int                     `json:"completion_percentage"`
	Q1                   string                  `json:"q1"`
	Q2                   string                  `json:"q2"`
	Q3                   string                  `json:"q3"`
	Q4                   string                  `json:"q4"`
	Q5                   string                  `json:"q5"`
	Q6                   []string                `json:"q6"`
	Q7                   string                  `json:"q7"`
	Q8                   string                  `json:"q8"`
	Q9                   string                  `json:"q9"`
	Q10                  string                  `json:"q10"`
	Q11                  string                  `json:"q11"`
	Q12                  string                  `json:"q12"`
	Comments             string                  `json:"comments,omitempty"`
	Responses            map[string]bool         `json:"responses,omitempty"`
	CreatedAt            string                  `json:"created_at"`
	UpdatedAt            string                  `json:"updated_at"`
}

func NewSubmissionView(rec dbmodels.ChecklistSubmission, responses map[string]bool) SubmissionView {
	return SubmissionView{
		ID:                   rec.ID,
		EmployeeName:         rec.EmployeeName,
		EmployeeID:           rec.EmployeeID,
		Department:           rec.Department,
		StartDate:            helpers.FormatDate(rec.StartDate),
		SubmissionDate:       helpers.FormatDate(rec.SubmissionDate),
		Signature:            rec.Signature,
		SignatureDate:        helpers.FormatDate(rec.SignatureDate),
		Status:               rec.Status,
		CompletionPercentage: rec.CompletionPercentage,
		Q1:                   rec.Q1,
		Q2:                   rec.Q2,
		Q3:                   rec.Q3,
		Q4:                   rec.Q4,
		Q5:                   rec.Q5,
		Q6:                   rec.Q6,
		Q7:                   rec.Q7,
		Q8:                   rec.Q8,
		Q9:                   rec.Q9,
		Q10:                  rec.Q10,
		Q11:                  rec.Q11,
		Q12:                  rec.Q12,
		Comments:             rec.Comments,
		Responses:            responses,
		CreatedAt:            rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            rec.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// SubmissionFilter narrows the admin list. Zero values mean "no filter".
type SubmissionFilter struct {
	apimodels.Pagination
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
	DateFrom   string `json:"date_from,omitempty"` //inclusive, on submission date
	DateTo     string `json:"date_to,omitempty"`   //inclusive, on submission date
}

func (f SubmissionFilter) Validate() error {
	switch models.SubmissionStatus(f.Status) {
	case "", models.SubmissionStatusComplete, models.SubmissionStatusIncomplete, models.SubmissionStatusPending:
	default:
		return errors.Errorf("unknown status value: %s", f.Status)
	}
	if f.DateFrom != "" {
		if _, err := helpers.ParseDate(f.DateFrom); err != nil {
			return err
		}
	}
	if f.DateTo != "" {
		if _, err := helpers.ParseDate(f.DateTo); err != nil {
			return err
		}
	}
	return nil
}

// QuestionsView describes the form for the public client.
type QuestionsView struct {
	Questions          map[string]string `json:"questions"`
	MultiSelectOptions []string          `json:"multi_select_options"`
	MultiSelectMin     int               `json:"multi_select_min"`
	Departments        []string          `json:"departments"`
	OptOutAnswer       string            `json:"opt_out_answer"` //allowed on q10 only
}
