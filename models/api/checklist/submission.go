package checklistapimodels

import (
	"fmt"
	"math"
	"time"

	"onboarding-checklist-backend/lib/utils/helpers"
	"onboarding-checklist-backend/models"
	dbmodels "onboarding-checklist-backend/models/db"
)

// SubmissionDraft is the form payload as submitted by the employee.
// Every field is optional here; Validate decides whether the draft can
// become a stored submission.
type SubmissionDraft struct {
	EmployeeName   string   `json:"employee_name"`
	EmployeeID     string   `json:"employee_id"`
	Department     string   `json:"department"`
	StartDate      string   `json:"start_date"` //YYYY-MM-DD
	SubmissionDate string   `json:"submission_date"`
	Signature      string   `json:"signature"` //typed name or data-url image
	SignatureDate  string   `json:"signature_date"`
	Q1             string   `json:"q1"`
	Q2             string   `json:"q2"`
	Q3             string   `json:"q3"`
	Q4             string   `json:"q4"`
	Q5             string   `json:"q5"`
	Q6             []string `json:"q6"`
	Q7             string   `json:"q7"`
	Q8             string   `json:"q8"`
	Q9             string   `json:"q9"`
	Q10            string   `json:"q10"`
	Q11            string   `json:"q11"`
	Q12            string   `json:"q12"`
	Comments       string   `json:"comments"`
}

// ValidationErrors maps a field name to a human readable message.
type ValidationErrors map[string]string

func (v ValidationErrors) IsValid() bool {
	return len(v) == 0
}

var requiredFields = []struct {
	key   string
	label string
}{
	{"employee_name", "Employee Name"},
	{"employee_id", "Employee ID"},
	{"department", "Department"},
	{"start_date", "Start Date"},
	{"signature", "Signature"},
	{"signature_date", "Signature Date"},
}

// Validate checks the draft against the submission rules: the six
// identity/signature fields are required, every single-choice question must
// carry an allowed answer and the multi-select question needs at least
// three options. An empty draft yields one error entry per rule (18 total).
func (d SubmissionDraft) Validate() ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range requiredFields {
		if d.field(field.key) == "" {
			errs[field.key] = fmt.Sprintf("%s is required", field.label)
		}
	}
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("q%d", i)
		if key == "q6" {
			continue
		}
		answer := d.scalarAnswer(key)
		if answer == "" {
			errs[key] = fmt.Sprintf("Question %d must be answered", i)
			continue
		}
		if !allowedAnswer(key, answer) {
			errs[key] = fmt.Sprintf("Question %d has an invalid answer", i)
		}
	}
	if len(d.Q6) < models.MultiSelectMinCount {
		errs["q6"] = fmt.Sprintf("Please select at least %d options", models.MultiSelectMinCount)
	}
	return errs
}

// CompletionPercentage derives the 0-100 completion score from the filled
// share of the required scalar fields. A multi-select below the minimum
// scales the score by 0.9 instead of rejecting the draft outright, so
// partially answered historic records still grade sensibly: a draft with
// every scalar field filled but only two q6 options scores 90.
func (d SubmissionDraft) CompletionPercentage() int {
	total := len(requiredFields) + len(models.ScalarQuestionKeys)
	filled := 0
	for _, field := range requiredFields {
		if d.field(field.key) != "" {
			filled++
		}
	}
	for _, key := range models.ScalarQuestionKeys {
		if d.scalarAnswer(key) != "" {
			filled++
		}
	}
	pct := math.Round(float64(filled) / float64(total) * 100)
	if len(d.Q6) < models.MultiSelectMinCount {
		pct = math.Round(pct * 0.9)
	}
	return int(pct)
}

// ToSubmission converts a validated draft into a storable record with the
// derived status and completion score. Call Validate first; here only the
// date fields can still fail.
func (d SubmissionDraft) ToSubmission(now time.Time) (dbmodels.ChecklistSubmission, error) {
	startDate, err := helpers.ParseDate(d.StartDate)
	if err != nil {
		return dbmodels.ChecklistSubmission{}, err
	}
	signatureDate, err := helpers.ParseDate(d.SignatureDate)
	if err != nil {
		return dbmodels.ChecklistSubmission{}, err
	}
	submissionDate := now.Truncate(24 * time.Hour)
	if d.SubmissionDate != "" {
		submissionDate, err = helpers.ParseDate(d.SubmissionDate)
		if err != nil {
			return dbmodels.ChecklistSubmission{}, err
		}
	}
	completion := d.CompletionPercentage()
	return dbmodels.ChecklistSubmission{
		EmployeeName:         d.EmployeeName,
		EmployeeID:           d.EmployeeID,
		Department:           d.Department,
		StartDate:            startDate,
		SubmissionDate:       submissionDate,
		Signature:            d.Signature,
		SignatureDate:        signatureDate,
		Status:               models.StatusByCompletion(completion),
		CompletionPercentage: completion,
		Q1:                   d.Q1,
		Q2:                   d.Q2,
		Q3:                   d.Q3,
		Q4:                   d.Q4,
		Q5:                   d.Q5,
		Q6:                   d.Q6,
		Q7:                   d.Q7,
		Q8:                   d.Q8,
		Q9:                   d.Q9,
		Q10:                  d.Q10,
		Q11:                  d.Q11,
		Q12:                  d.Q12,
		Comments:             d.Comments,
	}, nil
}

func (d SubmissionDraft) field(key string) string {
	switch key {
	case "employee_name":
		return d.EmployeeName
	case "employee_id":
		return d.EmployeeID
	case "department":
		return d.Department
	case "start_date":
		return d.StartDate
	case "signature":
		return d.Signature
	case "signature_date":
		return d.SignatureDate
	}
	return ""
}

func (d SubmissionDraft) scalarAnswer(key string) string {
	switch key {
	case "q1":
		return d.Q1
	case "q2":
		return d.Q2
	case "q3":
		return d.Q3
	case "q4":
		return d.Q4
	case "q5":
		return d.Q5
	case "q7":
		return d.Q7
	case "q8":
		return d.Q8
	case "q9":
		return d.Q9
	case "q10":
		return d.Q10
	case "q11":
		return d.Q11
	case "q12":
		return d.Q12
	}
	return ""
}

func allowedAnswer(key, answer string) bool {
	if answer == models.AnswerYes || answer == models.AnswerNo {
		return true
	}
	return key == "q10" && answer == models.AnswerOptOutPersonalDevice
}
