package dbmodels

import (
	"time"

	"github.com/lib/pq"

	"onboarding-checklist-backend/models"
)

// ChecklistSubmission is one completed onboarding checklist.
// Records are append-only: nothing updates or deletes them after the insert.
type ChecklistSubmission struct {
	BaseModel
	EmployeeName         string                  `gorm:"type:text;not null" json:"employee_name"`
	EmployeeID           string                  `gorm:"type:text;not null" json:"employee_id"`
	Department           string                  `gorm:"type:text;not null;index" json:"department"`
	StartDate            time.Time               `gorm:"type:date;not null" json:"start_date"`
	SubmissionDate       time.Time               `gorm:"type:date;not null;index" json:"submission_date"`
	Signature            string                  `gorm:"type:text;not null" json:"signature"` //typed name or data-url image
	SignatureDate        time.Time               `gorm:"type:date;not null" json:"signature_date"`
	Status               models.SubmissionStatus `gorm:"type:text;not null;index" json:"status"`
	CompletionPercentage int                     `gorm:"not null" json:"completion_percentage"`
	Q1                   string                  `gorm:"type:text;not null" json:"q1"`
	Q2                   string                  `gorm:"type:text;not null" json:"q2"`
	Q3                   string                  `gorm:"type:text;not null" json:"q3"`
	Q4                   string                  `gorm:"type:text;not null" json:"q4"`
	Q5                   string                  `gorm:"type:text;not null" json:"q5"`
	Q6                   pq.StringArray          `gorm:"type:text[];not null" json:"q6"`
	Q7                   string                  `gorm:"type:text;not null" json:"q7"`
	Q8                   string                  `gorm:"type:text;not null" json:"q8"`
	Q9                   string                  `gorm:"type:text;not null" json:"q9"`
	Q10                  string                  `gorm:"type:text;not null" json:"q10"`
	Q11                  string                  `gorm:"type:text;not null" json:"q11"`
	Q12                  string                  `gorm:"type:text;not null" json:"q12"`
	Comments             string                  `gorm:"type:text" json:"comments,omitempty"`
}

func (ChecklistSubmission) TableName() string {
	return "checklist_submissions"
}

// ScalarAnswer returns the stored answer of a single-choice question by key.
func (s ChecklistSubmission) ScalarAnswer(key string) string {
	switch key {
	case "q1":
		return s.Q1
	case "q2":
		return s.Q2
	case "q3":
		return s.Q3
	case "q4":
		return s.Q4
	case "q5":
		return s.Q5
	case "q7":
		return s.Q7
	case "q8":
		return s.Q8
	case "q9":
		return s.Q9
	case "q10":
		return s.Q10
	case "q11":
		return s.Q11
	case "q12":
		return s.Q12
	}
	return ""
}
