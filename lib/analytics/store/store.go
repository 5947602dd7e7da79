package analyticsstore

import (
	"time"

	"gorm.io/gorm"

	"onboarding-checklist-backend/models"
	analyticsapimodels "onboarding-checklist-backend/models/api/analytics"
	dbmodels "onboarding-checklist-backend/models/db"
)

// CompletionSpan is the start/submission date pair of one complete record.
type CompletionSpan struct {
	StartDate      time.Time
	SubmissionDate time.Time
}

type Provider interface {
	TotalCount() (count int64, err error)
	CountByStatus(status models.SubmissionStatus) (count int64, err error)
	CompletionSpans() (list []CompletionSpan, err error)
	DepartmentCounts() (list []analyticsapimodels.DepartmentBreakdown, err error)
	AnswerRows() (list []dbmodels.ChecklistSubmission, err error)
	SubmissionDatesSince(since time.Time) (list []time.Time, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) TotalCount() (count int64, err error) {
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountByStatus(status models.SubmissionStatus) (count int64, err error) {
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Where("status = ?", status).
		Count(&count).
		Error
	return count, err
}

func (i impl) CompletionSpans() (list []CompletionSpan, err error) {
	list = []CompletionSpan{}
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Select("start_date, submission_date").
		Where("status = ?", models.SubmissionStatusComplete).
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DepartmentCounts() (list []analyticsapimodels.DepartmentBreakdown, err error) {
	list = []analyticsapimodels.DepartmentBreakdown{}
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Select("department, count(*) as count").
		Group("department").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AnswerRows() (list []dbmodels.ChecklistSubmission, err error) {
	list = []dbmodels.ChecklistSubmission{}
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Select("q1, q2, q3, q4, q5, q6, q7, q8, q9, q10, q11, q12").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SubmissionDatesSince(since time.Time) (list []time.Time, err error) {
	list = []time.Time{}
	err = i.db.
		Model(dbmodels.ChecklistSubmission{}).
		Where("submission_date >= ?", since).
		Pluck("submission_date", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
