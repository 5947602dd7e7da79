package checkliststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"onboarding-checklist-backend/lib/utils/helpers"
	checklistapimodels "onboarding-checklist-backend/models/api/checklist"
	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ChecklistSubmission) (id string, err error)
	GetByID(id string) (rec *dbmodels.ChecklistSubmission, err error)
	List(filter checklistapimodels.SubmissionFilter) (list []dbmodels.ChecklistSubmission, rowCount int64, err error)
	ListAll(filter checklistapimodels.SubmissionFilter) (list []dbmodels.ChecklistSubmission, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ChecklistSubmission) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ChecklistSubmission, error) {
	rec := dbmodels.ChecklistSubmission{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter checklistapimodels.SubmissionFilter) (list []dbmodels.ChecklistSubmission, rowCount int64, err error) {
	list = []dbmodels.ChecklistSubmission{}
	tx := i.db.Model(dbmodels.ChecklistSubmission{})
	tx = applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("submission_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// ListAll returns every record matching the filter, pagination ignored.
func (i impl) ListAll(filter checklistapimodels.SubmissionFilter) (list []dbmodels.ChecklistSubmission, err error) {
	list = []dbmodels.ChecklistSubmission{}
	tx := applyFilter(i.db.Model(dbmodels.ChecklistSubmission{}), filter)
	err = tx.
		Order("submission_date desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func applyFilter(tx *gorm.DB, filter checklistapimodels.SubmissionFilter) *gorm.DB {
	if filter.Department != "" && filter.Department != "all" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Status != "" && filter.Status != "all" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		if date, err := helpers.ParseDate(filter.DateFrom); err == nil {
			tx = tx.Where("submission_date >= ?", date)
		}
	}
	if filter.DateTo != "" {
		if date, err := helpers.ParseDate(filter.DateTo); err == nil {
			tx = tx.Where("submission_date <= ?", date)
		}
	}
	return tx
}
