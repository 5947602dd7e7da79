package filesdbstorage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetFileIDByType(submissionID string, fileType dbmodels.FileType) (id string, err error)
	ListMissing(fileType dbmodels.FileType, limit int) (submissionIDs []string, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetFileIDByType(submissionID string, fileType dbmodels.FileType) (id string, err error) {
	rec := dbmodels.FileStorage{}
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("submission_id = ? AND file_type = ?", submissionID, fileType).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.ID, nil
}

// ListMissing returns submissions that have no stored file of the given type yet.
func (i impl) ListMissing(fileType dbmodels.FileType, limit int) (submissionIDs []string, err error) {
	submissionIDs = []string{}
	err = i.db.
		Model(&dbmodels.ChecklistSubmission{}).
		Select("checklist_submissions.id").
		Joins("left join file_storages as f on f.submission_id = checklist_submissions.id and f.file_type = ?", fileType).
		Where("f.id is null").
		Limit(limit).
		Pluck("checklist_submissions.id", &submissionIDs).
		Error
	if err != nil {
		return nil, err
	}
	return submissionIDs, nil
}
