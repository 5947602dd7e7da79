package appsettingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	GetValueByCode(code string) (value string, err error)
	Set(code, value string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetValueByCode(code string) (value string, err error) {
	err = i.db.Model(dbmodels.AppSetting{}).
		Select("value").
		Where("code = ?", code).
		First(&value).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (i impl) Set(code, value string) error {
	rec := dbmodels.AppSetting{}
	err := i.db.
		Where("code = ?", code).
		First(&rec).
		Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		rec.Code = code
	}
	rec.Value = value
	return i.db.
		Save(&rec).
		Error
}
