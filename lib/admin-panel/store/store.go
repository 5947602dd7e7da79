package adminpaneluserstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AdminPanelUser) (userID string, err error)
	FindByEmail(email string) (*dbmodels.AdminPanelUser, error)
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminPanelUser) (userID string, err error) {
	if rec.Email == "" {
		return "", errors.New("email is required")
	}
	r, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if r != nil {
		return "", errors.New("user already exists")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.AdminPanelUser, error) {
	rec := dbmodels.AdminPanelUser{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.AdminPanelUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}
