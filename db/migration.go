package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "onboarding-checklist-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.ChecklistSubmission{}); err != nil {
		return errors.Wrap(err, "failed to migrate ChecklistSubmission")
	}
	if err := DB.AutoMigrate(&dbmodels.AdminPanelUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate AdminPanelUser")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "failed to migrate FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.AppSetting{}); err != nil {
		return errors.Wrap(err, "failed to migrate AppSetting")
	}
	log.Info("migrations finished")
	return nil
}
