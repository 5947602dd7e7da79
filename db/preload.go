package db

import (
	log "github.com/sirupsen/logrus"

	"onboarding-checklist-backend/config"
	adminpaneluserstore "onboarding-checklist-backend/lib/admin-panel/store"
	authhelpers "onboarding-checklist-backend/lib/utils/auth-helpers"
	dbmodels "onboarding-checklist-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
}

func addDefaultAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("default admin not created, ADMIN_EMAIL is not set")
		return
	}
	adminStore := adminpaneluserstore.NewInstance(DB)
	existedRec, err := adminStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to create default admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.AdminPanelUser{
		Email:     config.Conf.Admin.Email,
		Password:  authhelpers.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
	}
	_, err = adminStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create default admin")
	}
}
