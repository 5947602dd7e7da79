package initializers

import (
	"context"

	"onboarding-checklist-backend/config"
	"onboarding-checklist-backend/fiberlog"
	adminpanelauthhandler "onboarding-checklist-backend/lib/admin-panel/auth"
	"onboarding-checklist-backend/lib/analytics"
	appsettings "onboarding-checklist-backend/lib/app-settings"
	archiveworker "onboarding-checklist-backend/lib/archive-worker"
	"onboarding-checklist-backend/lib/checklist"
	xlsexport "onboarding-checklist-backend/lib/export/xls"
	filestorage "onboarding-checklist-backend/lib/file-storage"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	adminpanelauthhandler.NewHandler()
	appsettings.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	checklist.NewHandler()
	analytics.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// PDF archiving task, no-op when the S3 archive is disabled
	archiveworker.StartWorker(ctx)
}
