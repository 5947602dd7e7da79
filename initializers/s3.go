package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"onboarding-checklist-backend/config"
	s3client "onboarding-checklist-backend/s3"
)

func InitS3(ctx context.Context) {
	if !*config.Conf.S3.Enabled {
		log.Info("S3 archive is disabled, skipping client init")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init the S3 client")
		return
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("failed to ensure the S3 archive bucket")
		s3client.Client = nil
		return
	}
	log.Info("S3 client initialized")
}
