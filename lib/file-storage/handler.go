package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"onboarding-checklist-backend/config"
	"onboarding-checklist-backend/db"
	filesdbstorage "onboarding-checklist-backend/lib/file-storage/storage"
	dbmodels "onboarding-checklist-backend/models/db"
	s3client "onboarding-checklist-backend/s3"
)

// ErrDisabled is returned when the document archive feature flag is off.
var ErrDisabled = errors.New("document archive is disabled")

type Provider interface {
	Enabled() bool
	ArchiveChecklistPDF(ctx context.Context, submissionID, fileName string, body []byte) error
	GetChecklistPDF(ctx context.Context, submissionID string) ([]byte, error)
	ListUnarchived(limit int) (submissionIDs []string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	store filesdbstorage.Provider
}

func (i impl) Enabled() bool {
	return config.Conf.S3.Enabled != nil && *config.Conf.S3.Enabled && s3client.Client != nil
}

// ArchiveChecklistPDF uploads the generated document and records its
// metadata. A submission is archived at most once.
func (i impl) ArchiveChecklistPDF(ctx context.Context, submissionID, fileName string, body []byte) error {
	if !i.Enabled() {
		return ErrDisabled
	}
	existingID, err := i.store.GetFileIDByType(submissionID, dbmodels.ChecklistPDFFileType)
	if err != nil {
		return err
	}
	if existingID != "" {
		return nil
	}
	fileID, err := i.store.SaveFile(dbmodels.FileStorage{
		SubmissionID: submissionID,
		FileType:     dbmodels.ChecklistPDFFileType,
		Name:         fileName,
		ContentType:  "application/pdf",
	})
	if err != nil {
		return err
	}
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, fileID,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return errors.Wrap(err, "failed to upload checklist pdf")
	}
	return nil
}

func (i impl) GetChecklistPDF(ctx context.Context, submissionID string) ([]byte, error) {
	if !i.Enabled() {
		return nil, ErrDisabled
	}
	fileID, err := i.store.GetFileIDByType(submissionID, dbmodels.ChecklistPDFFileType)
	if err != nil {
		return nil, err
	}
	if fileID == "" {
		return nil, nil
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) ListUnarchived(limit int) ([]string, error) {
	return i.store.ListMissing(dbmodels.ChecklistPDFFileType, limit)
}
