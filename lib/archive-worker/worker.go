package archiveworker

import (
	"context"
	"time"

	"onboarding-checklist-backend/lib/checklist"
	filestorage "onboarding-checklist-backend/lib/file-storage"
	baseworker "onboarding-checklist-backend/lib/utils/base-worker"
)

const batchLimit = 50

// StartWorker periodically uploads generated PDFs of submissions that have
// no archived document yet. A no-op while the archive flag is off.
func StartWorker(ctx context.Context) {
	w := impl{
		BaseImpl: *baseworker.NewInstance("checklist_pdf_archive", time.Minute, 10*time.Minute),
	}
	go w.Run(ctx, w.archive)
}

type impl struct {
	baseworker.BaseImpl
}

func (i impl) archive(ctx context.Context) {
	if !filestorage.Instance.Enabled() {
		return
	}
	logger := i.GetLogger()
	submissionIDs, err := filestorage.Instance.ListUnarchived(batchLimit)
	if err != nil {
		logger.WithError(err).Error("failed to list unarchived submissions")
		return
	}
	for _, id := range submissionIDs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		fileName, body, err := checklist.Instance.ExportPDF(id)
		if err != nil {
			logger.WithError(err).
				WithField("submission_id", id).
				Error("failed to generate checklist pdf")
			continue
		}
		if body == nil {
			continue
		}
		err = filestorage.Instance.ArchiveChecklistPDF(ctx, id, fileName, body)
		if err != nil {
			logger.WithError(err).
				WithField("submission_id", id).
				Error("failed to archive checklist pdf")
		}
	}
}
