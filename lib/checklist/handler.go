package checklist

import (
	"bytes"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"onboarding-checklist-backend/config"
	"onboarding-checklist-backend/db"
	checkliststore "onboarding-checklist-backend/lib/checklist/store"
	pdfexport "onboarding-checklist-backend/lib/export/pdf"
	xlsexport "onboarding-checklist-backend/lib/export/xls"
	filestorage "onboarding-checklist-backend/lib/file-storage"
	"onboarding-checklist-backend/lib/smtp"
	initchecker "onboarding-checklist-backend/lib/utils/init-checker"
	"onboarding-checklist-backend/models"
	checklistapimodels "onboarding-checklist-backend/models/api/checklist"
)

type Provider interface {
	Submit(draft checklistapimodels.SubmissionDraft) (id string, validationErrs checklistapimodels.ValidationErrors, err error)
	GetByID(id string) (view *checklistapimodels.SubmissionView, err error)
	List(filter checklistapimodels.SubmissionFilter) (list []checklistapimodels.SubmissionView, rowCount int64, err error)
	ExportPDF(id string) (fileName string, body []byte, err error)
	ExportXls(filter checklistapimodels.SubmissionFilter) (*bytes.Buffer, error)
	Questions() checklistapimodels.QuestionsView
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: checkliststore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store checkliststore.Provider
}

// Submit validates the draft and stores it as a single insert. The stored
// status and completion score are derived from the draft, never taken from
// the client. Returns the validation error map when the draft is rejected.
func (i impl) Submit(draft checklistapimodels.SubmissionDraft) (string, checklistapimodels.ValidationErrors, error) {
	validationErrs := draft.Validate()
	if !validationErrs.IsValid() {
		return "", validationErrs, nil
	}
	rec, err := draft.ToSubmission(time.Now())
	if err != nil {
		return "", nil, err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", nil, err
	}
	go i.notify(id, rec.EmployeeName, rec.Department)
	return id, nil, nil
}

func (i impl) GetByID(id string) (*checklistapimodels.SubmissionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := checklistapimodels.NewSubmissionView(*rec, MapResponses(rec))
	return &view, nil
}

func (i impl) List(filter checklistapimodels.SubmissionFilter) ([]checklistapimodels.SubmissionView, int64, error) {
	recs, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]checklistapimodels.SubmissionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, checklistapimodels.NewSubmissionView(rec, nil))
	}
	return list, rowCount, nil
}

func (i impl) ExportPDF(id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, nil
	}
	fileName := fmt.Sprintf("checklist-%s.pdf", rec.ID)
	if filestorage.Instance.Enabled() {
		body, err := filestorage.Instance.GetChecklistPDF(context.Background(), id)
		if err != nil {
			log.WithError(err).
				WithField("submission_id", id).
				Warn("failed to read the archived pdf, generating a fresh one")
		}
		if len(body) > 0 {
			return fileName, body, nil
		}
	}
	body, err := pdfexport.GenerateChecklist(*rec)
	if err != nil {
		return "", nil, err
	}
	return fileName, body, nil
}

// ExportXls exports the whole filtered list, not one page of it.
func (i impl) ExportXls(filter checklistapimodels.SubmissionFilter) (*bytes.Buffer, error) {
	recs, err := i.store.ListAll(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportSubmissionList(recs)
}

func (i impl) Questions() checklistapimodels.QuestionsView {
	return checklistapimodels.QuestionsView{
		Questions:          models.QuestionTexts,
		MultiSelectOptions: models.MultiSelectOptions,
		MultiSelectMin:     models.MultiSelectMinCount,
		Departments:        models.Departments,
		OptOutAnswer:       models.AnswerOptOutPersonalDevice,
	}
}

// notify is best effort, a mail failure never fails the submission.
func (i impl) notify(id, employeeName, department string) {
	notifyEmail := config.Conf.Smtp.NotifyEmail
	if notifyEmail == "" {
		return
	}
	message := fmt.Sprintf("New onboarding checklist submitted by %s (%s). Submission ID: %s", employeeName, department, id)
	err := smtp.Instance.SendEMail(config.Conf.Smtp.User, notifyEmail, message, "new submission")
	if err != nil {
		log.WithError(err).
			WithField("submission_id", id).
			Error("failed to send submission notification")
	}
}
