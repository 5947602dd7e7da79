package pdfexport

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"onboarding-checklist-backend/models"
	dbmodels "onboarding-checklist-backend/models/db"
)

func sampleSubmission() dbmodels.ChecklistSubmission {
	return dbmodels.ChecklistSubmission{
		EmployeeName:         "Jordan Lee",
		EmployeeID:           "E-1042",
		Department:           "IT Support",
		StartDate:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		SubmissionDate:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Signature:            "Jordan Lee",
		SignatureDate:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:               models.SubmissionStatusComplete,
		CompletionPercentage: 100,
		Q1:                   models.AnswerYes,
		Q2:                   models.AnswerNo,
		Q3:                   models.AnswerYes,
		Q4:                   models.AnswerYes,
		Q5:                   models.AnswerYes,
		Q6:                   []string{"Workday", "Mimecast", "Office 365"},
		Q7:                   models.AnswerYes,
		Q8:                   models.AnswerYes,
		Q9:                   models.AnswerYes,
		Q10:                  models.AnswerOptOutPersonalDevice,
		Q11:                  models.AnswerYes,
		Q12:                  models.AnswerYes,
	}
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	buf := new(bytes.Buffer)
	require.Nil(t, png.Encode(buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGenerateChecklist(t *testing.T) {
	t.Run(`typed signature`, func(t *testing.T) {
		body, err := GenerateChecklist(sampleSubmission())
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run(`image signature`, func(t *testing.T) {
		rec := sampleSubmission()
		rec.Signature = pngDataURL(t)
		body, err := GenerateChecklist(rec)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run(`broken signature image falls back to placeholder`, func(t *testing.T) {
		rec := sampleSubmission()
		rec.Signature = "data:image/png;base64,bm90LWFuLWltYWdl"
		body, err := GenerateChecklist(rec)
		require.Nil(t, err)
		require.True(t, len(body) > 0)
	})

	t.Run(`long comments still generate`, func(t *testing.T) {
		rec := sampleSubmission()
		rec.Comments = strings.Repeat("The employee completed every item without issues. ", 80)
		body, err := GenerateChecklist(rec)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	})

	t.Run(`empty record still generates`, func(t *testing.T) {
		body, err := GenerateChecklist(dbmodels.ChecklistSubmission{})
		require.Nil(t, err)
		require.True(t, len(body) > 0)
	})
}

func TestDecodeSignatureImage(t *testing.T) {
	t.Run(`valid png`, func(t *testing.T) {
		body, imgType, err := decodeSignatureImage(pngDataURL(t))
		require.Nil(t, err)
		require.Equal(t, "png", imgType)
		require.True(t, len(body) > 0)
	})

	t.Run(`not a data-url`, func(t *testing.T) {
		_, _, err := decodeSignatureImage("data:image/png,plain")
		require.NotNil(t, err)
	})

	t.Run(`not base64`, func(t *testing.T) {
		_, _, err := decodeSignatureImage("data:image/png;base64,!!!")
		require.NotNil(t, err)
	})
}
