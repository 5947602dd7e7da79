package checklist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	checkliststore "onboarding-checklist-backend/lib/checklist/store"
	xlsexport "onboarding-checklist-backend/lib/export/xls"
	checklistapimodels "onboarding-checklist-backend/models/api/checklist"
	dbmodels "onboarding-checklist-backend/models/db"
)

type stubStore struct {
	all []dbmodels.ChecklistSubmission
}

func (s stubStore) Create(rec dbmodels.ChecklistSubmission) (string, error) { return "", nil }

func (s stubStore) GetByID(id string) (*dbmodels.ChecklistSubmission, error) { return nil, nil }

func (s stubStore) List(filter checklistapimodels.SubmissionFilter) ([]dbmodels.ChecklistSubmission, int64, error) {
	page, limit := filter.GetPage()
	from := (page - 1) * limit
	if from > len(s.all) {
		from = len(s.all)
	}
	to := from + limit
	if to > len(s.all) {
		to = len(s.all)
	}
	return s.all[from:to], int64(len(s.all)), nil
}

func (s stubStore) ListAll(filter checklistapimodels.SubmissionFilter) ([]dbmodels.ChecklistSubmission, error) {
	return s.all, nil
}

var _ checkliststore.Provider = stubStore{}

func TestExportXls(t *testing.T) {
	xlsexport.NewHandler()
	list := make([]dbmodels.ChecklistSubmission, 0, 150)
	for n := 0; n < 150; n++ {
		list = append(list, dbmodels.ChecklistSubmission{
			EmployeeName: fmt.Sprintf("Employee %d", n),
		})
	}
	h := impl{store: stubStore{all: list}}

	t.Run("keeps every filtered row past the list page cap", func(t *testing.T) {
		buf, err := h.ExportXls(checklistapimodels.SubmissionFilter{})
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Submissions")
		require.NoError(t, err)
		require.Len(t, rows, 151) // header + all 150 records
		require.Equal(t, "Employee 149", rows[150][0])
	})

	t.Run("empty list still yields the header", func(t *testing.T) {
		empty := impl{store: stubStore{}}
		buf, err := empty.ExportXls(checklistapimodels.SubmissionFilter{})
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Submissions")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
