package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "onboarding-checklist-backend/models/db"
)

type Provider interface {
	ExportSubmissionList(list []dbmodels.ChecklistSubmission) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var submissionHeaders = []string{"Employee", "Employee ID", "Department", "Start Date", "Submission Date", "Status", "Completion %", "Okta Tiles", "Comments"}

func (i impl) ExportSubmissionList(list []dbmodels.ChecklistSubmission) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, submissionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeSubmissionData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Submissions")
	return f.WriteToBuffer()
}

func writeSubmissionData(f *excelize.File, sheet string, list []dbmodels.ChecklistSubmission, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(submissionHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Employee"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EmployeeName); err != nil {
			return row, err
		}

		// "Employee ID"
		col++
		if err := writeColumn(f, sheet, col, row, item.EmployeeID); err != nil {
			return row, err
		}

		// "Department"
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}

		// "Start Date"
		col++
		if !item.StartDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.StartDate.Format("01/02/2006")); err != nil {
				return row, err
			}
		}

		// "Submission Date"
		col++
		if !item.SubmissionDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmissionDate.Format("01/02/2006")); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Completion %"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%d%%", item.CompletionPercentage)); err != nil {
			return row, err
		}

		// "Okta Tiles"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Q6, ", ")); err != nil {
			return row, err
		}

		// "Comments"
		col++
		if err := writeColumn(f, sheet, col, row, item.Comments); err != nil {
			return row, err
		}
	}
	return row, nil
}
