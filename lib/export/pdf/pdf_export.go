package pdfexport

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"onboarding-checklist-backend/lib/utils/helpers"
	"onboarding-checklist-backend/models"
	dbmodels "onboarding-checklist-backend/models/db"
)

const (
	pageMargin = 20.0
	lineStep   = 7.0
	// vertical thresholds before each block forces a page break
	questionBreakY  = 250.0
	commentsBreakY  = 230.0
	signatureBreakY = 200.0
)

var questionOrder = []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9", "q10", "q11", "q12"}

// GenerateChecklist lays out one submission as a paginated A4 document:
// title, employee block, the 12 question/answer lines, an optional comments
// block and the signature block. A malformed signature image degrades to a
// placeholder line so generation still completes.
func GenerateChecklist(rec dbmodels.ChecklistSubmission) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateChecklist panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - pageMargin*2

	pdf.SetFont("Helvetica", "B", 18)
	title := "Employee Onboarding Checklist"
	pdf.Text(pageWidth/2-pdf.GetStringWidth(title)/2, 20, title)

	pdf.SetFont("Helvetica", "", 12)
	y := 35.0

	y = writeHeading(pdf, y, "Employee Information")
	pdf.Text(pageMargin, y, fmt.Sprintf("Name: %s", rec.EmployeeName))
	y += lineStep
	pdf.Text(pageMargin, y, fmt.Sprintf("Employee ID: %s", rec.EmployeeID))
	y += lineStep
	pdf.Text(pageMargin, y, fmt.Sprintf("Department: %s", rec.Department))
	y += lineStep
	pdf.Text(pageMargin, y, fmt.Sprintf("Start Date: %s", helpers.FormatDateUS(rec.StartDate)))
	y += 15

	y = writeHeading(pdf, y, "Onboarding Checklist Items")
	for idx, key := range questionOrder {
		if y > questionBreakY {
			pdf.AddPage()
			y = 20
		}
		responseText := "N/A"
		if key == "q6" {
			if len(rec.Q6) > 0 {
				responseText = strings.Join(rec.Q6, ", ")
			}
		} else if answer := rec.ScalarAnswer(key); answer != "" {
			responseText = answer
		}
		pdf.Text(pageMargin, y, fmt.Sprintf("%d. %s", idx+1, models.QuestionTexts[key]))
		y += lineStep
		pdf.Text(pageMargin, y, fmt.Sprintf("   Response: %s", responseText))
		y += 10
	}

	if rec.Comments != "" {
		if y > commentsBreakY {
			pdf.AddPage()
			y = 20
		}
		y = writeHeading(pdf, y, "Additional Comments")
		lines := pdf.SplitText(rec.Comments, contentWidth)
		for _, line := range lines {
			pdf.Text(pageMargin, y, line)
			y += lineStep
		}
		y += 10
	}

	if y > signatureBreakY {
		pdf.AddPage()
		y = 20
	}
	y = writeHeading(pdf, y, "Acknowledgment")
	pdf.Text(pageMargin, y, "I acknowledge that I have completed the above checklist items.")
	y += 20
	y = writeSignature(pdf, y, rec.Signature)
	pdf.Text(pageMargin, y, fmt.Sprintf("Date: %s", helpers.FormatDateUS(rec.SignatureDate)))

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *fpdf.Fpdf, y float64, text string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageMargin, y, text)
	pdf.SetFont("Helvetica", "", 12)
	return y + 10
}

func writeSignature(pdf *fpdf.Fpdf, y float64, signature string) float64 {
	if signature == "" {
		pdf.Text(pageMargin, y, "Signature: [No signature provided]")
		return y + 10
	}
	if !strings.HasPrefix(signature, "data:image/") {
		// typed name
		pdf.Text(pageMargin, y, fmt.Sprintf("Signature: %s", signature))
		return y + 10
	}
	body, imgType, err := decodeSignatureImage(signature)
	if err != nil {
		pdf.Text(pageMargin, y, "Signature: [Error displaying signature]")
		return y + 10
	}
	options := fpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader("signature", options, bytes.NewReader(body))
	pdf.ImageOptions("signature", pageMargin, y, 60, 30, false, options, 0, "")
	return y + 35
}

// decodeSignatureImage unpacks a base64 data-url and verifies it really is
// a renderable image before it reaches the pdf engine.
func decodeSignatureImage(dataURL string) (body []byte, imgType string, err error) {
	parts := strings.SplitN(dataURL, ";base64,", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("signature is not a base64 data-url")
	}
	body, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode signature image")
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, "", errors.Wrap(err, "signature image is not decodable")
	}
	return body, format, nil
}
