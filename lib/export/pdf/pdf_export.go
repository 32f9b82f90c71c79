package pdfexport

import (
	"bytes"

	positionapimodels "careers-backend/models/api/position"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GeneratePosition renders a one-page posting sheet for a position.
func GeneratePosition(view positionapimodels.PositionView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePosition panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, view.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, view.Location, "", 1, "L", false, 0, "")
	writeField(pdf, "Job type", view.JobType)
	writeField(pdf, "Schedule", view.ScheduleType)
	writeField(pdf, "Salary", view.SalaryRange)
	writeField(pdf, "Experience", view.ExperienceLevel)
	writeField(pdf, "Certification", view.CertificationRequired)
	pdf.Ln(4)

	writeSection(pdf, "Overview", []string{view.Overview})
	writeSection(pdf, "Responsibilities", view.Responsibilities)
	writeSection(pdf, "Requirements", view.Requirements)
	writeSection(pdf, "Equipment", view.Equipment)
	writeSection(pdf, "Benefits", view.Benefits)
	if view.LicenseInfo != "" {
		writeSection(pdf, "License", []string{view.LicenseInfo})
	}
	if view.HasVehicle {
		writeSection(pdf, "Vehicle", []string{view.VehicleDescription})
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf render failed")
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(35, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func writeSection(pdf *fpdf.Fpdf, title string, lines []string) {
	content := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			content = append(content, line)
		}
	}
	if len(content) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range content {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
	pdf.Ln(2)
}
