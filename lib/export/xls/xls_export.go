package xlsexport

import (
	"bytes"

	applicationapimodels "careers-backend/models/api/application"
	dbmodels "careers-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.ApplicationExt) (*bytes.Buffer, error)
	ExportStats(stats applicationapimodels.StatsView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"ID", "Applicant", "Email", "Position", "Status", "Submitted"}

func (i impl) ExportApplicationList(list []dbmodels.ApplicationExt) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.ID,
			metaString(item.Meta, "full_name"),
			metaString(item.Meta, "email"),
			item.JobName,
			string(item.Status),
			item.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err = writeRow(f, sheet, row, values); err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func (i impl) ExportStats(stats applicationapimodels.StatsView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, []string{"Metric", "Value"})
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	row++
	if err = writeRow(f, sheet, row, []interface{}{"Total applications", stats.Total}); err != nil {
		return nil, err
	}
	row++
	if err = writeRow(f, sheet, row, []interface{}{"Last 30 days", stats.Recent}); err != nil {
		return nil, err
	}
	for status, count := range stats.ByStatus {
		row++
		if err = writeRow(f, sheet, row, []interface{}{"Status: " + string(status), count}); err != nil {
			return nil, err
		}
	}
	for _, job := range stats.ByJob {
		row++
		name := job.JobName
		if name == "" {
			name = job.JobID
		}
		if err = writeRow(f, sheet, row, []interface{}{"Position: " + name, job.Count}); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Stats")
	return f.WriteToBuffer()
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return row, err
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return row, err
		}
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return row, err
		}
		if err = f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func metaString(meta dbmodels.ApplicationMeta, key string) string {
	if meta == nil {
		return ""
	}
	if value, ok := meta[key].(string); ok {
		return value
	}
	return ""
}
