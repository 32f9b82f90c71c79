package positionapimodels

import (
	"fmt"
	"strings"
	"time"

	"careers-backend/lib/apperrors"
	"careers-backend/lib/utils/helpers"
	"careers-backend/models"
	apimodels "careers-backend/models/api"
	dbmodels "careers-backend/models/db"
)

type PositionData struct {
	Name                  string                `json:"name"`
	Location              string                `json:"location"`
	JobType               string                `json:"job_type"`
	SalaryRange           string                `json:"salary_range"`
	ScheduleType          string                `json:"schedule_type"`
	ExperienceLevel       string                `json:"experience_level"`
	CertificationRequired string                `json:"certification_required"`
	Overview              string                `json:"overview"`
	Responsibilities      []string              `json:"responsibilities"`
	Requirements          []string              `json:"requirements"`
	Equipment             []string              `json:"equipment"`
	Benefits              []string              `json:"benefits"`
	LicenseInfo           string                `json:"license_info"`
	HasVehicle            bool                  `json:"has_vehicle"`
	VehicleDescription    string                `json:"vehicle_description"`
	Status                models.PositionStatus `json:"status"`
}

func (p PositionData) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.New(apperrors.KindMissingData, "position name is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return apperrors.New(apperrors.KindMissingData, "position location is required")
	}
	if p.Status != "" && !p.Status.IsValid() {
		return apperrors.New(apperrors.KindInvalidStatus, fmt.Sprintf("unknown position status %q", p.Status))
	}
	return nil
}

// PositionUpdateData carries a partial update; only non-nil fields are written.
type PositionUpdateData struct {
	Name                  *string                `json:"name"`
	Location              *string                `json:"location"`
	JobType               *string                `json:"job_type"`
	SalaryRange           *string                `json:"salary_range"`
	ScheduleType          *string                `json:"schedule_type"`
	ExperienceLevel       *string                `json:"experience_level"`
	CertificationRequired *string                `json:"certification_required"`
	Overview              *string                `json:"overview"`
	Responsibilities      *[]string              `json:"responsibilities"`
	Requirements          *[]string              `json:"requirements"`
	Equipment             *[]string              `json:"equipment"`
	Benefits              *[]string              `json:"benefits"`
	LicenseInfo           *string                `json:"license_info"`
	HasVehicle            *bool                  `json:"has_vehicle"`
	VehicleDescription    *string                `json:"vehicle_description"`
	Status                *models.PositionStatus `json:"status"`
}

func (p PositionUpdateData) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return apperrors.New(apperrors.KindMissingData, "position name cannot be cleared")
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return apperrors.New(apperrors.KindMissingData, "position location cannot be cleared")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return apperrors.New(apperrors.KindInvalidStatus, fmt.Sprintf("unknown position status %q", *p.Status))
	}
	return nil
}

// UpdateMap builds the column map for a partial update.
func (p PositionUpdateData) UpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	setText := func(column string, value *string) {
		if value != nil {
			updMap[column] = helpers.NormalizeText(*value)
		}
	}
	setRich := func(column string, value *string) {
		if value != nil {
			updMap[column] = helpers.NormalizeRichText(*value)
		}
	}
	setLines := func(column string, value *[]string) {
		if value != nil {
			updMap[column] = helpers.JoinLines(*value)
		}
	}
	setText("name", p.Name)
	setText("location", p.Location)
	setText("job_type", p.JobType)
	setText("salary_range", p.SalaryRange)
	setText("schedule_type", p.ScheduleType)
	setText("experience_level", p.ExperienceLevel)
	setText("certification_required", p.CertificationRequired)
	setRich("overview", p.Overview)
	setLines("responsibilities", p.Responsibilities)
	setLines("requirements", p.Requirements)
	setLines("equipment", p.Equipment)
	setLines("benefits", p.Benefits)
	setRich("license_info", p.LicenseInfo)
	if p.HasVehicle != nil {
		updMap["has_vehicle"] = *p.HasVehicle
	}
	setRich("vehicle_description", p.VehicleDescription)
	if p.Status != nil {
		updMap["status"] = *p.Status
	}
	return updMap
}

type PositionView struct {
	PositionData
	ID        string    `json:"id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func PositionConvert(rec dbmodels.Position) PositionView {
	return PositionView{
		PositionData: PositionData{
			Name:                  rec.Name,
			Location:              rec.Location,
			JobType:               rec.JobType,
			SalaryRange:           rec.SalaryRange,
			ScheduleType:          rec.ScheduleType,
			ExperienceLevel:       rec.ExperienceLevel,
			CertificationRequired: rec.CertificationRequired,
			Overview:              rec.Overview,
			Responsibilities:      helpers.SplitLines(rec.Responsibilities),
			Requirements:          helpers.SplitLines(rec.Requirements),
			Equipment:             helpers.SplitLines(rec.Equipment),
			Benefits:              helpers.SplitLines(rec.Benefits),
			LicenseInfo:           rec.LicenseInfo,
			HasVehicle:            rec.HasVehicle,
			VehicleDescription:    rec.VehicleDescription,
			Status:                rec.Status,
		},
		ID:        rec.ID,
		CreatedBy: rec.CreatedBy,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type PositionFilter struct {
	apimodels.Pagination
	Status   models.PositionStatus `json:"status"`
	Search   string                `json:"search"`
	JobType  string                `json:"job_type"`
	Location string                `json:"location"`
	OrderBy  string                `json:"order_by"`
	Order    models.SortOrder      `json:"order"`
}

func (f PositionFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return apperrors.New(apperrors.KindInvalidStatus, fmt.Sprintf("unknown position status %q", f.Status))
	}
	return nil
}

// positionOrderColumns is the allow-list for caller-supplied ordering;
// anything else falls back to the default.
var positionOrderColumns = map[string]string{
	"name":       "name",
	"location":   "location",
	"job_type":   "job_type",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

const positionDefaultOrder = "created_at desc"

func (f PositionFilter) OrderClause() string {
	column, ok := positionOrderColumns[strings.ToLower(f.OrderBy)]
	if !ok {
		return positionDefaultOrder
	}
	direction := "asc"
	if strings.EqualFold(string(f.Order), string(models.SortOrderDesc)) {
		direction = "desc"
	}
	return column + " " + direction
}

type BulkStatusData struct {
	IDs    []string              `json:"ids"`
	Status models.PositionStatus `json:"status"`
}

type BulkDeleteData struct {
	IDs []string `json:"ids"`
}
