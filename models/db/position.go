package dbmodels

import (
	"careers-backend/models"
)

type Position struct {
	BaseModel
	Name                  string `gorm:"type:varchar(255);index"`
	Location              string `gorm:"type:varchar(255);index"`
	JobType               string `gorm:"type:varchar(100);index"`
	SalaryRange           string `gorm:"type:varchar(100)"`
	ScheduleType          string `gorm:"type:varchar(100)"`
	ExperienceLevel       string `gorm:"type:varchar(100)"`
	CertificationRequired string `gorm:"type:varchar(255)"`
	Overview              string
	// list-ish long-text fields, one entry per line
	Responsibilities   string
	Requirements       string
	Equipment          string
	Benefits           string
	LicenseInfo        string
	HasVehicle         bool
	VehicleDescription string
	Status             models.PositionStatus `gorm:"type:varchar(50);index"`
	CreatedBy          string                `gorm:"type:varchar(36)"`
}
