package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"careers-backend/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Application struct {
	BaseModel
	// JobID is a weak reference: the position may be deleted later and an
	// empty JobID marks a general application not tied to any posting.
	UserID         string                   `gorm:"type:varchar(36);index;uniqueIndex:idx_app_user_job,where:job_id <> ''"`
	JobID          string                   `gorm:"type:varchar(36);index;uniqueIndex:idx_app_user_job,where:job_id <> ''"`
	ResumeURL      string                   `gorm:"type:varchar(512)"`
	CoverLetterURL string                   `gorm:"type:varchar(512)"`
	Status         models.ApplicationStatus `gorm:"type:varchar(50);index"`
	Meta           ApplicationMeta          `gorm:"type:jsonb"`
}

func (a *Application) AfterDelete(tx *gorm.DB) error {
	if a.ID == "" {
		return nil
	}
	res := tx.Where("application_id = ?", a.ID).Delete(&ApplicationNote{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "application note cleanup failed")
	}
	return nil
}

type ApplicationExt struct {
	Application
	JobName string
}

type ApplicationMeta map[string]interface{}

func (j ApplicationMeta) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ApplicationMeta) Scan(value interface{}) error {
	if value == nil {
		*j = ApplicationMeta{}
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return errors.New("unsupported application meta column type")
}

type ApplicationNote struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	UserID        string       `gorm:"type:varchar(36)"`
	Content       string
}
