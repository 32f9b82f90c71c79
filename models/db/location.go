package dbmodels

import (
	"fmt"

	"gorm.io/gorm"
)

type Location struct {
	BaseModel
	State       string `gorm:"type:varchar(100);uniqueIndex:idx_state_city"`
	City        string `gorm:"type:varchar(100);uniqueIndex:idx_state_city"`
	DisplayName string `gorm:"type:varchar(255)"`
}

func (l *Location) BeforeSave(tx *gorm.DB) error {
	l.DisplayName = fmt.Sprintf("%s, %s", l.City, l.State)
	return nil
}
