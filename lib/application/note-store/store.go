package notestore

import (
	dbmodels "careers-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApplicationNote) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApplicationNote, err error)
	ListByApplication(applicationID string) (list []dbmodels.ApplicationNote, err error)
	Delete(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationNote) (id string, err error) {
	err = i.db.
		Omit("Application").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApplicationNote, error) {
	rec := dbmodels.ApplicationNote{}
	err := i.db.
		Model(&dbmodels.ApplicationNote{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.ApplicationNote, err error) {
	list = []dbmodels.ApplicationNote{}
	err = i.db.
		Model(&dbmodels.ApplicationNote{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "application note list failed")
	}
	return list, nil
}

func (i impl) Delete(id string) (bool, error) {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.ApplicationNote{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
