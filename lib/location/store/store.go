package locationstore

import (
	"strings"

	"careers-backend/lib/apperrors"
	dbmodels "careers-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	// Create is idempotent: inserting an existing (state, city) pair
	// returns the identifier of the existing row.
	Create(state, city string) (id string, err error)
	GetByID(id string) (*dbmodels.Location, error)
	GetByStateCity(state, city string) (*dbmodels.Location, error)
	List() ([]dbmodels.Location, error)
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

func (i impl) Create(state, city string) (id string, err error) {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	existed, err := i.GetByStateCity(state, city)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return existed.ID, nil
	}
	rec := dbmodels.Location{
		State: state,
		City:  city,
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		if isDuplicateErr(err) {
			// lost the insert race; the winner's row is the answer
			existed, getErr := i.GetByStateCity(state, city)
			if getErr == nil && existed != nil {
				return existed.ID, nil
			}
			return "", apperrors.Wrap(err, apperrors.KindDuplicateLocation, "location already exists")
		}
		return "", apperrors.Wrap(err, apperrors.KindInsertFailed, "location insert failed")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Location, error) {
	rec := dbmodels.Location{}
	err := i.db.
		Model(&dbmodels.Location{}).
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

func (i impl) GetByStateCity(state, city string) (*dbmodels.Location, error) {
	rec := dbmodels.Location{}
	err := i.db.
		Model(&dbmodels.Location{}).
		Where("LOWER(state) = ?", strings.ToLower(state)).
		Where("LOWER(city) = ?", strings.ToLower(city)).
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

func (i impl) List() ([]dbmodels.Location, error) {
	list := []dbmodels.Location{}
	err := i.db.
		Model(&dbmodels.Location{}).
		Order("state").
		Order("city").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "location list failed")
	}
	return list, nil
}

func (i impl) Delete(id string) (bool, error) {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Location{})
	if tx.Error != nil {
		return false, errors.Wrap(tx.Error, "location delete failed")
	}
	return tx.RowsAffected > 0, nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "(SQLSTATE 23505)") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
