package positionstore

import (
	"strings"

	"careers-backend/models"
	positionapimodels "careers-backend/models/api/position"
	dbmodels "careers-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	GetByID(id string) (rec *dbmodels.Position, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) (bool, error)
	List(filter positionapimodels.PositionFilter) (list []dbmodels.Position, err error)
	ListCount(filter positionapimodels.PositionFilter) (count int64, err error)
	BulkUpdateStatus(ids []string, status models.PositionStatus) (affected int64, err error)
	BulkDelete(ids []string) (affected int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
		Model(&dbmodels.Position{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Position{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("position not found")
	}
	return nil
}

func (i impl) Delete(id string) (bool, error) {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Position{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListCount(filter positionapimodels.PositionFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Position{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("position row count failed")
		return 0, errors.New("position row count failed")
	}
	return rowCount, nil
}

func (i impl) List(filter positionapimodels.PositionFilter) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	tx := i.db.
		Model(dbmodels.Position{})
	i.addFilter(tx, filter)
	tx.Order(filter.OrderClause())
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) BulkUpdateStatus(ids []string, status models.PositionStatus) (affected int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.Position{}).
		Where("id in (?)", ids).
		Update("status", status)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) BulkDelete(ids []string) (affected int64, err error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Where("id in (?)", ids).
		Delete(&dbmodels.Position{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// addFilter ANDs every supplied predicate; the search predicate is an
// OR-group over name and the three long-text columns.
func (i impl) addFilter(tx *gorm.DB, filter positionapimodels.PositionFilter) {
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.JobType != "" {
		tx = tx.Where("job_type = ?", filter.JobType)
	}
	if filter.Location != "" {
		tx = tx.Where("LOWER(location) like ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where(
			"(LOWER(name) like ? OR LOWER(overview) like ? OR LOWER(responsibilities) like ? OR LOWER(requirements) like ?)",
			pattern, pattern, pattern, pattern,
		)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
