package applicationstore

import (
	"strings"
	"time"

	"careers-backend/lib/apperrors"
	"careers-backend/models"
	applicationapimodels "careers-backend/models/api/application"
	dbmodels "careers-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Create relies on the partial unique index over (user_id, job_id) for
	// job-bound applications; a duplicate insert surfaces as already_applied.
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByUserJob(userID, jobID string) (rec *dbmodels.Application, err error)
	List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.ApplicationExt, err error)
	ListCount(filter applicationapimodels.ApplicationFilter) (count int64, err error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(id string) (bool, error)
	Stats() (applicationapimodels.StatsView, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if isDuplicateErr(err) {
			return "", apperrors.Wrap(err, apperrors.KindAlreadyApplied, "an application for this position already exists")
		}
		return "", apperrors.Wrap(err, apperrors.KindInsertFailed, "application insert failed")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
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

func (i impl) GetByUserJob(userID, jobID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("job_id = ?", jobID).
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

func (i impl) ListCount(filter applicationapimodels.ApplicationFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("application row count failed")
		return 0, errors.New("application row count failed")
	}
	return rowCount, nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) (list []dbmodels.ApplicationExt, err error) {
	list = []dbmodels.ApplicationExt{}
	tx := i.db.
		Model(dbmodels.Application{}).
		Select("applications.*, positions.name as job_name").
		Joins("left join positions on positions.id = applications.job_id")
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

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return apperrors.Wrap(tx.Error, apperrors.KindUpdateFailed, "application status update failed")
	}
	if tx.RowsAffected == 0 {
		return apperrors.New(apperrors.KindUpdateFailed, "application not found")
	}
	return nil
}

func (i impl) Delete(id string) (bool, error) {
	rec := dbmodels.Application{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	tx := i.db.
		Delete(&rec)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Stats() (applicationapimodels.StatsView, error) {
	result := applicationapimodels.StatsView{
		ByStatus: map[models.ApplicationStatus]int64{},
	}
	err := i.db.
		Model(&dbmodels.Application{}).
		Count(&result.Total).
		Error
	if err != nil {
		return result, errors.Wrap(err, "application total count failed")
	}

	statusRows := []struct {
		Status models.ApplicationStatus
		Count  int64
	}{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusRows).
		Error
	if err != nil {
		return result, errors.Wrap(err, "application status breakdown failed")
	}
	for _, row := range statusRows {
		result.ByStatus[row.Status] = row.Count
	}

	err = i.db.
		Model(&dbmodels.Application{}).
		Select("applications.job_id, positions.name as job_name, count(*) as count").
		Joins("left join positions on positions.id = applications.job_id").
		Where("applications.job_id <> ''").
		Group("applications.job_id, positions.name").
		Order("count desc").
		Limit(10).
		Scan(&result.ByJob).
		Error
	if err != nil {
		return result, errors.Wrap(err, "application per-position breakdown failed")
	}

	err = i.db.
		Model(&dbmodels.Application{}).
		Where("created_at > ?", time.Now().AddDate(0, 0, -30)).
		Count(&result.Recent).
		Error
	if err != nil {
		return result, errors.Wrap(err, "recent application count failed")
	}
	return result, nil
}

func (i impl) addFilter(tx *gorm.DB, filter applicationapimodels.ApplicationFilter) {
	if filter.Status != "" {
		tx = tx.Where("applications.status = ?", filter.Status)
	}
	if filter.JobID != "" {
		tx = tx.Where("applications.job_id = ?", filter.JobID)
	}
	if filter.UserID != "" {
		tx = tx.Where("applications.user_id = ?", filter.UserID)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "(SQLSTATE 23505)") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
