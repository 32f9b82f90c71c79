package positionhandler

import (
	"careers-backend/db"
	"careers-backend/lib/apperrors"
	"careers-backend/lib/event"
	positionstore "careers-backend/lib/position/store"
	"careers-backend/lib/utils/helpers"
	initchecker "careers-backend/lib/utils/init-checker"
	"careers-backend/models"
	positionapimodels "careers-backend/models/api/position"
	dbmodels "careers-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, data positionapimodels.PositionData) (id string, err error)
	GetByID(id string) (*positionapimodels.PositionView, error)
	Update(id string, data positionapimodels.PositionUpdateData) error
	Delete(id string) (bool, error)
	List(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error)
	// Bulk operations are a no-op (ok=false) on an empty id list or, for the
	// status variant, a status outside the allow-list.
	BulkUpdateStatus(ids []string, status models.PositionStatus) (affected int64, ok bool, err error)
	BulkDelete(ids []string) (affected int64, ok bool, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: positionstore.NewInstance(db.DB),
		bus:   event.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"bus", instance.bus,
	)
	Instance = instance
}

type impl struct {
	store positionstore.Provider
	bus   event.Bus
}

func (i impl) Create(userID string, data positionapimodels.PositionData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	status := data.Status
	if status == "" {
		status = models.PositionStatusDraft
	}
	rec := dbmodels.Position{
		Name:                  helpers.NormalizeText(data.Name),
		Location:              helpers.NormalizeText(data.Location),
		JobType:               helpers.NormalizeText(data.JobType),
		SalaryRange:           helpers.NormalizeText(data.SalaryRange),
		ScheduleType:          helpers.NormalizeText(data.ScheduleType),
		ExperienceLevel:       helpers.NormalizeText(data.ExperienceLevel),
		CertificationRequired: helpers.NormalizeText(data.CertificationRequired),
		Overview:              helpers.NormalizeRichText(data.Overview),
		Responsibilities:      helpers.JoinLines(data.Responsibilities),
		Requirements:          helpers.JoinLines(data.Requirements),
		Equipment:             helpers.JoinLines(data.Equipment),
		Benefits:              helpers.JoinLines(data.Benefits),
		LicenseInfo:           helpers.NormalizeRichText(data.LicenseInfo),
		HasVehicle:            data.HasVehicle,
		VehicleDescription:    helpers.NormalizeRichText(data.VehicleDescription),
		Status:                status,
		CreatedBy:             userID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindInsertFailed, "position insert failed")
	}
	if status == models.PositionStatusPublished {
		i.bus.Publish(event.PositionPublished, event.PositionPayload{
			PositionID: id,
			Name:       rec.Name,
		})
	}
	log.WithField("rec_id", id).Info("position created")
	return id, nil
}

func (i impl) GetByID(id string) (*positionapimodels.PositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := positionapimodels.PositionConvert(*rec)
	return &view, nil
}

func (i impl) Update(id string, data positionapimodels.PositionUpdateData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	updMap := data.UpdateMap()
	if len(updMap) == 0 {
		return nil
	}
	wasPublished := false
	if data.Status != nil && *data.Status == models.PositionStatusPublished {
		rec, err := i.store.GetByID(id)
		if err != nil {
			return err
		}
		wasPublished = rec != nil && rec.Status == models.PositionStatusPublished
	}
	if err := i.store.Update(id, updMap); err != nil {
		return apperrors.Wrap(err, apperrors.KindUpdateFailed, "position update failed")
	}
	if data.Status != nil && *data.Status == models.PositionStatusPublished && !wasPublished {
		rec, err := i.store.GetByID(id)
		if err == nil && rec != nil {
			i.bus.Publish(event.PositionPublished, event.PositionPayload{
				PositionID: rec.ID,
				Name:       rec.Name,
			})
		}
	}
	return nil
}

func (i impl) Delete(id string) (bool, error) {
	return i.store.Delete(id)
}

func (i impl) List(filter positionapimodels.PositionFilter) ([]positionapimodels.PositionView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]positionapimodels.PositionView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, positionapimodels.PositionConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) BulkUpdateStatus(ids []string, status models.PositionStatus) (int64, bool, error) {
	if len(ids) == 0 || !status.IsValid() {
		return 0, false, nil
	}
	affected, err := i.store.BulkUpdateStatus(ids, status)
	if err != nil {
		return 0, false, apperrors.Wrap(err, apperrors.KindUpdateFailed, "bulk status update failed")
	}
	return affected, true, nil
}

func (i impl) BulkDelete(ids []string) (int64, bool, error) {
	if len(ids) == 0 {
		return 0, false, nil
	}
	affected, err := i.store.BulkDelete(ids)
	if err != nil {
		return 0, false, err
	}
	return affected, true, nil
}
