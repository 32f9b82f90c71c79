package applicationhandler

import (
	"context"
	"fmt"

	"careers-backend/db"
	"careers-backend/lib/apperrors"
	applicationmeta "careers-backend/lib/application/meta"
	notestore "careers-backend/lib/application/note-store"
	applicationstore "careers-backend/lib/application/store"
	"careers-backend/lib/event"
	filestorage "careers-backend/lib/file-storage"
	positionstore "careers-backend/lib/position/store"
	initchecker "careers-backend/lib/utils/init-checker"
	"careers-backend/models"
	applicationapimodels "careers-backend/models/api/application"
	dbmodels "careers-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, data applicationapimodels.ApplicationData) (id string, err error)
	GetByID(id string) (*applicationapimodels.ApplicationView, error)
	GetByUserJob(userID, jobID string) (*applicationapimodels.ApplicationView, error)
	List(filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	ListRecords(filter applicationapimodels.ApplicationFilter) (list []dbmodels.ApplicationExt, err error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	Delete(ctx context.Context, id string) (bool, error)
	AddNote(applicationID, userID string, data applicationapimodels.NoteData) (id string, err error)
	GetNotes(applicationID string) ([]applicationapimodels.NoteView, error)
	GetNote(id string) (*applicationapimodels.NoteView, error)
	DeleteNote(id, userID string, role models.UserRole) error
	Stats() (applicationapimodels.StatsView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         applicationstore.NewInstance(db.DB),
		noteStore:     notestore.NewInstance(db.DB),
		positionStore: positionstore.NewInstance(db.DB),
		fileStorage:   filestorage.Instance,
		bus:           event.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"noteStore", instance.noteStore,
		"positionStore", instance.positionStore,
		"fileStorage", instance.fileStorage,
		"bus", instance.bus,
	)
	Instance = instance
}

type impl struct {
	store         applicationstore.Provider
	noteStore     notestore.Provider
	positionStore positionstore.Provider
	fileStorage   filestorage.Provider
	bus           event.Bus
}

func (i impl) Create(userID string, data applicationapimodels.ApplicationData) (id string, err error) {
	if userID == "" {
		return "", apperrors.New(apperrors.KindMissingData, "user is required")
	}
	if err = applicationmeta.Validate(data.Meta); err != nil {
		return "", err
	}
	jobName := ""
	if data.JobID != "" {
		// the unique index below is the real guard; this check just gives
		// the common case a clean answer without burning an insert
		existed, err := i.store.GetByUserJob(userID, data.JobID)
		if err != nil {
			return "", err
		}
		if existed != nil {
			return "", apperrors.New(apperrors.KindAlreadyApplied, "an application for this position already exists")
		}
		position, err := i.positionStore.GetByID(data.JobID)
		if err != nil {
			return "", err
		}
		if position != nil {
			jobName = position.Name
		}
	}
	rec := dbmodels.Application{
		UserID:         userID,
		JobID:          data.JobID,
		ResumeURL:      data.ResumeURL,
		CoverLetterURL: data.CoverLetterURL,
		Status:         models.ApplicationStatusNew,
		Meta:           data.Meta,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.bus.Publish(event.ApplicationReceived, event.ApplicationPayload{
		ApplicationID: id,
		UserID:        userID,
		JobID:         data.JobID,
		JobName:       jobName,
		Email:         metaEmail(data.Meta),
		NewStatus:     models.ApplicationStatusNew,
	})
	log.WithField("rec_id", id).Info("application received")
	return id, nil
}

func (i impl) GetByID(id string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := applicationapimodels.ApplicationConvert(*rec)
	return &view, nil
}

func (i impl) GetByUserJob(userID, jobID string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByUserJob(userID, jobID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := applicationapimodels.ApplicationConvert(*rec)
	return &view, nil
}

func (i impl) List(filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
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
	list := make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.ApplicationExtConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListRecords(filter applicationapimodels.ApplicationFilter) ([]dbmodels.ApplicationExt, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return i.store.List(filter)
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	if !status.IsValid() {
		return apperrors.New(apperrors.KindInvalidStatus, fmt.Sprintf("unknown application status %q", status))
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindUpdateFailed, "application not found")
	}
	if rec.Status == status {
		return nil
	}
	if err = i.store.UpdateStatus(id, status); err != nil {
		return err
	}
	i.bus.Publish(event.ApplicationStatusChanged, event.ApplicationPayload{
		ApplicationID: rec.ID,
		UserID:        rec.UserID,
		JobID:         rec.JobID,
		Email:         metaEmail(rec.Meta),
		OldStatus:     rec.Status,
		NewStatus:     status,
	})
	return nil
}

func (i impl) Delete(ctx context.Context, id string) (bool, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	i.fileStorage.RemoveQuiet(ctx, rec.ResumeURL)
	i.fileStorage.RemoveQuiet(ctx, rec.CoverLetterURL)
	return i.store.Delete(id)
}

func (i impl) AddNote(applicationID, userID string, data applicationapimodels.NoteData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", apperrors.New(apperrors.KindInsertFailed, "application not found")
	}
	return i.noteStore.Create(dbmodels.ApplicationNote{
		ApplicationID: applicationID,
		UserID:        userID,
		Content:       data.Content,
	})
}

func (i impl) GetNotes(applicationID string) ([]applicationapimodels.NoteView, error) {
	recs, err := i.noteStore.ListByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	list := make([]applicationapimodels.NoteView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.NoteConvert(rec))
	}
	return list, nil
}

func (i impl) GetNote(id string) (*applicationapimodels.NoteView, error) {
	rec, err := i.noteStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := applicationapimodels.NoteConvert(*rec)
	return &view, nil
}

func (i impl) DeleteNote(id, userID string, role models.UserRole) error {
	rec, err := i.noteStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.New(apperrors.KindNotFound, "note not found")
	}
	if rec.UserID != userID && !role.IsElevated() {
		return apperrors.New(apperrors.KindUpdateFailed, "only the note author can delete it")
	}
	_, err = i.noteStore.Delete(id)
	return err
}

func (i impl) Stats() (applicationapimodels.StatsView, error) {
	return i.store.Stats()
}

func metaEmail(meta dbmodels.ApplicationMeta) string {
	if meta == nil {
		return ""
	}
	if email, ok := meta["email"].(string); ok {
		return email
	}
	return ""
}
