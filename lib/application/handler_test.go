package applicationhandler

import (
	"context"
	"testing"

	"careers-backend/lib/apperrors"
	notestore "careers-backend/lib/application/note-store"
	applicationstore "careers-backend/lib/application/store"
	"careers-backend/lib/event"
	positionstore "careers-backend/lib/position/store"
	"careers-backend/models"
	applicationapimodels "careers-backend/models/api/application"
	dbmodels "careers-backend/models/db"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFileStorage struct {
	removed []string
}

func (f *fakeFileStorage) Upload(ctx context.Context, userID, fileName string, file []byte) (string, error) {
	return "applicants/" + userID + "/" + fileName, nil
}

func (f *fakeFileStorage) Get(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, nil
}

func (f *fakeFileStorage) RemoveQuiet(ctx context.Context, objectKey string) {
	if objectKey == "" {
		return
	}
	f.removed = append(f.removed, objectKey)
}

func testHandler(t *testing.T) (Provider, *gorm.DB, event.Bus, *fakeFileStorage) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&dbmodels.Position{}, &dbmodels.Application{}, &dbmodels.ApplicationNote{}))
	bus := event.NewBus()
	files := &fakeFileStorage{}
	handler := impl{
		store:         applicationstore.NewInstance(gormDB),
		noteStore:     notestore.NewInstance(gormDB),
		positionStore: positionstore.NewInstance(gormDB),
		fileStorage:   files,
		bus:           bus,
	}
	return handler, gormDB, bus, files
}

func validMeta() dbmodels.ApplicationMeta {
	return dbmodels.ApplicationMeta{
		"full_name": "Pat Jones",
		"email":     "pat@example.com",
	}
}

func seedPosition(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	rec := dbmodels.Position{Name: name, Location: "Dallas, TX", Status: models.PositionStatusPublished}
	require.NoError(t, db.Create(&rec).Error)
	return rec.ID
}

func TestApplicationHandler(t *testing.T) {
	t.Run(`create starts in the new status and fires the received event`, func(t *testing.T) {
		handler, db, bus, _ := testHandler(t)
		jobID := seedPosition(t, db, "Dispatcher")

		received := []event.ApplicationPayload{}
		bus.Subscribe(event.ApplicationReceived, func(e event.Event) {
			received = append(received, e.Payload.(event.ApplicationPayload))
		})

		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{
			JobID: jobID,
			Meta:  validMeta(),
		})
		require.NoError(t, err)

		view, err := handler.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusNew, view.Status)

		require.Len(t, received, 1)
		require.Equal(t, id, received[0].ApplicationID)
		require.Equal(t, "Dispatcher", received[0].JobName)
		require.Equal(t, "pat@example.com", received[0].Email)
	})

	t.Run(`create requires a user`, func(t *testing.T) {
		handler, _, _, _ := testHandler(t)
		_, err := handler.Create("", applicationapimodels.ApplicationData{Meta: validMeta()})
		require.True(t, apperrors.IsKind(err, apperrors.KindMissingData))
	})

	t.Run(`create rejects meta without required fields`, func(t *testing.T) {
		handler, _, _, _ := testHandler(t)
		_, err := handler.Create("user-1", applicationapimodels.ApplicationData{
			Meta: dbmodels.ApplicationMeta{"full_name": "Pat Jones"},
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindMissingData))
	})

	t.Run(`second application for the same position is rejected`, func(t *testing.T) {
		handler, db, _, _ := testHandler(t)
		jobID := seedPosition(t, db, "Dispatcher")

		_, err := handler.Create("user-1", applicationapimodels.ApplicationData{JobID: jobID, Meta: validMeta()})
		require.NoError(t, err)
		_, err = handler.Create("user-1", applicationapimodels.ApplicationData{JobID: jobID, Meta: validMeta()})
		require.True(t, apperrors.IsKind(err, apperrors.KindAlreadyApplied))
	})

	t.Run(`status change fires the event with old and new status`, func(t *testing.T) {
		handler, db, bus, _ := testHandler(t)
		jobID := seedPosition(t, db, "Dispatcher")
		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{JobID: jobID, Meta: validMeta()})
		require.NoError(t, err)

		changes := []event.ApplicationPayload{}
		bus.Subscribe(event.ApplicationStatusChanged, func(e event.Event) {
			changes = append(changes, e.Payload.(event.ApplicationPayload))
		})

		require.NoError(t, handler.UpdateStatus(id, models.ApplicationStatusContacted))
		require.Len(t, changes, 1)
		require.Equal(t, models.ApplicationStatusNew, changes[0].OldStatus)
		require.Equal(t, models.ApplicationStatusContacted, changes[0].NewStatus)

		// same status again is a silent no-op
		require.NoError(t, handler.UpdateStatus(id, models.ApplicationStatusContacted))
		require.Len(t, changes, 1)
	})

	t.Run(`unknown status leaves the stored status unchanged`, func(t *testing.T) {
		handler, db, _, _ := testHandler(t)
		jobID := seedPosition(t, db, "Dispatcher")
		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{JobID: jobID, Meta: validMeta()})
		require.NoError(t, err)

		err = handler.UpdateStatus(id, "archived")
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidStatus))

		view, err := handler.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusNew, view.Status)
	})

	t.Run(`intake flow from submission to interview`, func(t *testing.T) {
		handler, db, _, _ := testHandler(t)
		jobID := seedPosition(t, db, "Mobile X-Ray Tech")

		id, err := handler.Create("user-7", applicationapimodels.ApplicationData{
			JobID:     jobID,
			ResumeURL: "r.pdf",
			Meta:      validMeta(),
		})
		require.NoError(t, err)

		view, err := handler.GetByUserJob("user-7", jobID)
		require.NoError(t, err)
		require.NotNil(t, view)
		require.Equal(t, id, view.ID)
		require.Equal(t, models.ApplicationStatusNew, view.Status)

		require.NoError(t, handler.UpdateStatus(id, models.ApplicationStatusInterview))
		view, err = handler.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterview, view.Status)
	})

	t.Run(`delete cleans up the uploaded files`, func(t *testing.T) {
		handler, _, _, files := testHandler(t)
		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{
			ResumeURL:      "applicants/user-1/resume.pdf",
			CoverLetterURL: "applicants/user-1/cover.pdf",
			Meta:           validMeta(),
		})
		require.NoError(t, err)

		found, err := handler.Delete(context.Background(), id)
		require.NoError(t, err)
		require.True(t, found)
		require.ElementsMatch(t, []string{"applicants/user-1/resume.pdf", "applicants/user-1/cover.pdf"}, files.removed)

		view, err := handler.GetByID(id)
		require.NoError(t, err)
		require.Nil(t, view)
	})

	t.Run(`notes belong to their author`, func(t *testing.T) {
		handler, _, _, _ := testHandler(t)
		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{Meta: validMeta()})
		require.NoError(t, err)

		noteID, err := handler.AddNote(id, "staff-1", applicationapimodels.NoteData{Content: "called, no answer"})
		require.NoError(t, err)

		err = handler.DeleteNote(noteID, "staff-2", models.UserRoleApplicant)
		require.True(t, apperrors.IsKind(err, apperrors.KindUpdateFailed))

		require.NoError(t, handler.DeleteNote(noteID, "staff-2", models.UserRoleAdmin))
		notes, err := handler.GetNotes(id)
		require.NoError(t, err)
		require.Empty(t, notes)
	})

	t.Run(`note requires content and an existing application`, func(t *testing.T) {
		handler, _, _, _ := testHandler(t)
		id, err := handler.Create("user-1", applicationapimodels.ApplicationData{Meta: validMeta()})
		require.NoError(t, err)

		_, err = handler.AddNote(id, "staff-1", applicationapimodels.NoteData{Content: "   "})
		require.True(t, apperrors.IsKind(err, apperrors.KindMissingData))

		_, err = handler.AddNote("missing", "staff-1", applicationapimodels.NoteData{Content: "hello"})
		require.True(t, apperrors.IsKind(err, apperrors.KindInsertFailed))
	})
}
