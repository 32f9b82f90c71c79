package applicationstore

import (
	"testing"

	"careers-backend/lib/apperrors"
	notestore "careers-backend/lib/application/note-store"
	"careers-backend/models"
	applicationapimodels "careers-backend/models/api/application"
	dbmodels "careers-backend/models/db"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&dbmodels.Position{}, &dbmodels.Application{}, &dbmodels.ApplicationNote{}))
	return gormDB
}

func TestApplicationStore(t *testing.T) {
	t.Run(`create and get roundtrip keeps meta`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		id, err := store.Create(dbmodels.Application{
			UserID: "user-1",
			JobID:  "job-1",
			Status: models.ApplicationStatusNew,
			Meta: dbmodels.ApplicationMeta{
				"full_name": "Pat Jones",
				"email":     "pat@example.com",
			},
		})
		require.NoError(t, err)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, models.ApplicationStatusNew, rec.Status)
		require.Equal(t, "Pat Jones", rec.Meta["full_name"])
	})

	t.Run(`duplicate user and job pair is rejected once`, func(t *testing.T) {
		db := testDB(t)
		store := NewInstance(db)
		_, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		_, err = store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.Error(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindAlreadyApplied))

		var count int64
		require.NoError(t, db.Model(&dbmodels.Application{}).Count(&count).Error)
		require.Equal(t, int64(1), count)
	})

	t.Run(`general applications without a job never collide`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		_, err := store.Create(dbmodels.Application{UserID: "user-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)
		_, err = store.Create(dbmodels.Application{UserID: "user-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)
	})

	t.Run(`list resolves job name via join`, func(t *testing.T) {
		db := testDB(t)
		store := NewInstance(db)
		position := dbmodels.Position{Name: "Dispatcher", Location: "Dallas, TX", Status: models.PositionStatusPublished}
		require.NoError(t, db.Create(&position).Error)
		_, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: position.ID, Status: models.ApplicationStatusNew})
		require.NoError(t, err)
		_, err = store.Create(dbmodels.Application{UserID: "user-2", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		list, err := store.List(applicationapimodels.ApplicationFilter{})
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, rec := range list {
			if rec.JobID == position.ID {
				require.Equal(t, "Dispatcher", rec.JobName)
			} else {
				require.Empty(t, rec.JobName)
			}
		}
	})

	t.Run(`filters narrow by status, job and user`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		_, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)
		hiredID, err := store.Create(dbmodels.Application{UserID: "user-2", JobID: "job-1", Status: models.ApplicationStatusHired})
		require.NoError(t, err)
		_, err = store.Create(dbmodels.Application{UserID: "user-2", JobID: "job-2", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		list, err := store.List(applicationapimodels.ApplicationFilter{
			Status: models.ApplicationStatusHired,
			JobID:  "job-1",
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, hiredID, list[0].ID)

		count, err := store.ListCount(applicationapimodels.ApplicationFilter{UserID: "user-2"})
		require.NoError(t, err)
		require.Equal(t, int64(2), count)
	})

	t.Run(`status update rewrites the row`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		id, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		require.NoError(t, store.UpdateStatus(id, models.ApplicationStatusInterview))
		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.ApplicationStatusInterview, rec.Status)
	})

	t.Run(`status update of unknown id fails`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		err := store.UpdateStatus("missing", models.ApplicationStatusHired)
		require.Error(t, err)
		require.True(t, apperrors.IsKind(err, apperrors.KindUpdateFailed))
	})

	t.Run(`delete removes the notes with the application`, func(t *testing.T) {
		db := testDB(t)
		store := NewInstance(db)
		notes := notestore.NewInstance(db)

		id, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)
		_, err = notes.Create(dbmodels.ApplicationNote{ApplicationID: id, UserID: "staff-1", Content: "called, no answer"})
		require.NoError(t, err)
		_, err = notes.Create(dbmodels.ApplicationNote{ApplicationID: id, UserID: "staff-1", Content: "second attempt"})
		require.NoError(t, err)

		found, err := store.Delete(id)
		require.NoError(t, err)
		require.True(t, found)

		list, err := notes.ListByApplication(id)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run(`failed note cleanup surfaces from delete`, func(t *testing.T) {
		db := testDB(t)
		store := NewInstance(db)
		id, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: "job-1", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		require.NoError(t, db.Migrator().DropTable(&dbmodels.ApplicationNote{}))
		_, err = store.Delete(id)
		require.Error(t, err)
	})

	t.Run(`stats break down by status and position`, func(t *testing.T) {
		db := testDB(t)
		store := NewInstance(db)
		position := dbmodels.Position{Name: "Dispatcher", Location: "Dallas, TX", Status: models.PositionStatusPublished}
		require.NoError(t, db.Create(&position).Error)

		_, err := store.Create(dbmodels.Application{UserID: "user-1", JobID: position.ID, Status: models.ApplicationStatusNew})
		require.NoError(t, err)
		_, err = store.Create(dbmodels.Application{UserID: "user-2", JobID: position.ID, Status: models.ApplicationStatusHired})
		require.NoError(t, err)
		_, err = store.Create(dbmodels.Application{UserID: "user-3", Status: models.ApplicationStatusNew})
		require.NoError(t, err)

		stats, err := store.Stats()
		require.NoError(t, err)
		require.Equal(t, int64(3), stats.Total)
		require.Equal(t, int64(2), stats.ByStatus[models.ApplicationStatusNew])
		require.Equal(t, int64(1), stats.ByStatus[models.ApplicationStatusHired])
		require.Equal(t, int64(3), stats.Recent)
		require.Len(t, stats.ByJob, 1)
		require.Equal(t, position.ID, stats.ByJob[0].JobID)
		require.Equal(t, "Dispatcher", stats.ByJob[0].JobName)
		require.Equal(t, int64(2), stats.ByJob[0].Count)
	})
}
