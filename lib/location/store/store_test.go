package locationstore

import (
	"testing"

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
	require.NoError(t, gormDB.AutoMigrate(&dbmodels.Location{}))
	return gormDB
}

func TestLocationStore(t *testing.T) {
	t.Run(`create fills display name`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		id, err := store.Create("TX", "Dallas")
		require.NoError(t, err)
		require.NotEmpty(t, id)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "TX", rec.State)
		require.Equal(t, "Dallas", rec.City)
		require.Equal(t, "Dallas, TX", rec.DisplayName)
	})

	t.Run(`repeated create returns the existing id`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		first, err := store.Create("TX", "Dallas")
		require.NoError(t, err)
		second, err := store.Create("TX", "Dallas")
		require.NoError(t, err)
		require.Equal(t, first, second)

		list, err := store.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run(`same city in another state is a separate row`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		txID, err := store.Create("TX", "Springfield")
		require.NoError(t, err)
		okID, err := store.Create("OK", "Springfield")
		require.NoError(t, err)
		require.NotEqual(t, txID, okID)
	})

	t.Run(`lookup ignores case and surrounding spaces`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		id, err := store.Create("TX", "Fort Worth")
		require.NoError(t, err)

		again, err := store.Create(" tx ", " FORT WORTH ")
		require.NoError(t, err)
		require.Equal(t, id, again)
	})

	t.Run(`list is ordered by state then city`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		_, err := store.Create("TX", "Houston")
		require.NoError(t, err)
		_, err = store.Create("OK", "Tulsa")
		require.NoError(t, err)
		_, err = store.Create("OK", "Oklahoma City")
		require.NoError(t, err)

		list, err := store.List()
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "Oklahoma City", list[0].City)
		require.Equal(t, "Tulsa", list[1].City)
		require.Equal(t, "Houston", list[2].City)
	})

	t.Run(`delete reports whether a row existed`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		id, err := store.Create("TX", "Austin")
		require.NoError(t, err)

		found, err := store.Delete(id)
		require.NoError(t, err)
		require.True(t, found)

		found, err = store.Delete(id)
		require.NoError(t, err)
		require.False(t, found)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}
