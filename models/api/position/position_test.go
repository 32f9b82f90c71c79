package positionapimodels

import (
	"testing"

	"careers-backend/models"

	"github.com/stretchr/testify/require"
)

func TestOrderClause(t *testing.T) {
	t.Run(`allow-listed column with direction`, func(t *testing.T) {
		filter := PositionFilter{OrderBy: "name", Order: models.SortOrderDesc}
		require.Equal(t, "name desc", filter.OrderClause())

		filter = PositionFilter{OrderBy: "Job_Type"}
		require.Equal(t, "job_type asc", filter.OrderClause())
	})

	t.Run(`unknown column falls back to the default`, func(t *testing.T) {
		filter := PositionFilter{OrderBy: "salary_range; drop table positions"}
		require.Equal(t, "created_at desc", filter.OrderClause())

		filter = PositionFilter{}
		require.Equal(t, "created_at desc", filter.OrderClause())
	})
}

func TestPagination(t *testing.T) {
	filter := PositionFilter{}
	page, limit := filter.GetPage()
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)

	filter.Page = 3
	filter.Limit = 500
	page, limit = filter.GetPage()
	require.Equal(t, 3, page)
	require.Equal(t, 100, limit)
}

func TestUpdateMap(t *testing.T) {
	t.Run(`only supplied fields appear`, func(t *testing.T) {
		name := " Technician "
		hasVehicle := true
		data := PositionUpdateData{Name: &name, HasVehicle: &hasVehicle}
		updMap := data.UpdateMap()
		require.Len(t, updMap, 2)
		require.Equal(t, "Technician", updMap["name"])
		require.Equal(t, true, updMap["has_vehicle"])
	})

	t.Run(`list fields are stored newline-joined`, func(t *testing.T) {
		benefits := []string{"Health insurance", " 401k ", ""}
		data := PositionUpdateData{Benefits: &benefits}
		updMap := data.UpdateMap()
		require.Equal(t, "Health insurance\n401k", updMap["benefits"])
	})

	t.Run(`empty update produces an empty map`, func(t *testing.T) {
		require.Empty(t, PositionUpdateData{}.UpdateMap())
	})
}
