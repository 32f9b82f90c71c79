package locationapimodels

import (
	"strings"

	"careers-backend/lib/apperrors"
	dbmodels "careers-backend/models/db"
)

type LocationData struct {
	State string `json:"state"`
	City  string `json:"city"`
}

func (l LocationData) Validate() error {
	if strings.TrimSpace(l.State) == "" || strings.TrimSpace(l.City) == "" {
		return apperrors.New(apperrors.KindMissingData, "state and city are required")
	}
	return nil
}

type LocationView struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	City        string `json:"city"`
	DisplayName string `json:"display_name"`
}

func LocationConvert(rec dbmodels.Location) LocationView {
	return LocationView{
		ID:          rec.ID,
		State:       rec.State,
		City:        rec.City,
		DisplayName: rec.DisplayName,
	}
}
