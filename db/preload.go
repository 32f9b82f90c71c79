package db

import (
	locationstore "careers-backend/lib/location/store"
	dbmodels "careers-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillLocations()
}

// defaultLocations seeds the location dictionary on first start.
var defaultLocations = []dbmodels.Location{
	{State: "Texas", City: "Dallas"},
	{State: "Texas", City: "Fort Worth"},
	{State: "Texas", City: "Houston"},
	{State: "Texas", City: "San Antonio"},
	{State: "Texas", City: "Austin"},
	{State: "Oklahoma", City: "Oklahoma City"},
	{State: "Oklahoma", City: "Tulsa"},
}

func fillLocations() {
	store := locationstore.NewInstance(DB)
	list, err := store.List()
	if err != nil {
		log.WithError(err).Error("location preload failed")
		return
	}
	if len(list) > 0 {
		return
	}
	log.Info("seeding default locations")
	for _, rec := range defaultLocations {
		if _, err := store.Create(rec.State, rec.City); err != nil {
			log.WithError(err).
				WithField("state", rec.State).
				WithField("city", rec.City).
				Error("location seed failed")
			return
		}
	}
	log.Info("default locations added")
}
