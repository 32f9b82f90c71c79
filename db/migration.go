package db

import (
	dbmodels "careers-backend/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Location{}); err != nil {
		return errors.Wrap(err, "migration failed for Location")
	}
	if err := DB.AutoMigrate(&dbmodels.Position{}); err != nil {
		return errors.Wrap(err, "migration failed for Position")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "migration failed for Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationNote{}); err != nil {
		return errors.Wrap(err, "migration failed for ApplicationNote")
	}
	log.Info("migrations finished")
	return nil
}
