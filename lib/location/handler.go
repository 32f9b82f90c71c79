package locationhandler

import (
	"careers-backend/db"
	locationstore "careers-backend/lib/location/store"
	initchecker "careers-backend/lib/utils/init-checker"
	locationapimodels "careers-backend/models/api/location"
)

type Provider interface {
	Create(data locationapimodels.LocationData) (id string, err error)
	List() ([]locationapimodels.LocationView, error)
	ListByState() (map[string][]locationapimodels.LocationView, error)
	Delete(id string) (bool, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: locationstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store locationstore.Provider
}

func (i impl) Create(data locationapimodels.LocationData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	return i.store.Create(data.State, data.City)
}

func (i impl) List() ([]locationapimodels.LocationView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]locationapimodels.LocationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, locationapimodels.LocationConvert(rec))
	}
	return list, nil
}

func (i impl) ListByState() (map[string][]locationapimodels.LocationView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := map[string][]locationapimodels.LocationView{}
	for _, rec := range recs {
		result[rec.State] = append(result[rec.State], locationapimodels.LocationConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) (bool, error) {
	return i.store.Delete(id)
}
