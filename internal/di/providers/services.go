package providers

import (
	"github.com/samber/do/v2"

	"github.com/tripatlas/tripatlas-server/internal/logger"
	"github.com/tripatlas/tripatlas-server/internal/service"
)

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewUserService(storeHandle.Store, log.Logger), nil
}

// ProvideCountryService provides the country service.
func ProvideCountryService(i do.Injector) (*service.CountryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCountryService(storeHandle.Store, log.Logger), nil
}

// ProvideLocationService provides the location service.
func ProvideLocationService(i do.Injector) (*service.LocationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewLocationService(storeHandle.Store, log.Logger), nil
}

// ProvideTripService provides the trip service.
func ProvideTripService(i do.Injector) (*service.TripService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTripService(storeHandle.Store, log.Logger), nil
}

// ProvideUserCountryService provides the user-country link service.
func ProvideUserCountryService(i do.Injector) (*service.UserCountryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewUserCountryService(storeHandle.Store, log.Logger), nil
}
