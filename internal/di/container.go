// Package di provides dependency injection configuration for the TripAtlas server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/tripatlas/tripatlas-server/internal/config"
	"github.com/tripatlas/tripatlas-server/internal/di/providers"
	"github.com/tripatlas/tripatlas-server/internal/logger"
	"github.com/tripatlas/tripatlas-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideCountryService)
	do.Provide(injector, providers.ProvideLocationService)
	do.Provide(injector, providers.ProvideTripService)
	do.Provide(injector, providers.ProvideUserCountryService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*service.CountryService](injector)
	_ = do.MustInvoke[*service.LocationService](injector)
	_ = do.MustInvoke[*service.TripService](injector)
	_ = do.MustInvoke[*service.UserCountryService](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
