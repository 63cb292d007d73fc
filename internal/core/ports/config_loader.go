package ports

import "go.trai.ch/fixgen/internal/core/domain"

// SettingsLoader loads the pipeline run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing config file yields the defaults, not an error.
	Load(cwd string) (*domain.Settings, error)
}
