package config

import "time"

// LogConfig contains logger configuration
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
}

// CalendarConfig contains calendar event configuration
type CalendarConfig struct {
	// BasePath prefixes disruption links, e.g. /disruptions/12
	BasePath string `yaml:"basePath" validate:"omitempty,startswith=/"`
	// BaseURL is prepended to links in exported feeds
	BaseURL string `yaml:"baseURL" validate:"omitempty,url"`
}

// FiltersConfig contains disruption table filter defaults
type FiltersConfig struct {
	PastThresholdDays int `yaml:"pastThresholdDays" validate:"gte=0"`
}

// ExportConfig contains GTFS-RT and SIRI-SX export configuration
type ExportConfig struct {
	AgencyID string `yaml:"agency_id" validate:"omitempty"`
	Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
	Timezone string `yaml:"timezone" validate:"omitempty,timezone"`
}

// Location loads the configured time zone, falling back to UTC
func (e ExportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Log      LogConfig      `yaml:"log"`
	Calendar CalendarConfig `yaml:"calendar"`
	Filters  FiltersConfig  `yaml:"filters"`
	Export   ExportConfig   `yaml:"export"`
}
