// Package constants defines shared constants and configuration values
// used throughout the cascade menu component.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar is the environment variable name for the default log level.
const LogLevelEnvVar = "LOG_LEVEL"

// ConfigEnvVar is the environment variable name for the config file path.
const ConfigEnvVar = "CASCADE_CONFIG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Layout defaults, in density-independent units.
const (
	MaxWidth       float32 = 192 // Width of the dropdown surface
	IconSize       float32 = 24  // Leading and trailing icon size
	IconSpacing    float32 = 12  // Gap between an icon and its label
	HeaderIconGap  float32 = 4   // Gap between the back arrow and the header label
	DefaultOffsetX float32 = 0
	DefaultOffsetY float32 = 0
	MediumAlpha    float32 = 0.74 // Alpha applied to back header content
)

// DefaultMenuName labels metrics and logs when a menu is not given a name.
const DefaultMenuName = "cascade"
