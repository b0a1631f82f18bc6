package config

import (
	"time"

	"github.com/spf13/viper"
)

// Keys in viper, bound to LINKU_* environment variables and the root
// command's persistent flags.
const (
	KeyAPIURL  = "api-url"
	KeyTimeout = "timeout"
	KeyDebug   = "debug"
	KeyJSONLog = "json-log"
	KeyOutDir  = "out-dir"
)

// SetDefaults installs the baseline configuration.
func SetDefaults() {
	viper.SetDefault(KeyAPIURL, "http://localhost:5001")
	viper.SetDefault(KeyTimeout, 30*time.Second)
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyJSONLog, false)
	viper.SetDefault(KeyOutDir, ".")
}

// APIURL returns the LinkU backend base URL.
func APIURL() string {
	return viper.GetString(KeyAPIURL)
}

// Timeout returns the per-request collaborator timeout.
func Timeout() time.Duration {
	return viper.GetDuration(KeyTimeout)
}

// Debug reports whether debug logging is enabled.
func Debug() bool {
	return viper.GetBool(KeyDebug)
}

// JSONLog reports whether logs should be JSON-encoded.
func JSONLog() bool {
	return viper.GetBool(KeyJSONLog)
}

// OutDir returns the directory exported reports are written to.
func OutDir() string {
	return viper.GetString(KeyOutDir)
}
