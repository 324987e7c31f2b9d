package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"probe_timeout":   5,
		"install_timeout": 600,
		"skip_version":    false,
		"plain":           false,
		"no_color":        false,
	}
}
