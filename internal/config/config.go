package config

// Config is the top-level configuration.
type Config struct {
	// Ignore holds glob patterns for files that are skipped entirely.
	Ignore []string `yaml:"ignore"`
	// Extensions holds the file extensions picked up during directory
	// discovery, leading dot included.
	Extensions []string `yaml:"extensions"`
}

// Defaults returns the configuration used when no config file is found.
func Defaults() *Config {
	return &Config{
		Extensions: []string{".py"},
	}
}

// Merge merges a loaded config on top of defaults. A field the loaded
// config leaves empty keeps its default value.
func Merge(defaults, loaded *Config) *Config {
	if loaded == nil {
		return &Config{
			Ignore:     append([]string(nil), defaults.Ignore...),
			Extensions: append([]string(nil), defaults.Extensions...),
		}
	}

	merged := &Config{
		Ignore:     append([]string(nil), defaults.Ignore...),
		Extensions: append([]string(nil), defaults.Extensions...),
	}
	if len(loaded.Ignore) > 0 {
		merged.Ignore = append([]string(nil), loaded.Ignore...)
	}
	if len(loaded.Extensions) > 0 {
		merged.Extensions = append([]string(nil), loaded.Extensions...)
	}
	return merged
}
