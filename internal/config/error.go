package config

import "strings"

// ConfigError reports everything wrong with one configuration at once,
// so a user can fix the file in a single pass.
type ConfigError struct {
	Path    string   // File the values came from; empty when flags alone were used
	Missing []string // Unresolved ${VAR} references
	Errors  []string // Failed checks as "field: problem"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}

	var lines []string
	if len(e.Missing) > 0 {
		lines = append(lines, prefix+"missing environment variables: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		lines = append(lines, prefix+"invalid configuration:")
		for _, msg := range e.Errors {
			lines = append(lines, "  - "+msg)
		}
	}
	return strings.Join(lines, "\n")
}

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// Check validates c and returns a *ConfigError naming path, or nil.
func (c *Config) Check(path string) error {
	if errs := c.Validate(); len(errs) > 0 {
		return &ConfigError{Path: path, Errors: errs}
	}
	return nil
}
