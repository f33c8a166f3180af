package sensor

import "fmt"

// ConfigError reports an invalid sensor configuration detected at
// construction time. No sensor is ever returned alongside one.
type ConfigError struct {
	Option  string // The offending configuration option
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sensor configuration error (%s): %s", e.Option, e.Message)
}
