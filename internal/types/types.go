package types

// MoveConfig controls animated window placement.
type MoveConfig struct {
	Animation  string `yaml:"animation"`   // mover name; empty disables animation
	DurationMs int    `yaml:"duration_ms"` // total transition time
	Steps      int    `yaml:"steps"`       // position updates per transition
}

// MonitorConfig pins the monitor priority order. Outputs listed here come
// first, in the given order; unlisted outputs keep their enumeration order
// after them.
type MonitorConfig struct {
	Order []string `yaml:"order"`
}

type Config struct {
	Move     MoveConfig    `yaml:"move"`
	Monitors MonitorConfig `yaml:"monitors"`
}

// GetMoveConfig returns move configuration with defaults applied.
func (c *Config) GetMoveConfig() MoveConfig {
	config := c.Move

	if config.DurationMs <= 0 {
		config.DurationMs = 250
	}
	if config.Steps <= 0 {
		config.Steps = 20
	}

	return config
}
