package anim

// DefaultTickRate is the scheduler cadence used when no rate is configured.
const DefaultTickRate = 60

// Config carries the tunable settings of a Manager.
type Config struct {
	// TickRate is the scheduler frequency in Hz. Zero selects
	// DefaultTickRate.
	TickRate int `yaml:"tickRate"`
}

func (c Config) tickRate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}
