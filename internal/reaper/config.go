package reaper

import "time"

type Config struct {
	Period time.Duration `yaml:"period"`

	// StaleAfter is the grace period after an interview start. An
	// interview not completed by then is torn down. Zero tears it down
	// as soon as it starts, unset means two hours.
	StaleAfter *time.Duration `yaml:"staleAfter"`

	// Timeout bounds a single sweep.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	defaultPeriod     = time.Minute
	defaultStaleAfter = 2 * time.Hour
	defaultTimeout    = 30 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Period <= 0 {
		c.Period = defaultPeriod
	}
	staleAfter := defaultStaleAfter
	if c.StaleAfter != nil {
		staleAfter = max(*c.StaleAfter, 0)
	}
	c.StaleAfter = &staleAfter
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
