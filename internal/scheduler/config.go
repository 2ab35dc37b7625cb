package scheduler

import "time"

type Config struct {
	// MaxCommitAttempts bounds how many stale matches in a row are
	// retried before giving up with ErrTryAgain.
	MaxCommitAttempts int `yaml:"maxCommitAttempts"`

	// DefaultTTL is used for requests submitted without expiry.
	DefaultTTL time.Duration `yaml:"defaultTTL"`

	// Specializations lists accepted specialization ids. Empty list
	// accepts any.
	Specializations []string `yaml:"specializations"`
	MinMastery      int      `yaml:"minMastery"`
	MaxMastery      int      `yaml:"maxMastery"`
}

const (
	defaultMaxCommitAttempts = 3
	defaultTTL               = 14 * 24 * time.Hour
	defaultMaxMastery        = 5
)

func (c Config) withDefaults() Config {
	if c.MaxCommitAttempts <= 0 {
		c.MaxCommitAttempts = defaultMaxCommitAttempts
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = defaultTTL
	}
	if c.MaxMastery == 0 {
		c.MaxMastery = defaultMaxMastery
	}
	return c
}
