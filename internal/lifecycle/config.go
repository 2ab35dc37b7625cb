package lifecycle

import "time"

type Config struct {
	InterviewDuration time.Duration `yaml:"interviewDuration"`

	// CommitTimeout bounds a started commit or teardown. It is counted
	// independently of the caller's context.
	CommitTimeout time.Duration `yaml:"commitTimeout"`
	LockTimeout   time.Duration `yaml:"lockTimeout"`
}

const (
	defaultInterviewDuration = time.Hour
	defaultCommitTimeout     = 10 * time.Second
	defaultLockTimeout       = 5 * time.Second
)

func (c Config) withDefaults() Config {
	if c.InterviewDuration <= 0 {
		c.InterviewDuration = defaultInterviewDuration
	}
	if c.CommitTimeout <= 0 {
		c.CommitTimeout = defaultCommitTimeout
	}
	if c.LockTimeout <= 0 {
		c.LockTimeout = defaultLockTimeout
	}
	return c
}
