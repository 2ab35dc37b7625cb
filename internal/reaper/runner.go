package reaper

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type sweeper interface {
	Sweep(ctx context.Context) (Report, error)
}

// NewRunner schedules sweeps every cfg.Period. A sweep still running when
// the next one is due makes the latter skipped.
func NewRunner(cfg Config, s sweeper, log logger.Logger) (*Runner, error) {
	cfg = cfg.withDefaults()
	log = log.With("reaper_runner")

	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	r := &Runner{
		cron:    c,
		sweeper: s,
		cfg:     cfg,
		log:     log,
		ctx:     context.Background(),
	}

	_, err := c.AddFunc("@every "+cfg.Period.String(), r.sweep)
	if err != nil {
		return nil, errors.WrapFail(err, "schedule sweeps")
	}
	return r, nil
}

type Runner struct {
	cron    *cron.Cron
	sweeper sweeper
	cfg     Config
	log     logger.Logger
	ctx     context.Context
}

// Run blocks until ctx is done, then waits for a running sweep to finish.
func (r *Runner) Run(ctx context.Context) error {
	r.ctx = ctx
	r.cron.Start()

	<-ctx.Done()

	<-r.cron.Stop().Done()
	return nil
}

func (r *Runner) sweep() {
	ctx, cancel := context.WithTimeout(r.ctx, r.cfg.Timeout)
	defer cancel()

	_, err := r.sweeper.Sweep(ctx)
	if err != nil {
		r.log.Error(errors.WrapFail(err, "sweep"))
	}
}

type cronLogger struct {
	log logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debugf("%s %s", msg, formatKV(keysAndValues))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error(errors.Wrapf(err, "%s %s", msg, formatKV(keysAndValues)))
}

func formatKV(kv []interface{}) string {
	var s string
	for i := 0; i+1 < len(kv); i += 2 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%v=%v", kv[i], kv[i+1])
	}
	return s
}
