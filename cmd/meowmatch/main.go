package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nikmy/meowmatch/internal/api"
	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/matching"
	"github.com/nikmy/meowmatch/internal/metrics"
	"github.com/nikmy/meowmatch/internal/notify"
	"github.com/nikmy/meowmatch/internal/reaper"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/rooms"
	"github.com/nikmy/meowmatch/internal/scheduler"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	clk := clock.System{}

	store, err := repo.New(ctx, log, cfg.Storage)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init storage"))
	}

	locker, closeLocks, err := locks.New(ctx, cfg.Locks, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init locks"))
	}

	provisioner, err := rooms.New(cfg.Rooms, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init rooms"))
	}

	notifier, closeNotify, err := notify.New(cfg.Notify, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init notifications"))
	}
	events := notify.NewDispatcher(notifier, cfg.Notify.Timeout, log)

	engine, err := matching.New(cfg.Matching, store.Requests(), clk, m, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init matching engine"))
	}

	interviews := lifecycle.New(cfg.Lifecycle, store, locker, provisioner, events, clk, m, log)
	service := scheduler.New(cfg.Scheduler, store, locker, engine, interviews, clk, log)

	sweeps := reaper.New(cfg.Reaper, store, locker, interviews, events, clk, m, log)
	runner, err := reaper.NewRunner(cfg.Reaper, sweeps, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init reaper"))
	}

	server := api.NewServer(cfg.HTTP, log, service, reg)

	var wg sync.WaitGroup
	run := func(name string, f func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f(ctx)
			if err != nil {
				log.Error(errors.WrapFailf(err, "run %s", name))
				cancel()
			}
		}()
	}

	if bg, ok := store.(repo.Background); ok {
		run("storage", bg.Run)
	}
	run("reaper", runner.Run)
	run("http server", server.Serve)

	stdlog.Println("Service has been started")
	<-ctx.Done()
	stdlog.Println("Graceful shutdown...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(err)
	}

	wg.Wait()

	err = errors.Join(
		errors.WrapFail(closeNotify(), "close notifiers"),
		errors.WrapFail(closeLocks(), "close locks"),
		errors.WrapFail(store.Close(shutdownCtx), "close storage"),
	)
	if err != nil {
		log.Error(err)
	}

	stdlog.Println("Shutdown complete")
}
