package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meowmatch/internal/api"
	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/matching"
	"github.com/nikmy/meowmatch/internal/notify"
	"github.com/nikmy/meowmatch/internal/reaper"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/rooms"
	"github.com/nikmy/meowmatch/internal/scheduler"
	"github.com/nikmy/meowmatch/pkg/environment"
	"github.com/nikmy/meowmatch/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"Environment"`
	HTTP        api.Config       `yaml:"HTTP"`
	Storage     repo.Config      `yaml:"Storage"`
	Locks       locks.Config     `yaml:"Locks"`
	Matching    matching.Config  `yaml:"Matching"`
	Lifecycle   lifecycle.Config `yaml:"Lifecycle"`
	Scheduler   scheduler.Config `yaml:"Scheduler"`
	Reaper      reaper.Config    `yaml:"Reaper"`
	Rooms       rooms.Config     `yaml:"Rooms"`
	Notify      notify.Config    `yaml:"Notify"`
}

func loadConfig() (*Config, error) {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	rawEnv := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	path, err := filepath.Abs(*configPath)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if *rawEnv != "" {
		cfg.Environment = environment.FromString(*rawEnv)
	}

	return &cfg, nil
}
