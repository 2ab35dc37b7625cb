package repo

import (
	"time"

	"github.com/nikmy/meowmatch/internal/repo/internal/memory"
	mongorepo "github.com/nikmy/meowmatch/internal/repo/internal/mongo"
)

type Driver string

const (
	DriverMemory Driver = "memory"
	DriverMongo  Driver = "mongo"
)

type Config struct {
	Driver Driver       `yaml:"driver"`
	Mongo  MongoConfig  `yaml:"mongo"`
	Memory MemoryConfig `yaml:"memory"`
}

type (
	MongoConfig  = mongorepo.Config
	MemoryConfig = memory.Config
)

const defaultTimeout = 5 * time.Second
