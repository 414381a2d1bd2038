package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type storeEnv struct {
	Driver       string        `env:"STORE_DRIVER" envDefault:"memory"`
	WriteRetries int           `env:"STORE_WRITE_RETRIES" envDefault:"3"`
	InstanceID   string        `env:"INSTANCE_ID"`
	CacheTTL     time.Duration `env:"STORE_CACHE_TTL" envDefault:"0s"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverMemory, DriverMongo, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", raw.Driver)
	}
	if raw.WriteRetries < 1 {
		return nil, fmt.Errorf("STORE_WRITE_RETRIES must be positive, got %d", raw.WriteRetries)
	}
	if raw.InstanceID == "" {
		raw.InstanceID = uuid.NewString()
	}

	return &store{raw: raw}, nil
}

func (cfg *store) Driver() string          { return cfg.raw.Driver }
func (cfg *store) WriteRetries() int       { return cfg.raw.WriteRetries }
func (cfg *store) InstanceID() string      { return cfg.raw.InstanceID }
func (cfg *store) CacheTTL() time.Duration { return cfg.raw.CacheTTL }
