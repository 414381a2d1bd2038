package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Store interface {
	Driver() string
	WriteRetries() int
	InstanceID() string
	CacheTTL() time.Duration
}

type Mongo interface {
	DatabaseName() string
	CollectionsCollection() string
	DSN() string
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	CollectionChangedTopic() string
	ConsumerGroupID(instanceID string) string
	CollectionChangedConsumerConfig() *sarama.Config
	CollectionChangedProducerConfig() *sarama.Config
}
