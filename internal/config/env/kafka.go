package envconfig

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled             bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers             []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	CollectionChanged   string   `env:"COLLECTION_CHANGED_TOPIC_NAME" envDefault:"fleet.collection-changed"`
	ConsumerGroupPrefix string   `env:"COLLECTION_CHANGED_CONSUMER_GROUP_PREFIX" envDefault:"fleet-maintenance"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS is empty while KAFKA_ENABLED is set")
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                  { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string              { return cfg.raw.Brokers }
func (cfg *kafka) CollectionChangedTopic() string { return cfg.raw.CollectionChanged }

// ConsumerGroupID is unique per instance so every instance sees every change.
func (cfg *kafka) ConsumerGroupID(instanceID string) string {
	return cfg.raw.ConsumerGroupPrefix + "-" + instanceID
}

func (cfg *kafka) CollectionChangedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	return config
}

func (cfg *kafka) CollectionChangedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}
