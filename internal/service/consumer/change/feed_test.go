//go:build integration

package changeconsumer_test

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/fleet-maintenance/internal/changefeed"
	"github.com/you-humble/fleet-maintenance/internal/converter"
	"github.com/you-humble/fleet-maintenance/internal/model"
	changeconsumer "github.com/you-humble/fleet-maintenance/internal/service/consumer/change"
	changeproducer "github.com/you-humble/fleet-maintenance/internal/service/producer/change"
	"github.com/you-humble/fleet-maintenance/platform/kafka/consumer"
	"github.com/you-humble/fleet-maintenance/platform/kafka/middleware"
	"github.com/you-humble/fleet-maintenance/platform/kafka/producer"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type recorder struct {
	mu      sync.Mutex
	changes []model.CollectionChange
}

func (r *recorder) listen(c model.CollectionChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) versions() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Version)
	}
	return out
}

// startInstance wires a hub to Kafka the way the application does.
func startInstance(ctx context.Context, instanceID string) (*changefeed.Hub, *recorder) {
	conv := converter.NewKafkaConverter()
	hub := changefeed.NewHub(instanceID)

	producerCfg := sarama.NewConfig()
	producerCfg.Version = sarama.V4_0_0_0
	producerCfg.Producer.Return.Successes = true

	syncProducer, err := sarama.NewSyncProducer(brokers, producerCfg)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(syncProducer.Close)

	hub.SetForwarder(changeproducer.NewChangeProducer(
		producer.NewProducer(syncProducer, topic, logger.L()),
		conv,
	))

	consumerCfg := sarama.NewConfig()
	consumerCfg.Version = sarama.V4_0_0_0
	consumerCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	consumerCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, "fleet-it-"+instanceID, consumerCfg)
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(group.Close)

	feed := changeconsumer.NewChangeConsumer(
		consumer.NewConsumer(group, []string{topic}, logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		),
		conv,
		hub,
	)
	go func() {
		defer GinkgoRecover()
		_ = feed.RunCollectionChangedConsume(ctx)
	}()

	rec := &recorder{}
	hub.Subscribe(changefeed.AllKeys, rec.listen)

	return hub, rec
}

var _ = Describe("Collection change feed", func() {
	It("delivers a write on one instance to the other and drops the echo", func() {
		ctx, cancel := context.WithCancel(suiteCtx)
		DeferCleanup(cancel)

		suffix := time.Now().Format("150405.000")
		hubA, recA := startInstance(ctx, "a-"+suffix)
		hubB, recB := startInstance(ctx, "b-"+suffix)

		By("committing two writes on instance A")
		for v := int64(1); v <= 2; v++ {
			hubA.Publish(ctx, model.CollectionChange{
				Key:       "stockItems",
				Version:   v,
				WriterID:  hubA.InstanceID(),
				ChangedAt: time.Now().UTC(),
			})
		}

		By("waiting for instance B to hear about both")
		Eventually(recB.versions).
			WithTimeout(30 * time.Second).
			WithPolling(200 * time.Millisecond).
			Should(Equal([]int64{1, 2}))
		Expect(hubB.LastVersion("stockItems")).To(Equal(int64(2)))

		By("checking instance A saw only its local notifications")
		Consistently(recA.versions).
			WithTimeout(2 * time.Second).
			Should(Equal([]int64{1, 2}))
	})
})
