package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/fleet-maintenance/internal/changefeed"
	"github.com/you-humble/fleet-maintenance/internal/config"
	envconfig "github.com/you-humble/fleet-maintenance/internal/config/env"
	"github.com/you-humble/fleet-maintenance/internal/converter"
	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/migrator"
	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/repository/collection"
	orderrepo "github.com/you-humble/fleet-maintenance/internal/repository/order"
	stockrepo "github.com/you-humble/fleet-maintenance/internal/repository/stock"
	"github.com/you-humble/fleet-maintenance/internal/repository/store"
	mongostore "github.com/you-humble/fleet-maintenance/internal/repository/store/mongo"
	pgstore "github.com/you-humble/fleet-maintenance/internal/repository/store/postgres"
	techrepo "github.com/you-humble/fleet-maintenance/internal/repository/technician"
	txnrepo "github.com/you-humble/fleet-maintenance/internal/repository/transaction"
	usedpartrepo "github.com/you-humble/fleet-maintenance/internal/repository/usedpart"
	changeconsumer "github.com/you-humble/fleet-maintenance/internal/service/consumer/change"
	changeproducer "github.com/you-humble/fleet-maintenance/internal/service/producer/change"
	"github.com/you-humble/fleet-maintenance/internal/service/repair"
	"github.com/you-humble/fleet-maintenance/internal/service/stock"
	"github.com/you-humble/fleet-maintenance/internal/service/technician"
	"github.com/you-humble/fleet-maintenance/internal/service/usedpart"
	"github.com/you-humble/fleet-maintenance/internal/transport/http/changes"
	"github.com/you-humble/fleet-maintenance/internal/transport/http/health"
	thttp "github.com/you-humble/fleet-maintenance/internal/transport/http/fleet/v1"
	"github.com/you-humble/fleet-maintenance/platform/closer"
	"github.com/you-humble/fleet-maintenance/platform/kafka"
	"github.com/you-humble/fleet-maintenance/platform/kafka/consumer"
	kafkamw "github.com/you-humble/fleet-maintenance/platform/kafka/middleware"
	"github.com/you-humble/fleet-maintenance/platform/kafka/producer"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type Converter interface {
	CollectionChangedToPayload(change model.CollectionChange) ([]byte, error)
	CollectionChangedToModel(data []byte) (model.CollectionChange, error)
}

type ChangeConsumer interface {
	RunCollectionChangedConsume(ctx context.Context) error
}

type Handler interface {
	Routes(r chi.Router)
}

type TechnicianService interface {
	thttp.TechnicianService
	repair.TechnicianDirectory
}

type UsedPartService interface {
	thttp.UsedPartService
	repair.UsedPartRegistrar
}

type di struct {
	mongoClient *mongo.Client
	dbPool      *pgxpool.Pool
	migrator    *migrator.Migrator
	backend     store.Backend

	hub *changefeed.Hub

	repairOrders *collection.Collection[orderrepo.RepairOrderEntity]
	stockItems   *collection.Collection[stockrepo.StockItemEntity]
	usedParts    *collection.Collection[usedpartrepo.UsedPartEntity]
	transactions *collection.Collection[txnrepo.StockTransactionEntity]
	technicians  *collection.Collection[techrepo.TechnicianEntity]

	conv Converter

	consumerGroup          sarama.ConsumerGroup
	collectionChangedGroup kafka.Consumer
	changeConsumer         ChangeConsumer

	syncProducer              sarama.SyncProducer
	collectionChangedProducer kafka.Producer
	changeProducer            changefeed.Forwarder

	technicianService TechnicianService
	stockService      thttp.StockService
	usedPartService   UsedPartService
	repairService     thttp.RepairOrderService

	handler       Handler
	streamHandler http.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoClient(ctx context.Context) *mongo.Client {
	if d.mongoClient == nil {
		client, err := mongo.Connect(options.Client().ApplyURI(config.C().Mongo.DSN()))
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongo: %v\n", err))
		}

		closer.AddNamed("Mongo client",
			func(ctx context.Context) error {
				return client.Disconnect(ctx)
			})

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping mongo: %v\n", err))
		}

		d.mongoClient = client
	}

	return d.mongoClient
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) Backend(ctx context.Context) store.Backend {
	if d.backend == nil {
		switch config.C().Store.Driver() {
		case envconfig.DriverMongo:
			coll := d.MongoClient(ctx).
				Database(config.C().Mongo.DatabaseName()).
				Collection(config.C().Mongo.CollectionsCollection())
			d.backend = mongostore.NewBackend(coll)
		case envconfig.DriverPostgres:
			d.backend = pgstore.NewBackend(d.DBPool(ctx))
		default:
			logger.Warn(ctx, "memory store selected, data is lost on restart")
			d.backend = store.NewMemory()
		}
	}

	return d.backend
}

// StoreProbe reads one collection to prove the backend answers; an absent key is fine.
func (d *di) StoreProbe(ctx context.Context) health.Probe {
	backend := d.Backend(ctx)

	return func(ctx context.Context) error {
		_, err := backend.Load(ctx, techrepo.CollectionKey)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
}

func (d *di) Hub(ctx context.Context) *changefeed.Hub {
	if d.hub == nil {
		d.hub = changefeed.NewHub(config.C().Store.InstanceID())

		if config.C().Kafka.Enabled() {
			d.hub.SetForwarder(d.ChangeProducer(ctx))
		}
	}

	return d.hub
}

// newCollection binds a store key to the backend and keeps its read cache in step
// with changes announced by this and other instances.
func newCollection[E any](ctx context.Context, d *di, key string) *collection.Collection[E] {
	cfg := config.C().Store
	hub := d.Hub(ctx)

	coll := collection.New[E](key, d.Backend(ctx),
		collection.WithWriterID(cfg.InstanceID()),
		collection.WithRetries(cfg.WriteRetries()),
		collection.WithPublisher(hub),
		collection.WithConflictObserver(metrics.ConflictCounter{}),
		collection.WithCacheTTL(cfg.CacheTTL()),
	)
	unsubscribe := hub.Subscribe(key, coll.Invalidate)
	closer.AddNamed("Collection "+key, func(context.Context) error {
		unsubscribe()
		return nil
	})

	return coll
}

func (d *di) RepairOrders(ctx context.Context) *collection.Collection[orderrepo.RepairOrderEntity] {
	if d.repairOrders == nil {
		d.repairOrders = newCollection[orderrepo.RepairOrderEntity](ctx, d, orderrepo.CollectionKey)
	}

	return d.repairOrders
}

func (d *di) StockItems(ctx context.Context) *collection.Collection[stockrepo.StockItemEntity] {
	if d.stockItems == nil {
		d.stockItems = newCollection[stockrepo.StockItemEntity](ctx, d, stockrepo.CollectionKey)
	}

	return d.stockItems
}

func (d *di) UsedParts(ctx context.Context) *collection.Collection[usedpartrepo.UsedPartEntity] {
	if d.usedParts == nil {
		d.usedParts = newCollection[usedpartrepo.UsedPartEntity](ctx, d, usedpartrepo.CollectionKey)
	}

	return d.usedParts
}

func (d *di) Transactions(ctx context.Context) *collection.Collection[txnrepo.StockTransactionEntity] {
	if d.transactions == nil {
		d.transactions = newCollection[txnrepo.StockTransactionEntity](ctx, d, txnrepo.CollectionKey)
	}

	return d.transactions
}

func (d *di) Technicians(ctx context.Context) *collection.Collection[techrepo.TechnicianEntity] {
	if d.technicians == nil {
		d.technicians = newCollection[techrepo.TechnicianEntity](ctx, d, techrepo.CollectionKey)
	}

	return d.technicians
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(cfg.Store.InstanceID()),
			cfg.Kafka.CollectionChangedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) CollectionChangedConsumer(ctx context.Context) kafka.Consumer {
	if d.collectionChangedGroup == nil {
		d.collectionChangedGroup = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.CollectionChangedTopic(),
			},
			logger.L(),
			kafkamw.Recovery(logger.L()),
			kafkamw.Logging(logger.L()),
		)
	}

	return d.collectionChangedGroup
}

func (d *di) ChangeConsumer(ctx context.Context) ChangeConsumer {
	if d.changeConsumer == nil {
		d.changeConsumer = changeconsumer.NewChangeConsumer(
			d.CollectionChangedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.Hub(ctx),
		)
	}

	return d.changeConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CollectionChangedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) CollectionChangedProducer(ctx context.Context) kafka.Producer {
	if d.collectionChangedProducer == nil {
		d.collectionChangedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CollectionChangedTopic(),
			logger.L(),
		)
	}

	return d.collectionChangedProducer
}

func (d *di) ChangeProducer(ctx context.Context) changefeed.Forwarder {
	if d.changeProducer == nil {
		d.changeProducer = changeproducer.NewChangeProducer(
			d.CollectionChangedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.changeProducer
}

func (d *di) TechnicianService(ctx context.Context) TechnicianService {
	if d.technicianService == nil {
		d.technicianService = technician.NewTechnicianService(
			techrepo.NewRepository(d.Technicians(ctx)),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.technicianService
}

func (d *di) StockService(ctx context.Context) thttp.StockService {
	if d.stockService == nil {
		d.stockService = stock.NewStockService(
			stockrepo.NewRepository(d.StockItems(ctx)),
			txnrepo.NewRepository(d.Transactions(ctx)),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.stockService
}

func (d *di) UsedPartService(ctx context.Context) UsedPartService {
	if d.usedPartService == nil {
		d.usedPartService = usedpart.NewUsedPartService(
			usedpartrepo.NewRepository(d.UsedParts(ctx)),
			stockrepo.NewRepository(d.StockItems(ctx)),
			txnrepo.NewRepository(d.Transactions(ctx)),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.usedPartService
}

func (d *di) RepairService(ctx context.Context) thttp.RepairOrderService {
	if d.repairService == nil {
		d.repairService = repair.NewRepairService(
			orderrepo.NewRepository(d.RepairOrders(ctx)),
			stockrepo.NewRepository(d.StockItems(ctx)),
			txnrepo.NewRepository(d.Transactions(ctx)),
			d.UsedPartService(ctx),
			d.TechnicianService(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.repairService
}

func (d *di) FleetHandler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewFleetHandler(
			d.RepairService(ctx),
			d.UsedPartService(ctx),
			d.StockService(ctx),
			d.TechnicianService(ctx),
		)
	}

	return d.handler
}

func (d *di) StreamHandler(ctx context.Context) http.Handler {
	if d.streamHandler == nil {
		d.streamHandler = changes.NewStreamHandler(d.Hub(ctx))
	}

	return d.streamHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
