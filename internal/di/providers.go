package di

import (
	"context"
	"fmt"
	"time"

	domrepo "stratosim/internal/domain/repository"
	"stratosim/internal/domain/service"
	"stratosim/internal/engine/fleet"
	"stratosim/internal/engine/montecarlo"
	"stratosim/internal/engine/navigator"
	"stratosim/internal/engine/wind"
	"stratosim/internal/handler/api"
	internalrepo "stratosim/internal/repository"
	"stratosim/internal/service/cache"
	"stratosim/internal/service/jobs"
	"stratosim/internal/usecase"
	pkgch "stratosim/pkg/clickhouse"
	"stratosim/pkg/config"
	pkgkafka "stratosim/pkg/kafka"
	"stratosim/pkg/logger"
	"stratosim/pkg/metrics"
	"stratosim/pkg/queue"
	"stratosim/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	lc := &logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return logger.New(lc)
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideWindField creates the stratified wind model.
func ProvideWindField() service.WindField {
	return wind.New()
}

// ProvideStationKeeper creates the altitude-control navigator.
func ProvideStationKeeper(field service.WindField) service.StationKeeper {
	return navigator.New(field)
}

// ProvideFleetPlanner creates the fleet orchestrator.
func ProvideFleetPlanner(keeper service.StationKeeper, cfg *config.Config) service.FleetPlanner {
	return fleet.New(keeper, fleet.WithWorkers(cfg.Simulation.Workers))
}

// ProvideRiskAnalyzer creates the Monte-Carlo simulator.
func ProvideRiskAnalyzer(keeper service.StationKeeper, cfg *config.Config) service.RiskAnalyzer {
	return montecarlo.New(keeper, montecarlo.WithWorkers(cfg.Simulation.Workers))
}

// ProvideCache creates the byte cache: Redis when configured, otherwise an
// in-process TTL map.
func ProvideCache(cfg *config.Config) cache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideRunStore creates the ClickHouse run history store. Returns nil when
// history is disabled.
func ProvideRunStore(cfg *config.Config) (domrepo.RunStore, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	store := internalrepo.NewClickHouseRunStore(client)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("run store schema: %w", err)
	}
	return store, nil
}

// ProvideEventPublisher creates the Kafka run-event publisher. Returns nil
// when kafka is disabled.
func ProvideEventPublisher(cfg *config.Config) (domrepo.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaRunPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvidePresetStore creates the in-memory platform/payload catalog.
func ProvidePresetStore() domrepo.PresetStore {
	return internalrepo.NewMemoryPresetStore()
}

// ProvideSimulationService assembles the simulation use case.
func ProvideSimulationService(
	field service.WindField,
	keeper service.StationKeeper,
	planner service.FleetPlanner,
	risk service.RiskAnalyzer,
	runs domrepo.RunStore,
	events domrepo.EventPublisher,
	byteCache cache.BytesCache,
	cfg *config.Config,
	rec *metrics.Recorder,
	lgr *logger.Logger,
) *usecase.SimulationService {
	return usecase.NewSimulationService(field, keeper, planner, risk, runs, events, byteCache, cfg, rec, lgr)
}

// ProvideMissionPlanner assembles the mission quoting use case.
func ProvideMissionPlanner(presets domrepo.PresetStore, lgr *logger.Logger) *usecase.MissionPlanner {
	return usecase.NewMissionPlanner(presets, lgr)
}

// ProvideJobQueue creates the Redis job queue when jobs are enabled. The
// queue shares the Redis connection with the cache.
func ProvideJobQueue(cfg *config.Config, byteCache cache.BytesCache, lgr *logger.Logger) *queue.RedisQueue {
	if !cfg.Jobs.Enabled {
		return nil
	}
	redisCache, ok := byteCache.(*cache.RedisCache)
	if !ok {
		return nil
	}

	opts := []queue.Option{}
	if cfg.Jobs.Queue != "" {
		opts = append(opts, queue.WithKeyPrefix(cfg.Jobs.Queue))
	}
	return queue.NewRedisQueue(lgr, &queue.Config{
		Workers:    cfg.Jobs.Workers,
		RetryLimit: 2,
		RetryDelay: 15 * time.Second,
	}, redisCache.Client(), opts...)
}

// ProvideJobService registers the Monte-Carlo job on the queue. Returns nil
// when the queue is absent.
func ProvideJobService(
	sim *usecase.SimulationService,
	q *queue.RedisQueue,
	byteCache cache.BytesCache,
	cfg *config.Config,
	lgr *logger.Logger,
) *jobs.Service {
	if q == nil {
		return nil
	}
	ttl := cfg.Cache.TTL.Runs
	if ttl <= 0 {
		ttl = time.Hour
	}
	return jobs.NewService(sim, q, byteCache, ttl, lgr)
}

// ProvideHandler creates the Echo API handler.
func ProvideHandler(
	lgr *logger.Logger,
	sim *usecase.SimulationService,
	missions *usecase.MissionPlanner,
	jobSvc *jobs.Service,
) *api.SimulationHandler {
	return api.NewSimulationHandler(lgr, sim, missions, jobSvc)
}

// ProvideApp assembles the application lifecycle.
func ProvideApp(
	cfg *config.Config,
	lgr *logger.Logger,
	handler *api.SimulationHandler,
	runs domrepo.RunStore,
	events domrepo.EventPublisher,
	q *queue.RedisQueue,
) *server.App {
	return server.New(cfg, lgr, handler, runs, events, q)
}
