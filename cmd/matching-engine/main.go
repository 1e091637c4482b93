package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/ananyaprabhakarm/Matching-Engine/internal/app/engine"
	feesv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/fees/v1"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/fees"
	orderreader "github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/order-reader"
	reportpublisher "github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/report-publisher"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/reporter"
	"github.com/ananyaprabhakarm/Matching-Engine/internal/usecase/snapshot"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/config"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/logger"
	"github.com/ananyaprabhakarm/Matching-Engine/pkg/redis"
	"github.com/shopspring/decimal"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	redisConfig := redis.DefaultConfig()
	redisConfig.Addrs = []string{cfg.RedisConfig.Addrs}
	redisConfig.Password = cfg.RedisConfig.Password
	redisConfig.Username = cfg.RedisConfig.Username
	redisConfig.DB = cfg.RedisConfig.DB

	rclient := redis.NewClient(log, redisConfig)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	schedule, err := feeSchedule(cfg.Fees)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "parse_fee_schedule",
		})
		return
	}

	oReader := orderreader.NewReader(cfg.KafkaConfig, log)
	publisher := reportpublisher.NewPublisher(cfg.PublisherConfig, log)
	snapshotStore := snapshot.NewStore(rclient, log)
	rep := reporter.NewReporter(fees.NewCalculator(schedule))

	engine := app.NewEngine(
		oReader,
		publisher,
		snapshotStore,
		rep,
		log,
		cfg,
	)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	log.Info("Matching engine started successfully", logger.Field{
		Key:   "pairs",
		Value: cfg.Pairs,
	})

	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if err := publisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Matching engine shutdown complete")
}

func feeSchedule(fc config.FeeConfig) (feesv1.Schedule, error) {
	maker, err := decimal.NewFromString(fc.MakerRate)
	if err != nil {
		return feesv1.Schedule{}, err
	}
	taker, err := decimal.NewFromString(fc.TakerRate)
	if err != nil {
		return feesv1.Schedule{}, err
	}
	return feesv1.Schedule{MakerRate: maker, TakerRate: taker}, nil
}
