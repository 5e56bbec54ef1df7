package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/macetwatch/traffic-monitor/internal/core/service"
	"github.com/macetwatch/traffic-monitor/internal/infrastructure/config"
	mongodb "github.com/macetwatch/traffic-monitor/internal/infrastructure/db/mongo"
	redisdb "github.com/macetwatch/traffic-monitor/internal/infrastructure/db/redis"
	"github.com/macetwatch/traffic-monitor/internal/infrastructure/maps"
	"github.com/macetwatch/traffic-monitor/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

var rootCmd = &cobra.Command{
	Use:   "trafficmon",
	Short: "Jakarta traffic monitoring service",
	Long: `trafficmon collects live traffic observations for major Jakarta roads on a
fixed schedule and serves reports, route checks and weekly statistics over HTTP.`,
	RunE: runServe,
}

func init() {
	cobra.OnInitialize(func() {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "no .env file found, using system environment")
		}
	})

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the shared dependencies behind both commands.
type app struct {
	cfg         *config.Config
	log         zerolog.Logger
	mongoClient *mongo.Client
	db          *mongo.Database
	redis       *redis.Client
	monitor     *service.MonitorService
}

// newApp loads configuration, connects the stores and assembles the monitor
// service stack.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Maps.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY must be set")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	observations := mongodb.NewObservationRepository(db)
	subscriptions := mongodb.NewSubscriptionRepository(db)
	operators := mongodb.NewAuthRepository(db)

	if err := observations.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("observation indexes: %w", err)
	}
	if err := subscriptions.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("subscription indexes: %w", err)
	}
	if err := operators.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("operator indexes: %w", err)
	}

	roads, err := config.LoadRoads(cfg.Sweep.RoadsFile)
	if err != nil {
		return nil, err
	}

	mapsClient := maps.NewClient(cfg.Maps.APIKey, maps.WithRegion(cfg.Maps.City, cfg.Maps.Country))
	geocoder := redisdb.NewGeoCache(rdb, mapsClient, logger.Component("geocache"))

	fetcher := service.NewTrafficFetcher(mapsClient, logger.Component("fetcher"))
	history := service.NewHistoryService(observations, cfg.History.Lookback, logger.Component("history"))
	anomaly := service.NewAnomalyService(history, logger.Component("anomaly"))
	monitor := service.NewMonitorService(
		fetcher,
		history,
		anomaly,
		geocoder,
		roads,
		cfg.Sweep.Workers,
		logger.Component("monitor"),
	)

	return &app{
		cfg:         cfg,
		log:         log,
		mongoClient: mongoClient,
		db:          db,
		redis:       rdb,
		monitor:     monitor,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.redis.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing redis")
	}
	if err := a.mongoClient.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("disconnecting mongodb")
	}
}
