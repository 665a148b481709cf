package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplychain/cmd"
	httpadapter "supplychain/internal/adapters/in/http"
	kafkain "supplychain/internal/adapters/in/kafka"
	kafkaout "supplychain/internal/adapters/out/kafka"
	"supplychain/internal/adapters/out/postgres/cargorepo"
	"supplychain/internal/adapters/out/postgres/deliveryrepo"
	"supplychain/internal/adapters/out/postgres/routerepo"
	"supplychain/internal/adapters/out/postgres/shipmentrepo"
	"supplychain/internal/adapters/out/postgres/vendorrepo"
	"supplychain/internal/jobs"
	"supplychain/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	metrics.Register()

	db := mustOpenDatabase(configs)

	// Outbound events: bounded-buffer publisher over Kafka.
	publisher := kafkaout.NewEventPublisher(
		kafkaout.NewKafkaWriter([]string{configs.KafkaHost}),
		logger,
	)

	// Inbound events: topic readers fanning out to the SSE hub.
	hub := httpadapter.NewEventHub()
	hub.Start()

	relay := kafkain.NewRelay(
		kafkain.NewKafkaReaders([]string{configs.KafkaHost}, configs.KafkaConsumerGroup),
		hub,
		logger,
	)
	relay.Start()

	root := cmd.NewCompositionRoot(configs, db, publisher)

	jobManager := jobs.NewJobManager(root.CreateCleanupDeliveriesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(root.CreateCommandHandlers(), root.CreateQueryHandlers(), hub)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	jobManager.StopAll()
	relay.Stop()
	hub.Stop()
	if err := publisher.Close(); err != nil {
		logger.Error("publisher close failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup: goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDatabase connects to PostgreSQL and migrates the schema.
// TranslateError is required: the delivery materialization path relies on
// unique violations surfacing as gorm.ErrDuplicatedKey.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&routerepo.RouteDTO{},
		&vendorrepo.VendorDTO{},
		&cargorepo.CargoDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}
