package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"driverhub/cmd"
	httpin "driverhub/internal/adapters/in/http"
	"driverhub/internal/adapters/out/postgres/driverrepo"
	"driverhub/internal/adapters/out/postgres/orderrepo"
	"driverhub/internal/adapters/out/postgres/shoprepo"
	"driverhub/internal/adapters/out/rediscache"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	poolCache := createPoolCache(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, poolCache)

	jobManager := jobs.NewJobManager(
		app.CreateReconcileDriverActivityCommandHandler(),
		configs.ParsedStoreTimeout(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:    goDotEnvVariable("REDIS_ADDR"),
		CacheTTL:     goDotEnvVariable("CACHE_TTL"),
		StoreTimeout: goDotEnvVariable("STORE_TIMEOUT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&shoprepo.ShopDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createPoolCache builds the unclaimed pool cache. Without a Redis address
// the service runs cache-less; queries fall through to the store.
func createPoolCache(configs cmd.Config, logger *slog.Logger) queries.UnclaimedPoolCache {
	if configs.RedisAddr == "" {
		return queries.NopUnclaimedPoolCache{}
	}

	ttl, err := time.ParseDuration(configs.CacheTTL)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	return rediscache.NewUnclaimedPoolCache(client, ttl, logger)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Use(httpin.StoreTimeout(configs.ParsedStoreTimeout()))

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateSetDriverOnlineCommandHandler(),
		app.CreateSetShopOpenCommandHandler(),
		app.CreateGetUnclaimedOrdersQueryHandler(),
		app.CreateGetDriverOrdersQueryHandler(),
		app.CreateGetShopOrdersQueryHandler(),
		app.CreateGetDriverStatisticsQueryHandler(),
		app.CreateGetShopStatisticsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
