package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sheronjay/supply-chain-management-sys/cmd"
	apihttp "github.com/sheronjay/supply-chain-management-sys/internal/adapters/in/http"
	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres/orderrepo"
	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres/triprepo"
	"github.com/sheronjay/supply-chain-management-sys/internal/adapters/out/postgres/workerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&triprepo.TripDTO{}, &triprepo.TripOrderDTO{},
		&workerrepo.DeliveryWorkerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := apihttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateDispatchToTrainCommandHandler(),
		app.CreateAcceptAtStoreCommandHandler(),
		app.CreateAssignTruckCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateUpdateWorkingHoursCommandHandler(),
		app.CreateGetCandidateTripsQueryHandler(),
		app.CreateGetEligibleWorkersQueryHandler(),
		app.CreateGetPendingOrdersQueryHandler(),
		app.CreateGetDriverOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
