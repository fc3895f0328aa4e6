package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"orders/cmd"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/generated/servers"
	"orders/internal/jobs"

	_ "orders/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
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
		AuthToken:  goDotEnvVariable("AUTH_TOKEN"),
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
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateStartCookingCommandHandler(),
		app.CreateDispatchOrdersCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderItemsCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)

	api := e.Group("/api/v1", httpadapter.BearerAuth(configs.AuthToken))
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
