package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"barpos/cmd"
	httpin "barpos/internal/adapters/in/http"
	"barpos/internal/adapters/out/postgres/menurepo"
	"barpos/internal/adapters/out/postgres/orderrepo"
	"barpos/internal/adapters/out/postgres/staffrepo"
	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/jobs"
	"barpos/internal/pkg/errs"
)

const defaultOrderRetention = 7 * 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.Hub().Close()

	seedAdminAccount(app, configs, logger)

	jobManager := jobs.NewJobManager(
		app.CreatePurgeClosedOrdersCommandHandler(),
		orderRetention(configs, logger),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		AuthSecret:     goDotEnvVariable("AUTH_SECRET"),
		OrderRetention: goDotEnvVariable("ORDER_RETENTION"),
		AdminUsername:  goDotEnvVariable("ADMIN_USERNAME"),
		AdminName:      goDotEnvVariable("ADMIN_NAME"),
		AdminPassword:  goDotEnvVariable("ADMIN_PASSWORD"),
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
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&staffrepo.UserDTO{},
		&menurepo.CategoryDTO{},
		&menurepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("migrating database: %v", err)
	}
}

// seedAdminAccount guarantees at least one admin exists. The register
// endpoint is admin-gated, so a fresh deployment needs this bootstrap to
// be able to log in at all. An existing username is left untouched.
func seedAdminAccount(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if configs.AdminUsername == "" || configs.AdminPassword == "" {
		return
	}

	registerCommand, err := commands.NewRegisterStaffCommand(
		kernel.NewUUID(),
		configs.AdminUsername,
		configs.AdminName,
		configs.AdminPassword,
		staff.RoleAdmin,
	)
	if err != nil {
		log.Fatalf("building admin account: %v", err)
	}

	registerHandler := app.CreateRegisterStaffCommandHandler()
	_, err = registerHandler.Handle(context.Background(), registerCommand)
	switch {
	case err == nil:
		logger.Info("admin account created", "username", configs.AdminUsername)
	case errors.Is(err, errs.ErrConflict):
		logger.Info("admin account already exists", "username", configs.AdminUsername)
	default:
		log.Fatalf("seeding admin account: %v", err)
	}
}

func orderRetention(configs cmd.Config, logger *slog.Logger) time.Duration {
	if configs.OrderRetention == "" {
		return defaultOrderRetention
	}

	retention, err := time.ParseDuration(configs.OrderRetention)
	if err != nil || retention <= 0 {
		logger.Warn("invalid ORDER_RETENTION, using default",
			"value", configs.OrderRetention, "default", defaultOrderRetention)
		return defaultOrderRetention
	}
	return retention
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateServer()
	auth := httpin.NewAuthMiddleware(app.Tokens(), app.Policy())
	stream := httpin.NewStreamHandler(app.Hub())
	server.RegisterRoutes(e, auth, stream)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
