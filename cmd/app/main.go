package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/pkg/clock"
	"fooddelivery/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	logger := logging.New(configs.LogLevel, configs.LogFormat)

	clk, err := clock.LoadSystem(configs.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", configs.Timezone, err)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	sender, closeSender, err := cmd.NewNotificationSender(configs, logger)
	if err != nil {
		log.Fatalf("notification transport: %v", err)
	}
	defer func() {
		if err := closeSender(); err != nil {
			logger.Warn("close notification transport", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, clk, sender, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file, using the process environment")
	}
	return cmd.LoadConfig(os.Getenv)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gormDB, nil
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := httpin.NewEcho(app.CreateHTTPServer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
