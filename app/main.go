package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-console/internal/routes"
	"admin-console/pkg/config"
	"admin-console/pkg/customvalidator"
	"admin-console/pkg/database/postgresql"
	applogger "admin-console/pkg/logger"
	"admin-console/pkg/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	baseLogger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.Paths)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer baseLogger.Sync()
	loggers := applogger.NewLoggers(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true

	v, err := customvalidator.New()
	if err != nil {
		loggers.Main.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = v

	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, loggers.Main)
	if err != nil {
		loggers.Main.Fatal("не удалось подключиться к Postgres", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Postgres.AutoMigrate {
		if err := postgresql.Migrate(ctx, dbConn); err != nil {
			loggers.Main.Fatal("ошибка миграций", zap.Error(err))
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		loggers.Main.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	svc := routes.BuildServices(dbConn, redisClient, jwtSvc, loggers, cfg)
	routes.InitRouter(e, svc, jwtSvc, loggers, cfg)

	go func() {
		loggers.Main.Info("Сервер запущен", zap.String("address", cfg.HTTPAddress()))
		if err := e.Start(cfg.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggers.Main.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	loggers.Main.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		loggers.Main.Error("Ошибка при остановке сервера", zap.Error(err))
	}
}
