package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"equipment-api/internal/infrastructure/memdb"
	"equipment-api/internal/routes"
	"equipment-api/pkg/config"
	apperrors "equipment-api/pkg/errors"
	"equipment-api/pkg/eventbus"
	applogger "equipment-api/pkg/logger"
	appmiddleware "equipment-api/pkg/middleware"
	"equipment-api/pkg/utils"
	"equipment-api/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger, err := applogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("не удалось создать логгер: %v", err)
	}
	defer logger.Sync()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	setupMiddleware(e, cfg, logger)
	e.Validator = utils.NewValidator(validator.New())

	// 3. Хранилище и шина событий
	db := memdb.Open(logger)
	bus := eventbus.New(logger)

	// 4. Роуты
	svc := routes.InitRouter(e, db, bus, logger)

	// 5. Начальные данные
	if cfg.Seed.File != "" {
		seeder := seeders.NewSeeder(svc.Equipment, svc.Parameter, logger)
		if err := seeder.SeedFile(context.Background(), cfg.Seed.File); err != nil {
			logger.Fatal("Seeding failed", zap.String("file", cfg.Seed.File), zap.Error(err))
		}
	}

	// 6. Запуск и остановка по сигналу
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	bus.Wait()
	if err := db.Close(); err != nil {
		logger.Error("Closing store failed", zap.Error(err))
	}
}

// recoverErrorFunc пишет панику в лог и отвечает 500, если ответ ещё не начат.
func recoverErrorFunc(logger *zap.Logger) middleware.LogErrorFunc {
	return func(c echo.Context, err error, stack []byte) error {
		logger.Error("panic recovered",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
			zap.String("stack", string(stack)),
		)
		if !c.Response().Committed {
			httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
			if respErr := utils.ErrorResponse(c, httpErr, logger); respErr != nil {
				logger.Error("panic recovered: failed to write response", zap.Error(respErr))
			}
		}
		return err
	}
}

func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *zap.Logger) {
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc:    recoverErrorFunc(logger),
	}))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(appmiddleware.InjectLogger(logger))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{
			echo.HeaderLocation,
			echo.HeaderContentDisposition,
			echo.HeaderXRequestID,
		},
	}))
}
