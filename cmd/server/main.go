package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meatwagon-server/internal/engine"
	"meatwagon-server/internal/server"
	"meatwagon-server/internal/version"
	"meatwagon-server/pkg/logger"
	"meatwagon-server/pkg/scenario"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации: флаги > env > дефолты
	cfg := engine.NewConfig()
	if port := os.Getenv("MW_PORT"); port != "" {
		cfg.Port = port
	}
	cfg.ScenarioPath = os.Getenv("MW_SCENARIO")

	flag.StringVar(&cfg.ScenarioPath, "scenario", cfg.ScenarioPath, "Path to a YAML scenario (empty for the built-in crossroads)")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP/WebSocket port")
	flag.IntVar(&cfg.MaxLogs, "max-logs", cfg.MaxLogs, "Log entries kept between broadcasts")
	flag.Parse()

	logger.Log.Info("Starting Meatwagon...")
	logger.Log.Info(version.String())

	// 2. Сценарий
	sc, err := loadScenario(cfg.ScenarioPath)
	if err != nil {
		logger.Log.WithError(err).WithField("path", cfg.ScenarioPath).Fatal("Failed to load scenario")
	}

	graph, entities, err := engine.BuildWorld(sc)
	if err != nil {
		logger.Log.WithError(err).WithField("scenario", sc.Name).Fatal("Failed to build world")
	}

	// 3. Инициализация сессии
	session := engine.NewSession(cfg, graph, entities)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(session, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("Server shutdown was not clean")
	}

	logger.Log.WithFields(logrus.Fields{
		"session": session.ID,
		"turn":    session.TurnNumber(),
	}).Info("Done.")
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		logger.Log.Info("🗺️  Using built-in scenario")
		return scenario.Crossroads(), nil
	}
	return scenario.Load(path)
}
