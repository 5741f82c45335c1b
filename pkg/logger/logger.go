package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Options - настройки логгера
type Options struct {
	Level  string    // debug, info, warn, error
	Format string    // json | text
	Output io.Writer // По умолчанию os.Stdout
}

// OptionsFromEnv читает настройки из LOG_LEVEL и LOG_FORMAT.
func OptionsFromEnv() Options {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return Options{
		Level:  level,
		Format: strings.ToLower(os.Getenv("LOG_FORMAT")),
		Output: os.Stdout,
	}
}

// Init инициализирует глобальный логгер из окружения.
// Вызывается один раз при старте (main.go, TestMain).
func Init() {
	Configure(OptionsFromEnv())
}

// Configure применяет настройки к глобальному логгеру
func Configure(opts Options) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для продакшена, "text" - для разработки
	if opts.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	Log.SetOutput(opts.Output)
}
