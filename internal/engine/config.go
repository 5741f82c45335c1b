package engine

// Config хранит параметры запуска сессии
type Config struct {
	// ScenarioPath - путь к YAML-сценарию. Пусто - встроенный сценарий.
	ScenarioPath string
	Port         string

	// MaxLogs - сколько записей лога держим между рассылками
	MaxLogs int
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Port:    "8080",
		MaxLogs: 64,
	}
}
