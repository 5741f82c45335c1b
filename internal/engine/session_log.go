package engine

import (
	"time"

	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/api"
	"meatwagon-server/pkg/logger"
	"meatwagon-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AddLog добавляет лог в историю сессии. Вызывается под s.mu.
// Старые записи вытесняются, если буфер переполнен.
func (s *Session) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if overflow := len(s.Logs) - s.maxLogs; overflow > 0 {
		s.Logs = s.Logs[overflow:]
	}

	logger.Log.WithFields(logrus.Fields{
		"session":   s.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// recordEvents переводит события контроллера в записи лога
func (s *Session) recordEvents(events []domain.Event) {
	for _, ev := range events {
		s.AddLog(ev.Text, logTypeFor(ev.Type))
	}
}

func logTypeFor(t domain.EventType) string {
	switch t {
	case domain.EventMoved:
		return "MOVE"
	case domain.EventTurnEnded:
		return "TURN"
	case domain.EventRejected:
		return "ERROR"
	default:
		return "INFO"
	}
}
