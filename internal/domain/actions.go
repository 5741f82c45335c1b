package domain

import "strings"

// ActionType - тактическое действие сущности
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionDrive // Составное действие: транспорт + водитель
)

// Маппинг для конвертации JSON -> Domain
var actionStringToType = map[string]ActionType{
	"MOVE":  ActionMove,
	"DRIVE": ActionDrive,
}

// Маппинг для логов Domain -> String
var actionTypeToString = map[ActionType]string{
	ActionMove:  "MOVE",
	ActionDrive: "DRIVE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToType[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionTypeToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
