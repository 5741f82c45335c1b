package domain

import (
	"encoding/json"
	"strings"
)

// CommandType - команда слоя UI к ядру
type CommandType uint8

const (
	CommandUnknown CommandType = iota
	CommandInit
	CommandSelect
	CommandDeselect
	CommandChooseAction
	CommandPickDestination
	CommandConfirm
	CommandEndTurn
	CommandQueryReachable
	CommandQueryPath
)

var commandStringToType = map[string]CommandType{
	"INIT":             CommandInit,
	"SELECT":           CommandSelect,
	"DESELECT":         CommandDeselect,
	"CHOOSE_ACTION":    CommandChooseAction,
	"PICK_DESTINATION": CommandPickDestination,
	"CONFIRM":          CommandConfirm,
	"END_TURN":         CommandEndTurn,
	"QUERY_REACHABLE":  CommandQueryReachable,
	"QUERY_PATH":       CommandQueryPath,
}

var commandTypeToString = map[CommandType]string{}

func init() {
	for s, c := range commandStringToType {
		commandTypeToString[c] = s
	}
}

// ParseCommand конвертирует строку из JSON в CommandType
func ParseCommand(s string) CommandType {
	if val, ok := commandStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return CommandUnknown
}

func (c CommandType) String() string {
	if val, ok := commandTypeToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// InternalCommand - команда для движка.
// Использует CommandType вместо string.
type InternalCommand struct {
	Command CommandType
	Token   string          // ID клиента-отправителя
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
