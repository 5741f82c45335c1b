package domain

import "strings"

// EventType - событие контроллера хода, уходит в лог сессии
type EventType uint8

const (
	EventUnknown EventType = iota
	EventSelected
	EventDeselected
	EventActionChosen
	EventDestinationPicked
	EventMoved
	EventTurnEnded
	EventRejected
)

var eventStringToType = map[string]EventType{
	"SELECTED":           EventSelected,
	"DESELECTED":         EventDeselected,
	"ACTION_CHOSEN":      EventActionChosen,
	"DESTINATION_PICKED": EventDestinationPicked,
	"MOVED":              EventMoved,
	"TURN_ENDED":         EventTurnEnded,
	"REJECTED":           EventRejected,
}

var eventTypeToString = map[EventType]string{
	EventSelected:          "SELECTED",
	EventDeselected:        "DESELECTED",
	EventActionChosen:      "ACTION_CHOSEN",
	EventDestinationPicked: "DESTINATION_PICKED",
	EventMoved:             "MOVED",
	EventTurnEnded:         "TURN_ENDED",
	EventRejected:          "REJECTED",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToType[upper]; ok {
		return val
	}
	return EventUnknown
}

func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - запись о переходе машины состояний
type Event struct {
	Type   EventType
	Entity EntityID
	Tile   TileID
	Text   string
}
