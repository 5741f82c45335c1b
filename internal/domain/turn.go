package domain

import "github.com/zyedidia/generic/mapset"

// Phase - состояние машины выбора действия
type Phase uint8

const (
	PhaseNothingSelected Phase = iota
	PhaseEntitySelected
	PhaseActionChosen
	PhaseDestinationPending
)

var phaseToString = map[Phase]string{
	PhaseNothingSelected:    "NOTHING_SELECTED",
	PhaseEntitySelected:     "ENTITY_SELECTED",
	PhaseActionChosen:       "ACTION_CHOSEN",
	PhaseDestinationPending: "DESTINATION_PENDING",
}

func (p Phase) String() string {
	if val, ok := phaseToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

// FirstTurn - номер первого хода сессии
const FirstTurn = 1

// TurnState - состояние хода. Владелец - контроллер хода.
type TurnState struct {
	Turn  int
	Phase Phase

	// Выбранная сущность (0 или 1)
	Selected EntityID

	// Валидны только посреди действия
	PendingAction      ActionType
	PendingDestination TileID
	PendingPath        []TileID
	Reachable          mapset.Set[TileID]
}

func NewTurnState() *TurnState {
	return &TurnState{
		Turn:      FirstTurn,
		Phase:     PhaseNothingSelected,
		Reachable: mapset.New[TileID](),
	}
}

// ClearPending сбрасывает данные незавершённого действия
func (s *TurnState) ClearPending() {
	s.PendingAction = ActionUnknown
	s.PendingDestination = ""
	s.PendingPath = nil
	s.Reachable = mapset.New[TileID]()
}
