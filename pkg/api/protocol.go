package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы ответов сервера
const (
	ResponseUpdate = "UPDATE" // Снимок после команды, меняющей состояние
	ResponseResult = "RESULT" // Ответ на запрос (QUERY_*)
	ResponseError  = "ERROR"  // Команда отклонена
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Содержит полный снимок сессии: граф, сущности и состояние хода.
type ServerResponse struct {
	// Type тип сообщения: UPDATE, RESULT или ERROR.
	Type string `json:"type"`

	// Command команда, на которую отвечаем (пусто для широковещательных обновлений).
	Command string `json:"command,omitempty"`

	// SessionID ID игровой сессии.
	SessionID string `json:"sessionId,omitempty"`

	// Turn текущий номер хода. Начинается с 1.
	Turn int `json:"turn"`

	// Phase состояние машины выбора действия (NOTHING_SELECTED, ENTITY_SELECTED, ...).
	Phase string `json:"phase"`

	// SelectedEntityID ID выбранной сущности, если есть.
	SelectedEntityID string `json:"selectedEntityId,omitempty"`

	// PendingAction и PendingDestination валидны только посреди действия.
	PendingAction      string `json:"pendingAction,omitempty"`
	PendingDestination string `json:"pendingDestination,omitempty"`

	// Map все тайлы графа.
	Map []TileView `json:"map,omitempty"`

	// Entities все сущности сессии.
	Entities []EntityView `json:"entities,omitempty"`

	// Reachable и Path заполняются для CHOOSE_ACTION / PICK_DESTINATION / QUERY_*.
	Reachable []string `json:"reachable,omitempty"`
	Path      []string `json:"path,omitempty"`
	PathCost  int      `json:"pathCost,omitempty"`

	// Error причина отказа (только для Type == ERROR).
	Error *ErrorView `json:"error,omitempty"`

	// Logs новые сообщения с прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`
}

// TileView это DTO для одного тайла графа.
type TileView struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Group string  `json:"group,omitempty"`

	// Cost стоимость входа в тайл.
	Cost int `json:"cost"`

	// Occupied true, если на тайле стоит сущность или препятствие.
	Occupied bool   `json:"occupied"`
	Occupant string `json:"occupant,omitempty"`

	// Highlight подсветка: DEFAULT, HIGHLIGHTED, SELECTED.
	Highlight string `json:"highlight"`

	Neighbors []string `json:"neighbors,omitempty"`
}

// EntityView это DTO для сущности.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // CHARACTER, VEHICLE
	Name string `json:"name"`

	Tile string `json:"tile,omitempty"`

	Speed            int `json:"speed"`
	ActionsPerTurn   int `json:"actionsPerTurn"`
	RemainingActions int `json:"remainingActions"`

	// CanAct true, если кнопки действий должны быть активны.
	CanAct bool `json:"canAct"`

	Selected bool `json:"selected"`

	DriverID  string `json:"driverId,omitempty"`
	VehicleID string `json:"vehicleId,omitempty"`
}

// ErrorView описывает отклонённую команду.
type ErrorView struct {
	// Code один из INVALID_ARGUMENT, NO_PATH, INVALID_STATE, INSUFFICIENT_BUDGET, BAD_REQUEST.
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, MOVE, TURN, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID клиента. Проставляется сервером после handshake.
	Token string `json:"token,omitempty"`

	// Action название команды: SELECT, DESELECT, CHOOSE_ACTION, PICK_DESTINATION,
	// CONFIRM, END_TURN, QUERY_REACHABLE, QUERY_PATH, INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для команды. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// EntityPayload используется для SELECT.
type EntityPayload struct {
	EntityID string `json:"entityId"`
}

// ActionPayload используется для CHOOSE_ACTION.
type ActionPayload struct {
	EntityID string `json:"entityId"`
	Action   string `json:"action"` // MOVE, DRIVE
}

// TilePayload используется для PICK_DESTINATION.
// Хит-тест указателя делает клиент, сюда приходит уже ID тайла.
type TilePayload struct {
	TileID string `json:"tileId"`
}

// ReachablePayload используется для QUERY_REACHABLE.
type ReachablePayload struct {
	Origin string `json:"origin"`
	Budget int    `json:"budget"`
}

// PathPayload используется для QUERY_PATH.
type PathPayload struct {
	Origin string `json:"origin"`
	Goal   string `json:"goal"`
}
