package domain

// Типы сущностей
const (
	EntityKindCharacter = "CHARACTER"
	EntityKindVehicle   = "VEHICLE"
)

// Параметры по умолчанию для новых сущностей
const (
	DefaultActionsPerTurn = 2
	DefaultSpeed          = 1
)

type Entity struct {
	// Идентификация
	ID   EntityID `json:"id"`
	Kind string   `json:"kind"`
	Name string   `json:"name"`

	// Текущий тайл. Пусто - сущность не размещена (или сидит в транспорте).
	Tile TileID `json:"tile,omitempty"`

	// Бюджет движения (максимальная суммарная стоимость пути за одно действие)
	Speed int `json:"speed"`

	ActionsPerTurn   int `json:"actionsPerTurn"`
	RemainingActions int `json:"remainingActions"`

	// Транспорт: кто за рулём
	DriverID EntityID `json:"driverId,omitempty"`
	// Водитель: в каком транспорте сидит
	VehicleID EntityID `json:"vehicleId,omitempty"`
}

// IsVehicle возвращает true для транспорта
func (e *Entity) IsVehicle() bool {
	return e.Kind == EntityKindVehicle
}

// IsPlaced - стоит ли сущность на графе
func (e *Entity) IsPlaced() bool {
	return e.Tile != ""
}

// CanAct - остались ли действия на этот ход
func (e *Entity) CanAct() bool {
	return e.RemainingActions > 0
}

// SpendAction списывает одно действие. Бюджет не уходит ниже нуля.
func (e *Entity) SpendAction() {
	if e.RemainingActions > 0 {
		e.RemainingActions--
	}
}

// RefreshActions восстанавливает бюджет в начале хода
func (e *Entity) RefreshActions() {
	e.RemainingActions = e.ActionsPerTurn
}
