package domain

import "math"

// TileID - идентификатор тайла. Сравнивается лексикографически (детерминированный tie-break).
type TileID string

func (id TileID) String() string {
	return string(id)
}

// InfiniteDistance - "бесконечное" расстояние для алгоритма Дейкстры.
// Недостижимые тайлы сохраняют это значение после прогона.
const InfiniteDistance = math.MaxInt32

// HighlightState - состояние подсветки тайла для слоя отображения
type HighlightState uint8

const (
	HighlightDefault HighlightState = iota
	HighlightReachable
	HighlightSelected
)

var highlightToString = map[HighlightState]string{
	HighlightDefault:   "DEFAULT",
	HighlightReachable: "HIGHLIGHTED",
	HighlightSelected:  "SELECTED",
}

func (h HighlightState) String() string {
	if val, ok := highlightToString[h]; ok {
		return val
	}
	return "UNKNOWN"
}

// Tile - атомарная единица навигационного графа.
type Tile struct {
	ID    TileID
	Pos   Vec2
	Group string // Тег группы для фильтра соединений (пусто - без группы)

	// Список соседей в порядке объявления. Заполняется один раз при сборке графа.
	Neighbors []TileID

	// Стоимость ВХОДА в этот тайл
	TraversalCost int

	// Занятость. Пишет только TileGraph.
	Occupied bool
	occupant EntityID

	// Рабочее расстояние последнего прогона поиска
	WorkingDistance int

	Highlight HighlightState
}

// Occupant возвращает сущность, стоящую на тайле (пустой ID, если тайл свободен)
func (t *Tile) Occupant() EntityID {
	return t.occupant
}

// HasNeighbor проверяет наличие ребра t -> id
func (t *Tile) HasNeighbor(id TileID) bool {
	for _, n := range t.Neighbors {
		if n == id {
			return true
		}
	}
	return false
}
