package scenario

import "fmt"

// GridBuilder предоставляет fluent API для прямоугольных сценариев
type GridBuilder struct {
	name     string
	width    int
	height   int
	costs    map[string]int
	blocked  map[string]bool
	radius   float64
	entities []EntityDef
}

// NewGrid создает builder сетки width x height.
// Тайлы получают ID вида "x,y".
func NewGrid(width, height int) *GridBuilder {
	return &GridBuilder{
		name:     fmt.Sprintf("grid_%dx%d", width, height),
		width:    width,
		height:   height,
		costs:    make(map[string]int),
		blocked:  make(map[string]bool),
		radius:   1.0,
		entities: make([]EntityDef, 0),
	}
}

// GridTileID возвращает ID тайла сетки
func GridTileID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// WithName задает имя сценария
func (b *GridBuilder) WithName(name string) *GridBuilder {
	b.name = name
	return b
}

// WithDiagonals включает диагональные связи
func (b *GridBuilder) WithDiagonals() *GridBuilder {
	b.radius = 1.5
	return b
}

// WithCost задает стоимость входа в клетку
func (b *GridBuilder) WithCost(x, y, cost int) *GridBuilder {
	b.costs[GridTileID(x, y)] = cost
	return b
}

// Block ставит статическое препятствие
func (b *GridBuilder) Block(x, y int) *GridBuilder {
	b.blocked[GridTileID(x, y)] = true
	return b
}

// SpawnCharacter размещает персонажа
func (b *GridBuilder) SpawnCharacter(id string, x, y, speed int) *GridBuilder {
	b.entities = append(b.entities, EntityDef{
		ID:    id,
		Name:  id,
		Kind:  "CHARACTER",
		Tile:  GridTileID(x, y),
		Speed: speed,
	})
	return b
}

// SpawnVehicle размещает транспорт вместе с водителем (водитель не занимает клетку)
func (b *GridBuilder) SpawnVehicle(id, driver string, x, y, speed int) *GridBuilder {
	b.entities = append(b.entities,
		EntityDef{ID: driver, Name: driver, Kind: "CHARACTER"},
		EntityDef{ID: id, Name: id, Kind: "VEHICLE", Tile: GridTileID(x, y), Speed: speed, Driver: driver},
	)
	return b
}

// Build собирает и валидирует сценарий
func (b *GridBuilder) Build() (*Scenario, error) {
	s := &Scenario{
		Name:     b.name,
		Connect:  []ConnectDef{{Radius: b.radius}},
		Tiles:    make([]TileDef, 0, b.width*b.height),
		Entities: b.entities,
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			id := GridTileID(x, y)
			s.Tiles = append(s.Tiles, TileDef{
				ID:      id,
				X:       float64(x),
				Y:       float64(y),
				Cost:    b.costs[id],
				Blocked: b.blocked[id],
			})
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
