package domain

import "fmt"

// AddTile регистрирует новый тайл в графе
func (g *TileGraph) AddTile(id TileID, pos Vec2, group string, cost int) (*Tile, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty tile id", ErrInvalidArgument)
	}
	if cost <= 0 {
		return nil, fmt.Errorf("%w: tile %s has non-positive traversal cost %d", ErrInvalidArgument, id, cost)
	}
	if _, exists := g.tiles[id]; exists {
		return nil, fmt.Errorf("%w: duplicate tile %s", ErrInvalidArgument, id)
	}

	t := &Tile{
		ID:              id,
		Pos:             pos,
		Group:           group,
		Neighbors:       make([]TileID, 0),
		TraversalCost:   cost,
		WorkingDistance: InfiniteDistance,
	}
	g.tiles[id] = t
	g.order = append(g.order, id)
	return t, nil
}

// Tile ищет тайл по ID (nil, если тайл не из этого графа)
func (g *TileGraph) Tile(id TileID) *Tile {
	return g.tiles[id]
}

// Has проверяет принадлежность тайла графу
func (g *TileGraph) Has(id TileID) bool {
	_, ok := g.tiles[id]
	return ok
}

// Tiles возвращает тайлы в порядке объявления
func (g *TileGraph) Tiles() []*Tile {
	result := make([]*Tile, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.tiles[id])
	}
	return result
}

func (g *TileGraph) Len() int {
	return len(g.order)
}

// Neighbors возвращает список смежности тайла
func (g *TileGraph) Neighbors(id TileID) []TileID {
	t, ok := g.tiles[id]
	if !ok {
		return nil
	}
	return t.Neighbors
}

// AddEdge добавляет направленное ребро from -> to.
// Повторный вызов дублирует ребро: граф собирается один раз при старте.
func (g *TileGraph) AddEdge(from, to TileID) error {
	src, ok := g.tiles[from]
	if !ok {
		return fmt.Errorf("%w: unknown tile %s", ErrInvalidArgument, from)
	}
	if _, ok := g.tiles[to]; !ok {
		return fmt.Errorf("%w: unknown tile %s", ErrInvalidArgument, to)
	}
	if from == to {
		return fmt.Errorf("%w: self-edge on %s", ErrInvalidArgument, from)
	}
	src.Neighbors = append(src.Neighbors, to)
	return nil
}

// SetWorkingDistance пишет рабочее расстояние поиска
func (g *TileGraph) SetWorkingDistance(id TileID, dist int) {
	if t, ok := g.tiles[id]; ok {
		t.WorkingDistance = dist
	}
}

// ResetWorkingDistances сбрасывает расстояния в "бесконечность" перед новым прогоном
func (g *TileGraph) ResetWorkingDistances() {
	for _, t := range g.tiles {
		t.WorkingDistance = InfiniteDistance
	}
}
