package domain

import "fmt"

// IsOccupied проверяет, стоит ли кто-то на тайле
func (g *TileGraph) IsOccupied(id TileID) (bool, error) {
	t, ok := g.tiles[id]
	if !ok {
		return false, fmt.Errorf("%w: unknown tile %s", ErrInvalidArgument, id)
	}
	return t.Occupied, nil
}

// Occupant возвращает сущность на тайле
func (g *TileGraph) Occupant(id TileID) EntityID {
	if t, ok := g.tiles[id]; ok {
		return t.occupant
	}
	return NilEntityID
}

// Claim занимает тайл сущностью. На тайле может стоять не более одной сущности.
func (g *TileGraph) Claim(id TileID, entity EntityID) error {
	t, ok := g.tiles[id]
	if !ok {
		return fmt.Errorf("%w: unknown tile %s", ErrInvalidArgument, id)
	}
	if entity.IsNil() {
		return fmt.Errorf("%w: empty entity claiming %s", ErrInvalidArgument, id)
	}
	if t.Occupied && t.occupant != entity {
		return fmt.Errorf("%w: tile %s is occupied by %q", ErrInvalidArgument, id, t.occupant)
	}
	t.Occupied = true
	t.occupant = entity
	return nil
}

// Release освобождает тайл. Чужую занятость не трогаем.
func (g *TileGraph) Release(id TileID, entity EntityID) {
	t, ok := g.tiles[id]
	if !ok || entity.IsNil() || t.occupant != entity {
		return
	}
	t.Occupied = false
	t.occupant = NilEntityID
}

// Obstruct помечает тайл занятым статическим препятствием (без сущности)
func (g *TileGraph) Obstruct(id TileID) error {
	t, ok := g.tiles[id]
	if !ok {
		return fmt.Errorf("%w: unknown tile %s", ErrInvalidArgument, id)
	}
	if t.Occupied {
		return fmt.Errorf("%w: tile %s is already occupied", ErrInvalidArgument, id)
	}
	t.Occupied = true
	return nil
}

// SetHighlight меняет подсветку тайла
func (g *TileGraph) SetHighlight(id TileID, h HighlightState) {
	if t, ok := g.tiles[id]; ok {
		t.Highlight = h
	}
}

// ResetHighlights возвращает все тайлы в состояние по умолчанию
func (g *TileGraph) ResetHighlights() {
	for _, t := range g.tiles {
		t.Highlight = HighlightDefault
	}
}
