package domain

import "fmt"

// EntityRegistry - реестр сущностей сессии.
// Владеет сущностями слой сессии, контроллер хода хранит только ссылки по ID.
type EntityRegistry struct {
	entities map[EntityID]*Entity
	order    []EntityID
}

func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		entities: make(map[EntityID]*Entity),
		order:    make([]EntityID, 0),
	}
}

// Register добавляет сущность в реестр
func (r *EntityRegistry) Register(e *Entity) error {
	if e == nil || e.ID.IsNil() {
		return fmt.Errorf("%w: entity without id", ErrInvalidArgument)
	}
	if _, exists := r.entities[e.ID]; exists {
		return fmt.Errorf("%w: duplicate entity %s", ErrInvalidArgument, e.ID)
	}
	r.entities[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

// Get ищет сущность по ID
func (r *EntityRegistry) Get(id EntityID) *Entity {
	return r.entities[id]
}

// All возвращает сущности в порядке регистрации
func (r *EntityRegistry) All() []*Entity {
	result := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entities[id])
	}
	return result
}

func (r *EntityRegistry) Len() int {
	return len(r.order)
}
