package engine

import (
	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/api"
)

// buildState создает "снимок" сессии. Вызывается под s.mu.
func (s *Session) buildState(respType, command string) api.ServerResponse {
	c := s.Controller

	// 1. Формирование карты (Map DTO), в порядке объявления тайлов
	tiles := s.Graph.Tiles()
	mapDTO := make([]api.TileView, 0, len(tiles))
	for _, t := range tiles {
		mapDTO = append(mapDTO, toTileView(t))
	}

	// 2. Формирование списка сущностей (Entities DTO)
	all := s.Entities.All()
	viewEntities := make([]api.EntityView, 0, len(all))
	for _, e := range all {
		viewEntities = append(viewEntities, toEntityView(e, c.Selected()))
	}

	// Копия логов
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	resp := api.ServerResponse{
		Type:      respType,
		Command:   command,
		SessionID: s.ID,
		Turn:      c.TurnNumber(),
		Phase:     c.Phase().String(),
		Map:       mapDTO,
		Entities:  viewEntities,
		Logs:      logsCopy,
	}

	if !c.Selected().IsNil() {
		resp.SelectedEntityID = c.Selected().String()
	}
	if c.PendingAction() != domain.ActionUnknown {
		resp.PendingAction = c.PendingAction().String()
	}
	if c.PendingDestination() != "" {
		resp.PendingDestination = c.PendingDestination().String()
	}

	return resp
}

// toTileView конвертирует тайл графа в DTO для отправки клиенту.
func toTileView(t *domain.Tile) api.TileView {
	view := api.TileView{
		ID:        t.ID.String(),
		X:         t.Pos.X,
		Y:         t.Pos.Y,
		Group:     t.Group,
		Cost:      t.TraversalCost,
		Occupied:  t.Occupied,
		Highlight: t.Highlight.String(),
	}
	if occ := t.Occupant(); !occ.IsNil() {
		view.Occupant = occ.String()
	}
	if len(t.Neighbors) > 0 {
		view.Neighbors = make([]string, len(t.Neighbors))
		for i, n := range t.Neighbors {
			view.Neighbors[i] = n.String()
		}
	}
	return view
}

func toEntityView(e *domain.Entity, selected domain.EntityID) api.EntityView {
	return api.EntityView{
		ID:               e.ID.String(),
		Kind:             e.Kind,
		Name:             e.Name,
		Tile:             e.Tile.String(),
		Speed:            e.Speed,
		ActionsPerTurn:   e.ActionsPerTurn,
		RemainingActions: e.RemainingActions,
		CanAct:           e.CanAct(),
		Selected:         !selected.IsNil() && e.ID == selected,
		DriverID:         e.DriverID.String(),
		VehicleID:        e.VehicleID.String(),
	}
}
