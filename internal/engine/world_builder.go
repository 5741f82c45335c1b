package engine

import (
	"fmt"
	"strings"

	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/systems"
	"meatwagon-server/pkg/logger"
	"meatwagon-server/pkg/scenario"

	"github.com/sirupsen/logrus"
)

// BuildWorld собирает граф тайлов и реестр сущностей из сценария.
// Связи строятся один раз здесь, дальше список смежности не меняется.
func BuildWorld(s *scenario.Scenario) (*domain.TileGraph, *domain.EntityRegistry, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("%w: nil scenario", domain.ErrInvalidArgument)
	}

	graph := domain.NewTileGraph()

	// 1. Тайлы
	for _, def := range s.Tiles {
		cost := def.Cost
		if cost == 0 {
			cost = 1
		}
		if _, err := graph.AddTile(domain.TileID(def.ID), domain.Vec2{X: def.X, Y: def.Y}, def.Group, cost); err != nil {
			return nil, nil, err
		}
	}

	// 2. Связи: автоматические по радиусу, потом ручные
	for _, rule := range s.Connect {
		if _, err := systems.Connect(graph, rule.Radius, rule.Group); err != nil {
			return nil, nil, err
		}
	}
	for _, edge := range s.Edges {
		if err := systems.ConnectPair(graph, domain.TileID(edge.From), domain.TileID(edge.To)); err != nil {
			return nil, nil, err
		}
	}

	// 3. Препятствия
	for _, def := range s.Tiles {
		if def.Blocked {
			if err := graph.Obstruct(domain.TileID(def.ID)); err != nil {
				return nil, nil, err
			}
		}
	}

	// 4. Сущности
	registry := domain.NewEntityRegistry()
	for _, def := range s.Entities {
		e := newEntity(def)
		if err := registry.Register(e); err != nil {
			return nil, nil, err
		}
		if e.IsPlaced() {
			if err := graph.Claim(e.Tile, e.ID); err != nil {
				return nil, nil, err
			}
		}
	}

	// 5. Водители садятся в транспорт
	for _, e := range registry.All() {
		if e.DriverID.IsNil() {
			continue
		}
		if !e.IsVehicle() {
			return nil, nil, fmt.Errorf("%w: %s is not a vehicle but names driver %s", domain.ErrInvalidArgument, e.ID, e.DriverID)
		}
		driver := registry.Get(e.DriverID)
		if driver == nil {
			return nil, nil, fmt.Errorf("%w: vehicle %s has unknown driver %s", domain.ErrInvalidArgument, e.ID, e.DriverID)
		}
		if driver.IsVehicle() {
			return nil, nil, fmt.Errorf("%w: driver %s of %s is a vehicle", domain.ErrInvalidArgument, driver.ID, e.ID)
		}
		if !driver.VehicleID.IsNil() {
			return nil, nil, fmt.Errorf("%w: driver %s already drives %s", domain.ErrInvalidArgument, driver.ID, driver.VehicleID)
		}
		driver.VehicleID = e.ID
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario": s.Name,
		"tiles":    graph.Len(),
		"entities": registry.Len(),
	}).Info("World built")

	return graph, registry, nil
}

func newEntity(def scenario.EntityDef) *domain.Entity {
	kind := strings.ToUpper(def.Kind)
	if kind == "" {
		kind = domain.EntityKindCharacter
	}
	name := def.Name
	if name == "" {
		name = def.ID
	}
	speed := def.Speed
	if speed == 0 {
		speed = domain.DefaultSpeed
	}
	actions := def.ActionsPerTurn
	if actions == 0 {
		actions = domain.DefaultActionsPerTurn
	}

	e := &domain.Entity{
		ID:             domain.EntityID(def.ID),
		Kind:           kind,
		Name:           name,
		Tile:           domain.TileID(def.Tile),
		Speed:          speed,
		ActionsPerTurn: actions,
		DriverID:       domain.EntityID(def.Driver),
	}
	e.RefreshActions()
	return e
}
