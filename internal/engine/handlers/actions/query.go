package actions

import (
	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/engine/handlers"
	"meatwagon-server/internal/systems"
	"meatwagon-server/pkg/api"
)

// Запросы только читают состояние хода. Рабочие расстояния тайлов при этом перезаписываются.

func HandleQueryReachable(ctx handlers.Context, p api.ReachablePayload) (handlers.Result, error) {
	reachable, err := systems.ReachableSet(ctx.Graph, domain.TileID(p.Origin), p.Budget)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Reachable: systems.SortedTiles(ctx.Graph, reachable)}, nil
}

func HandleQueryPath(ctx handlers.Context, p api.PathPayload) (handlers.Result, error) {
	path, err := systems.ComputePath(ctx.Graph, domain.TileID(p.Origin), domain.TileID(p.Goal))
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Path: path, PathCost: systems.PathCost(ctx.Graph, path)}, nil
}
