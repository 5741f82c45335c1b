package actions

import (
	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/engine/handlers"
	"meatwagon-server/internal/systems"
	"meatwagon-server/pkg/api"
)

func HandleChooseAction(ctx handlers.Context, p api.ActionPayload) (handlers.Result, error) {
	// Неизвестное действие отклоняет контроллер, чтобы отказ попал в лог
	reachable, err := ctx.Controller.ChooseAction(domain.EntityID(p.EntityID), domain.ParseAction(p.Action))
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Mutated:   true,
		Reachable: systems.SortedTiles(ctx.Graph, reachable),
	}, nil
}

func HandlePickDestination(ctx handlers.Context, p api.TilePayload) (handlers.Result, error) {
	path, err := ctx.Controller.PickDestination(domain.TileID(p.TileID))
	if err != nil {
		return handlers.EmptyResult(), err
	}

	return handlers.Result{
		Mutated:  true,
		Path:     path,
		PathCost: systems.PathCost(ctx.Graph, path),
	}, nil
}

func HandleConfirm(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Controller.Confirm(); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{Mutated: true, MsgType: "MOVE"}, nil
}
