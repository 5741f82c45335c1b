package actions

import (
	"fmt"

	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/engine/handlers"
	"meatwagon-server/pkg/api"
)

func HandleSelect(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	id := domain.EntityID(p.EntityID)
	if err := ctx.Controller.Select(id); err != nil {
		return handlers.EmptyResult(), err
	}

	name := p.EntityID
	if e := ctx.Entities.Get(id); e != nil {
		name = e.Name
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s выбран.", name),
		MsgType: "INFO",
		Mutated: true,
	}, nil
}

func HandleDeselect(ctx handlers.Context) (handlers.Result, error) {
	ctx.Controller.Deselect()
	return handlers.Result{Mutated: true}, nil
}
