package actions

import (
	"meatwagon-server/internal/engine/handlers"
)

// HandleEndTurn завершает ход для всех сущностей сразу
func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	ctx.Controller.EndTurn()

	return handlers.Result{
		MsgType: "TURN",
		Mutated: true,
	}, nil
}
