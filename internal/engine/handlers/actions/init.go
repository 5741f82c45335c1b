package actions

import "meatwagon-server/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Connected to Meatwagon tactics session.",
		MsgType: "INFO",
	}, nil
}
