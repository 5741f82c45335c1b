package engine

import (
	"errors"
	"fmt"
	"sync"

	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/engine/handlers"
	"meatwagon-server/internal/engine/handlers/actions"
	"meatwagon-server/internal/network"
	"meatwagon-server/internal/systems"
	"meatwagon-server/pkg/api"
	"meatwagon-server/pkg/logger"
	"meatwagon-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Session представляет собой одну запущенную тактическую сессию: граф, сущности и машину хода.
// Все мутации графа и запросы к нему идут под одним мьютексом.
type Session struct {
	mu sync.Mutex

	ID string

	Graph      *domain.TileGraph
	Entities   *domain.EntityRegistry
	Controller *Controller

	// Hub рассылает снимки остальным клиентам
	Hub *network.Broadcaster

	Logs    []api.LogEntry // Логи с прошлой рассылки
	maxLogs int

	handlers map[domain.CommandType]handlers.HandlerFunc
}

func NewSession(cfg Config, graph *domain.TileGraph, entities *domain.EntityRegistry) *Session {
	maxLogs := cfg.MaxLogs
	if maxLogs <= 0 {
		maxLogs = NewConfig().MaxLogs
	}

	s := &Session{
		ID:         utils.GenerateID(),
		Graph:      graph,
		Entities:   entities,
		Controller: NewController(graph, entities),
		Hub:        network.NewBroadcaster(),
		Logs:       []api.LogEntry{},
		maxLogs:    maxLogs,
		handlers:   make(map[domain.CommandType]handlers.HandlerFunc),
	}

	s.registerHandlers()

	logger.Log.WithFields(logrus.Fields{
		"session":  s.ID,
		"tiles":    graph.Len(),
		"entities": entities.Len(),
	}).Info("Session created")
	return s
}

func (s *Session) registerHandlers() {
	s.handlers[domain.CommandInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.CommandSelect] = handlers.WithPayload(actions.HandleSelect)
	s.handlers[domain.CommandDeselect] = handlers.WithEmptyPayload(actions.HandleDeselect)
	s.handlers[domain.CommandChooseAction] = handlers.WithPayload(actions.HandleChooseAction)
	s.handlers[domain.CommandPickDestination] = handlers.WithPayload(actions.HandlePickDestination)
	s.handlers[domain.CommandConfirm] = handlers.WithEmptyPayload(actions.HandleConfirm)
	s.handlers[domain.CommandEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	s.handlers[domain.CommandQueryReachable] = handlers.WithPayload(actions.HandleQueryReachable)
	s.handlers[domain.CommandQueryPath] = handlers.WithPayload(actions.HandleQueryPath)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket) и возвращает ответ отправителю.
// Команды, меняющие состояние, дополнительно рассылаются остальным подписчикам Hub.
func (s *Session) ProcessCommand(externalCmd api.ClientCommand) api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmdType := domain.ParseCommand(externalCmd.Action)
	if cmdType == domain.CommandUnknown {
		err := fmt.Errorf("%w: unknown command %q", handlers.ErrBadRequest, externalCmd.Action)
		return s.errorResponse(externalCmd.Action, err)
	}

	cmd := domain.InternalCommand{
		Command: cmdType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}

	return s.executeCommand(cmd)
}

// executeCommand выполняет хендлер и пишет логи. Вызывается под s.mu.
func (s *Session) executeCommand(cmd domain.InternalCommand) api.ServerResponse {
	handler, ok := s.handlers[cmd.Command]
	if !ok {
		return s.errorResponse(cmd.Command.String(), fmt.Errorf("%w: no handler for %s", handlers.ErrBadRequest, cmd.Command))
	}

	ctx := handlers.Context{
		Controller: s.Controller,
		Graph:      s.Graph,
		Entities:   s.Entities,
	}

	result, err := handler(ctx, cmd.Payload)
	s.recordEvents(s.Controller.DrainEvents())

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}

	if err != nil {
		return s.errorResponse(cmd.Command.String(), err)
	}

	respType := api.ResponseUpdate
	if cmd.Command == domain.CommandQueryReachable || cmd.Command == domain.CommandQueryPath {
		respType = api.ResponseResult
	}

	resp := s.buildState(respType, cmd.Command.String())
	resp.Reachable = tileIDs(result.Reachable)
	resp.Path = tileIDs(result.Path)
	resp.PathCost = result.PathCost

	if result.Mutated {
		s.Hub.BroadcastExcept(cmd.Token, s.buildState(api.ResponseUpdate, ""))
	}
	s.Logs = []api.LogEntry{}

	return resp
}

// errorResponse собирает ответ об отказе. Вызывается под s.mu.
func (s *Session) errorResponse(command string, err error) api.ServerResponse {
	code := domain.ErrorCode(err)
	if errors.Is(err, handlers.ErrBadRequest) {
		code = "BAD_REQUEST"
	}

	logger.Log.WithFields(logrus.Fields{
		"session": s.ID,
		"command": command,
		"code":    code,
	}).WithError(err).Debug("Command failed")

	resp := s.buildState(api.ResponseError, command)
	resp.Error = &api.ErrorView{Code: code, Message: err.Error()}
	s.Logs = []api.LogEntry{}
	return resp
}

// Snapshot возвращает полный снимок сессии, не трогая логи
func (s *Session) Snapshot() api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildState(api.ResponseUpdate, "")
}

// --- ПРЯМОЙ API (для встраивания и debug) ---

// ComputeReachable возвращает тайлы, достижимые из origin за budget, в порядке объявления
func (s *Session) ComputeReachable(origin domain.TileID, budget int) ([]domain.TileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := systems.ReachableSet(s.Graph, origin, budget)
	if err != nil {
		return nil, err
	}
	return systems.SortedTiles(s.Graph, set), nil
}

func (s *Session) ComputePath(origin, goal domain.TileID) ([]domain.TileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return systems.ComputePath(s.Graph, origin, goal)
}

func (s *Session) Select(id domain.EntityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()
	return s.Controller.Select(id)
}

func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()
	s.Controller.Deselect()
}

func (s *Session) ChooseAction(id domain.EntityID, action domain.ActionType) ([]domain.TileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()

	set, err := s.Controller.ChooseAction(id, action)
	if err != nil {
		return nil, err
	}
	return systems.SortedTiles(s.Graph, set), nil
}

func (s *Session) PickDestination(tile domain.TileID) ([]domain.TileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()
	return s.Controller.PickDestination(tile)
}

func (s *Session) Confirm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()
	return s.Controller.Confirm()
}

func (s *Session) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.drain()
	s.Controller.EndTurn()
}

func (s *Session) TurnNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Controller.TurnNumber()
}

func (s *Session) RemainingActions(id domain.EntityID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Controller.RemainingActions(id)
}

func (s *Session) IsOccupied(tile domain.TileID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Graph.IsOccupied(tile)
}

// drain переносит события контроллера в лог сессии. Вызывается под s.mu.
func (s *Session) drain() {
	s.recordEvents(s.Controller.DrainEvents())
}

func tileIDs(ids []domain.TileID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
