package engine

import (
	"fmt"

	"meatwagon-server/internal/domain"
	"meatwagon-server/internal/systems"
	"meatwagon-server/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Controller - машина состояний хода:
// NothingSelected -> EntitySelected -> ActionChosen -> DestinationPending -> (confirm/cancel).
//
// Любое нарушение предусловий - no-op с диагностикой в логе и типизированной ошибкой.
// Состояние графа и хода при отказе не меняется.
// Controller не потокобезопасен, конкурентный хост сериализует вызовы (см. Session).
type Controller struct {
	graph    *domain.TileGraph
	entities *domain.EntityRegistry
	state    *domain.TurnState

	events []domain.Event
}

func NewController(graph *domain.TileGraph, entities *domain.EntityRegistry) *Controller {
	return &Controller{
		graph:    graph,
		entities: entities,
		state:    domain.NewTurnState(),
		events:   make([]domain.Event, 0),
	}
}

// --- ЗАПРОСЫ ---

func (c *Controller) TurnNumber() int {
	return c.state.Turn
}

func (c *Controller) Phase() domain.Phase {
	return c.state.Phase
}

func (c *Controller) Selected() domain.EntityID {
	return c.state.Selected
}

func (c *Controller) PendingAction() domain.ActionType {
	return c.state.PendingAction
}

func (c *Controller) PendingDestination() domain.TileID {
	return c.state.PendingDestination
}

// PendingPath возвращает копию показанного пути
func (c *Controller) PendingPath() []domain.TileID {
	return append([]domain.TileID(nil), c.state.PendingPath...)
}

// Reachable возвращает подсвеченный диапазон в порядке объявления тайлов
func (c *Controller) Reachable() []domain.TileID {
	return systems.SortedTiles(c.graph, c.state.Reachable)
}

// RemainingActions возвращает остаток действий сущности на этот ход
func (c *Controller) RemainingActions(id domain.EntityID) (int, error) {
	e := c.entities.Get(id)
	if e == nil {
		return 0, fmt.Errorf("%w: unknown entity %q", domain.ErrInvalidArgument, id)
	}
	return e.RemainingActions, nil
}

// DrainEvents забирает накопленные события
func (c *Controller) DrainEvents() []domain.Event {
	events := c.events
	c.events = make([]domain.Event, 0)
	return events
}

// --- ПЕРЕХОДЫ ---

// Select выбирает сущность. Допустимо только из NothingSelected: одновременно выбрана максимум одна.
func (c *Controller) Select(id domain.EntityID) error {
	if c.state.Phase != domain.PhaseNothingSelected {
		return c.reject("select", fmt.Errorf("%w: %s is already selected", domain.ErrInvalidStateTransition, c.state.Selected))
	}
	e := c.entities.Get(id)
	if e == nil {
		return c.reject("select", fmt.Errorf("%w: unknown entity %q", domain.ErrInvalidArgument, id))
	}
	if !e.IsPlaced() {
		return c.reject("select", fmt.Errorf("%w: entity %s is not on the graph", domain.ErrInvalidArgument, id))
	}

	c.state.Selected = id
	c.state.Phase = domain.PhaseEntitySelected
	c.emit(domain.EventSelected, id, e.Tile, fmt.Sprintf("%s selected", e.Name))
	return nil
}

// Deselect допустим из любого состояния: сбрасывает выбор, незавершённое действие и подсветку.
func (c *Controller) Deselect() {
	selected := c.state.Selected

	c.state.Selected = domain.NilEntityID
	c.state.ClearPending()
	c.state.Phase = domain.PhaseNothingSelected
	c.graph.ResetHighlights()

	if !selected.IsNil() {
		c.emit(domain.EventDeselected, selected, "", "selection cleared")
	}
}

// ChooseAction начинает действие выбранной сущности и возвращает диапазон движения.
func (c *Controller) ChooseAction(id domain.EntityID, action domain.ActionType) (mapset.Set[domain.TileID], error) {
	empty := mapset.New[domain.TileID]()

	if action == domain.ActionUnknown {
		return empty, c.reject("choose_action", fmt.Errorf("%w: unknown action", domain.ErrInvalidArgument))
	}
	if c.state.Phase != domain.PhaseEntitySelected {
		return empty, c.reject("choose_action", fmt.Errorf("%w: cannot choose an action in %s", domain.ErrInvalidStateTransition, c.state.Phase))
	}
	if id != c.state.Selected {
		return empty, c.reject("choose_action", fmt.Errorf("%w: entity %q is not selected", domain.ErrInvalidArgument, id))
	}
	e := c.entities.Get(id)
	if e == nil {
		return empty, c.reject("choose_action", fmt.Errorf("%w: unknown entity %q", domain.ErrInvalidArgument, id))
	}

	if err := c.checkAction(e, action); err != nil {
		return empty, c.reject("choose_action", err)
	}

	reachable, err := systems.ReachableSet(c.graph, e.Tile, e.Speed)
	if err != nil {
		return empty, c.reject("choose_action", err)
	}

	c.state.PendingAction = action
	c.state.Reachable = reachable
	c.state.Phase = domain.PhaseActionChosen
	c.highlightRange()

	c.emit(domain.EventActionChosen, id, e.Tile, fmt.Sprintf("%s prepares %s (%d tiles in range)", e.Name, action, reachable.Size()))
	return reachable, nil
}

// checkAction проверяет тип действия и бюджеты всех участников
func (c *Controller) checkAction(e *domain.Entity, action domain.ActionType) error {
	switch action {
	case domain.ActionMove:
		if e.IsVehicle() {
			return fmt.Errorf("%w: vehicle %s moves with DRIVE", domain.ErrInvalidArgument, e.ID)
		}
	case domain.ActionDrive:
		if !e.IsVehicle() {
			return fmt.Errorf("%w: %s is not a vehicle", domain.ErrInvalidArgument, e.ID)
		}
	default:
		return fmt.Errorf("%w: unknown action %s", domain.ErrInvalidArgument, action)
	}

	if !e.CanAct() {
		return fmt.Errorf("%w: %s has no actions left this turn", domain.ErrInsufficientBudget, e.ID)
	}

	if action == domain.ActionDrive {
		driver := c.entities.Get(e.DriverID)
		if driver == nil {
			return fmt.Errorf("%w: vehicle %s has no driver aboard", domain.ErrInvalidArgument, e.ID)
		}
		if !driver.CanAct() {
			return fmt.Errorf("%w: driver %s has no actions left this turn", domain.ErrInsufficientBudget, driver.ID)
		}
	}
	return nil
}

// PickDestination выбирает тайл назначения внутри диапазона и строит путь для показа.
func (c *Controller) PickDestination(tile domain.TileID) ([]domain.TileID, error) {
	if c.state.Phase != domain.PhaseActionChosen && c.state.Phase != domain.PhaseDestinationPending {
		return nil, c.reject("pick_destination", fmt.Errorf("%w: no action in progress (%s)", domain.ErrInvalidStateTransition, c.state.Phase))
	}
	e := c.entities.Get(c.state.Selected)
	if e == nil {
		return nil, c.reject("pick_destination", fmt.Errorf("%w: selected entity %q vanished", domain.ErrInvalidArgument, c.state.Selected))
	}
	if !c.graph.Has(tile) {
		return nil, c.reject("pick_destination", fmt.Errorf("%w: unknown tile %q", domain.ErrInvalidArgument, tile))
	}
	if tile == e.Tile {
		return nil, c.reject("pick_destination", fmt.Errorf("%w: %s already stands on %s", domain.ErrInvalidArgument, e.ID, tile))
	}
	if !c.state.Reachable.Has(tile) {
		return nil, c.reject("pick_destination", fmt.Errorf("%w: %s is outside the movement range of %s", domain.ErrInvalidArgument, tile, e.ID))
	}

	path, err := systems.ComputePath(c.graph, e.Tile, tile)
	if err != nil {
		return nil, c.reject("pick_destination", err)
	}

	c.state.PendingDestination = tile
	c.state.PendingPath = path
	c.state.Phase = domain.PhaseDestinationPending

	c.highlightRange()
	for _, id := range path {
		c.graph.SetHighlight(id, domain.HighlightSelected)
	}

	c.emit(domain.EventDestinationPicked, e.ID, tile, fmt.Sprintf("%s plots a path to %s (cost %d)", e.Name, tile, systems.PathCost(c.graph, path)))
	return append([]domain.TileID(nil), path...), nil
}

// Confirm завершает действие: переносит сущность, списывает действия участников.
func (c *Controller) Confirm() error {
	if c.state.Phase != domain.PhaseDestinationPending {
		return c.reject("confirm", fmt.Errorf("%w: nothing to confirm (%s)", domain.ErrInvalidStateTransition, c.state.Phase))
	}
	e := c.entities.Get(c.state.Selected)
	if e == nil {
		return c.reject("confirm", fmt.Errorf("%w: selected entity %q vanished", domain.ErrInvalidArgument, c.state.Selected))
	}
	// Бюджеты участников проверяем ещё раз перед списанием
	if err := c.checkAction(e, c.state.PendingAction); err != nil {
		return c.reject("confirm", err)
	}

	from, to := e.Tile, c.state.PendingDestination

	c.graph.Release(from, e.ID)
	if err := c.graph.Claim(to, e.ID); err != nil {
		// Возвращаем занятость на место
		_ = c.graph.Claim(from, e.ID)
		return c.reject("confirm", err)
	}
	e.Tile = to

	e.SpendAction()
	if c.state.PendingAction == domain.ActionDrive {
		if driver := c.entities.Get(e.DriverID); driver != nil {
			driver.SpendAction()
		}
	}

	c.emit(domain.EventMoved, e.ID, to, fmt.Sprintf("%s moves %s -> %s", e.Name, from, to))

	c.state.ClearPending()
	c.graph.ResetHighlights()

	if e.CanAct() {
		c.state.Phase = domain.PhaseEntitySelected
	} else {
		c.Deselect()
	}
	return nil
}

// EndTurn допустим из любого состояния: сбрасывает выбор, восстанавливает бюджеты, увеличивает счётчик хода.
func (c *Controller) EndTurn() {
	c.Deselect()

	for _, e := range c.entities.All() {
		e.RefreshActions()
	}
	c.state.Turn++

	c.emit(domain.EventTurnEnded, domain.NilEntityID, "", fmt.Sprintf("turn %d begins", c.state.Turn))
}

// --- ВНУТРЕННЕЕ ---

// highlightRange подсвечивает текущий диапазон движения поверх сброшенной карты
func (c *Controller) highlightRange() {
	c.graph.ResetHighlights()
	c.state.Reachable.Each(func(id domain.TileID) {
		c.graph.SetHighlight(id, domain.HighlightReachable)
	})
}

func (c *Controller) emit(t domain.EventType, entity domain.EntityID, tile domain.TileID, text string) {
	c.events = append(c.events, domain.Event{Type: t, Entity: entity, Tile: tile, Text: text})

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_controller",
		"event":     t.String(),
		"entity":    entity,
		"tile":      tile,
		"turn":      c.state.Turn,
	}).Debug(text)
}

// reject логирует отказ и возвращает ошибку как есть
func (c *Controller) reject(op string, err error) error {
	c.events = append(c.events, domain.Event{Type: domain.EventRejected, Entity: c.state.Selected, Text: err.Error()})

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_controller",
		"op":        op,
		"phase":     c.state.Phase.String(),
		"selected":  c.state.Selected,
		"turn":      c.state.Turn,
	}).WithError(err).Warn("Command rejected")
	return err
}
