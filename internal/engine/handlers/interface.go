package handlers

import (
	"encoding/json"

	"meatwagon-server/internal/domain"

	"github.com/zyedidia/generic/mapset"
)

// TurnController описывает машину состояний хода.
// engine.Controller неявно реализует этот интерфейс.
type TurnController interface {
	Select(id domain.EntityID) error
	Deselect()
	ChooseAction(id domain.EntityID, action domain.ActionType) (mapset.Set[domain.TileID], error)
	PickDestination(tile domain.TileID) ([]domain.TileID, error)
	Confirm() error
	EndTurn()
}

// Context передает хендлеру состояние сессии.
// Хост держит блокировку сессии, пока хендлер работает.
type Context struct {
	Controller TurnController
	Graph      *domain.TileGraph
	Entities   *domain.EntityRegistry
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, MOVE, TURN)

	// Mutated - команда изменила состояние, нужно разослать снимок
	Mutated bool

	Reachable []domain.TileID
	Path      []domain.TileID
	PathCost  int
}

// HandlerFunc - это контракт для любой команды (SELECT, CONFIRM, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
