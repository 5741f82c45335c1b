package domain

import "errors"

// Таксономия ошибок ядра. Все ошибки локальные и восстановимые:
// команду отклоняем, состояние графа и хода не трогаем.
// На месте вызова оборачиваем через fmt.Errorf("%w: ...").
var (
	// ErrInvalidArgument - пустая/чужая ссылка на тайл или сущность, origin == goal
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoPathExists - цель недостижима при текущей занятости/связности
	ErrNoPathExists = errors.New("no path exists")

	// ErrInvalidStateTransition - команда недопустима в текущем состоянии
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrInsufficientBudget - у сущности (или участника) не осталось действий
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// ErrorCode возвращает код ошибки для клиента
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, ErrNoPathExists):
		return "NO_PATH"
	case errors.Is(err, ErrInvalidStateTransition):
		return "INVALID_STATE"
	case errors.Is(err, ErrInsufficientBudget):
		return "INSUFFICIENT_BUDGET"
	default:
		return "INTERNAL"
	}
}
