package domain

// EntityID - идентификатор сущности из реестра сессии.
// Пустой ID означает "нет сущности".
type EntityID string

// NilEntityID - аналог nil для ссылок на сущность
const NilEntityID EntityID = ""

func (id EntityID) String() string {
	return string(id)
}

// IsNil возвращает true для пустой ссылки
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}
