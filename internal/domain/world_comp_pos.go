package domain

import "math"

// Vec2 - позиция тайла в пространстве сцены.
// Используется только при построении связей, поиск пути её не читает.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}
