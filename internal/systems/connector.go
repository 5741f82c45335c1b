package systems

import (
	"fmt"

	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultConnectionRadius - радиус автосвязи соседних тайлов на единичной сетке (включая диагонали)
const DefaultConnectionRadius = 1.5

// Connect связывает каждый тайл со всеми тайлами в радиусе maxDistance (включительно).
// Если group не пуст, соединяются только тайлы этой группы.
// Вызывается один раз при сборке: повторный вызов дублирует рёбра.
// Возвращает число добавленных рёбер.
func Connect(g *domain.TileGraph, maxDistance float64, group string) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: nil graph", domain.ErrInvalidArgument)
	}
	if maxDistance < 0 {
		return 0, fmt.Errorf("%w: negative connection radius %.2f", domain.ErrInvalidArgument, maxDistance)
	}

	tiles := g.Tiles()
	edges := 0

	for _, a := range tiles {
		if group != "" && a.Group != group {
			continue
		}
		for _, b := range tiles {
			if a.ID == b.ID {
				continue
			}
			if group != "" && b.Group != group {
				continue
			}
			if a.Pos.DistanceTo(b.Pos) > maxDistance {
				continue
			}
			if err := g.AddEdge(a.ID, b.ID); err != nil {
				return edges, err
			}
			edges++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "connector",
		"radius":    maxDistance,
		"group":     group,
		"edges":     edges,
	}).Debug("Tiles connected")

	return edges, nil
}

// ConnectPair объявляет ребро вручную в обе стороны
func ConnectPair(g *domain.TileGraph, a, b domain.TileID) error {
	if err := g.AddEdge(a, b); err != nil {
		return err
	}
	return g.AddEdge(b, a)
}
