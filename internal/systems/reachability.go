package systems

import (
	"fmt"

	"meatwagon-server/internal/domain"

	"github.com/zyedidia/generic/mapset"
)

// ReachableSet возвращает все тайлы, до которых можно дойти с бюджетом budget (включая origin).
// Занятые тайлы не попадают в множество: движок их не релаксирует.
func ReachableSet(g *domain.TileGraph, origin domain.TileID, budget int) (mapset.Set[domain.TileID], error) {
	if budget < 0 {
		return mapset.New[domain.TileID](), fmt.Errorf("%w: negative budget %d", domain.ErrInvalidArgument, budget)
	}

	dist, err := ComputeDistances(g, origin)
	if err != nil {
		return mapset.New[domain.TileID](), err
	}

	reachable := mapset.New[domain.TileID]()
	for id, d := range dist {
		// Недостижимые тайлы хранят InfiniteDistance и не должны проходить по бюджету
		if dist.Reachable(id) && d <= budget {
			reachable.Put(id)
		}
	}
	return reachable, nil
}

// SortedTiles раскладывает множество в срез в порядке объявления тайлов графа
func SortedTiles(g *domain.TileGraph, set mapset.Set[domain.TileID]) []domain.TileID {
	result := make([]domain.TileID, 0, set.Size())
	for _, t := range g.Tiles() {
		if set.Has(t.ID) {
			result = append(result, t.ID)
		}
	}
	return result
}
