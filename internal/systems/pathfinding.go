package systems

import (
	"container/heap"
	"fmt"

	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Distances - итоговые (settled) расстояния от origin до каждого тайла графа
type Distances map[domain.TileID]int

// Of возвращает расстояние до тайла (InfiniteDistance для недостижимых и чужих)
func (d Distances) Of(id domain.TileID) int {
	if v, ok := d[id]; ok {
		return v
	}
	return domain.InfiniteDistance
}

// Reachable - конечно ли расстояние до тайла
func (d Distances) Reachable(id domain.TileID) bool {
	return d.Of(id) < domain.InfiniteDistance
}

// ComputeDistances считает минимальную стоимость пути от origin до всех тайлов (Дейкстра).
// Стоимость списывается за ВХОД в тайл. Занятые тайлы кроме origin не проходимы,
// сам origin всегда доступен: на нём стоит тот, кто двигается.
// Каждый вызов считает с нуля, кэша между вызовами нет.
func ComputeDistances(g *domain.TileGraph, origin domain.TileID) (Distances, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", domain.ErrInvalidArgument)
	}
	if origin == "" || !g.Has(origin) {
		return nil, fmt.Errorf("%w: origin %q is not in the graph", domain.ErrInvalidArgument, origin)
	}

	// 1. Инициализация: origin = 0, остальные = "бесконечность"
	g.ResetWorkingDistances()
	dist := make(Distances, g.Len())
	for _, t := range g.Tiles() {
		dist[t.ID] = domain.InfiniteDistance
	}
	dist[origin] = 0

	pq := make(distanceQueue, 0, g.Len())
	heap.Init(&pq)
	items := make(map[domain.TileID]*distanceItem, g.Len())
	pq.push(items, origin, 0)

	settled := make(map[domain.TileID]bool, g.Len())

	// 2. Пока есть достижимые необработанные тайлы
	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*distanceItem)
		if settled[current.Tile] {
			continue
		}
		settled[current.Tile] = true

		// 3. Релаксация соседей
		for _, nID := range g.Neighbors(current.Tile) {
			neighbor := g.Tile(nID)
			if neighbor == nil || settled[nID] {
				continue
			}
			if neighbor.Occupied && nID != origin {
				continue
			}

			alt := dist[current.Tile] + neighbor.TraversalCost
			if alt < dist[nID] {
				dist[nID] = alt
				pq.push(items, nID, alt)
			}
		}
	}

	for id, d := range dist {
		g.SetWorkingDistance(id, d)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pathfinding",
		"origin":    origin,
		"settled":   len(settled),
		"tiles":     g.Len(),
	}).Debug("Distances computed")

	return dist, nil
}

// ReconstructPath восстанавливает путь от goal обратно к origin по готовым расстояниям.
// На каждом шаге берём соседа со строго меньшим расстоянием (минимальным),
// при равенстве - с наименьшим TileID. Первый элемент - origin, последний - goal.
func ReconstructPath(g *domain.TileGraph, origin, goal domain.TileID, dist Distances) ([]domain.TileID, error) {
	if g == nil || dist == nil {
		return nil, fmt.Errorf("%w: nil graph or distances", domain.ErrInvalidArgument)
	}
	if !g.Has(origin) || !g.Has(goal) {
		return nil, fmt.Errorf("%w: path endpoints %q -> %q are not in the graph", domain.ErrInvalidArgument, origin, goal)
	}
	if origin == goal {
		return nil, fmt.Errorf("%w: origin equals goal (%s)", domain.ErrInvalidArgument, origin)
	}
	if dist.Of(origin) != 0 {
		return nil, fmt.Errorf("%w: distances were not computed from %s", domain.ErrInvalidArgument, origin)
	}
	if !dist.Reachable(goal) {
		return nil, fmt.Errorf("%w: %s is unreachable from %s", domain.ErrNoPathExists, goal, origin)
	}

	reversed := []domain.TileID{goal}
	current := goal

	for steps := 0; current != origin; steps++ {
		if steps > g.Len() {
			return nil, fmt.Errorf("%w: path walk from %s did not converge", domain.ErrNoPathExists, goal)
		}

		currentDist := dist.Of(current)
		var best domain.TileID
		bestDist := domain.InfiniteDistance

		for _, nID := range g.Neighbors(current) {
			neighbor := g.Tile(nID)
			// Шаг назад допустим только по ребру, которое ведёт в current
			if neighbor == nil || !neighbor.HasNeighbor(current) {
				continue
			}
			d := dist.Of(nID)
			if d >= currentDist {
				continue
			}
			if d < bestDist || (d == bestDist && nID < best) {
				best, bestDist = nID, d
			}
		}

		if best == "" {
			return nil, fmt.Errorf("%w: dead end at %s while walking back to %s", domain.ErrNoPathExists, current, origin)
		}
		reversed = append(reversed, best)
		current = best
	}

	path := make([]domain.TileID, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path, nil
}

// ComputePath - полный запрос пути: расстояния + восстановление
func ComputePath(g *domain.TileGraph, origin, goal domain.TileID) ([]domain.TileID, error) {
	dist, err := ComputeDistances(g, origin)
	if err != nil {
		return nil, err
	}
	return ReconstructPath(g, origin, goal, dist)
}

// PathCost суммирует стоимость входа во все тайлы пути, кроме первого
func PathCost(g *domain.TileGraph, path []domain.TileID) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		if t := g.Tile(path[i]); t != nil {
			cost += t.TraversalCost
		}
	}
	return cost
}
