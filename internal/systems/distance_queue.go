package systems

import (
	"container/heap"

	"meatwagon-server/internal/domain"
)

// distanceItem обертка для элемента очереди приоритетов поиска
type distanceItem struct {
	Tile     domain.TileID
	Priority int // Текущее расстояние. Чем меньше, тем раньше обработка.
	Index    int // Индекс в куче
}

// distanceQueue реализует heap.Interface (MinHeap по расстоянию)
type distanceQueue []*distanceItem

func (pq distanceQueue) Len() int { return len(pq) }

func (pq distanceQueue) Less(i, j int) bool {
	if pq[i].Priority == pq[j].Priority {
		return pq[i].Tile < pq[j].Tile
	}
	return pq[i].Priority < pq[j].Priority
}

func (pq distanceQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *distanceQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*distanceItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *distanceQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}

// push кладёт тайл в очередь, либо понижает его приоритет, если он уже там
func (pq *distanceQueue) push(items map[domain.TileID]*distanceItem, id domain.TileID, dist int) {
	if item, ok := items[id]; ok && item.Index >= 0 {
		item.Priority = dist
		heap.Fix(pq, item.Index)
		return
	}
	item := &distanceItem{Tile: id, Priority: dist}
	heap.Push(pq, item)
	items[id] = item
}
