package systems

import (
	"testing"

	"meatwagon-server/internal/domain"

	"github.com/stretchr/testify/require"
)

type tileDef struct {
	id    domain.TileID
	x, y  float64
	cost  int
	group string
}

// buildGraph собирает граф и связывает тайлы по радиусу 1 (без диагоналей)
func buildGraph(t *testing.T, defs ...tileDef) *domain.TileGraph {
	t.Helper()
	g := domain.NewTileGraph()
	for _, s := range defs {
		cost := s.cost
		if cost == 0 {
			cost = 1
		}
		_, err := g.AddTile(s.id, domain.Vec2{X: s.x, Y: s.y}, s.group, cost)
		require.NoError(t, err)
	}
	_, err := Connect(g, 1.0, "")
	require.NoError(t, err)
	return g
}

// A - B - C - D
func lineGraph(t *testing.T) *domain.TileGraph {
	return buildGraph(t,
		tileDef{id: "A", x: 0},
		tileDef{id: "B", x: 1},
		tileDef{id: "C", x: 2},
		tileDef{id: "D", x: 3},
	)
}

// A B
// C D
func squareGraph(t *testing.T) *domain.TileGraph {
	return buildGraph(t,
		tileDef{id: "A", x: 0, y: 0},
		tileDef{id: "B", x: 1, y: 0},
		tileDef{id: "C", x: 0, y: 1},
		tileDef{id: "D", x: 1, y: 1},
	)
}

func ids(values ...string) []domain.TileID {
	result := make([]domain.TileID, len(values))
	for i, v := range values {
		result[i] = domain.TileID(v)
	}
	return result
}
