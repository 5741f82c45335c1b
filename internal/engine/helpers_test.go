package engine

import (
	"testing"

	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/scenario"

	"github.com/stretchr/testify/require"
)

// lineScenario: A - B - C - D, стоимость 1
func lineScenario(entities ...scenario.EntityDef) *scenario.Scenario {
	return &scenario.Scenario{
		Name:    "line",
		Connect: []scenario.ConnectDef{{Radius: 1.0}},
		Tiles: []scenario.TileDef{
			{ID: "A", X: 0},
			{ID: "B", X: 1},
			{ID: "C", X: 2},
			{ID: "D", X: 3},
		},
		Entities: entities,
	}
}

func hero(tile string, speed int) scenario.EntityDef {
	return scenario.EntityDef{ID: "hero", Name: "Hero", Tile: tile, Speed: speed}
}

func newTestController(t *testing.T, s *scenario.Scenario) (*Controller, *domain.TileGraph, *domain.EntityRegistry) {
	t.Helper()
	graph, entities, err := BuildWorld(s)
	require.NoError(t, err)
	return NewController(graph, entities), graph, entities
}

func ids(values ...string) []domain.TileID {
	result := make([]domain.TileID, len(values))
	for i, v := range values {
		result[i] = domain.TileID(v)
	}
	return result
}

func highlights(g *domain.TileGraph) map[domain.TileID]domain.HighlightState {
	out := make(map[domain.TileID]domain.HighlightState, g.Len())
	for _, t := range g.Tiles() {
		out[t.ID] = t.Highlight
	}
	return out
}
