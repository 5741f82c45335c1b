package engine

import (
	"testing"

	"meatwagon-server/internal/domain"
	"meatwagon-server/pkg/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorld_Crossroads(t *testing.T) {
	graph, entities, err := BuildWorld(scenario.Crossroads())
	require.NoError(t, err)

	assert.Equal(t, 24, graph.Len())
	assert.Equal(t, 4, entities.Len())

	// Персонажи занимают свои тайлы
	assert.Equal(t, domain.EntityID("scout"), graph.Occupant("0,3"))
	assert.Equal(t, domain.EntityID("meatwagon"), graph.Occupant("0,1"))

	// Препятствие занято, но без владельца
	blocked, err := graph.IsOccupied("1,2")
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.True(t, graph.Occupant("1,2").IsNil())

	// Водитель в транспорте и не на графе
	driver := entities.Get("driver")
	require.NotNil(t, driver)
	assert.False(t, driver.IsPlaced())
	assert.Equal(t, domain.EntityID("meatwagon"), driver.VehicleID)

	// Дорога связана через клетку, поле - нет
	assert.True(t, graph.Tile("0,1").HasNeighbor("2,1"))
	assert.False(t, graph.Tile("0,0").HasNeighbor("2,0"))
	assert.Equal(t, 3, graph.Tile("2,0").TraversalCost)
}

func TestBuildWorld_Defaults(t *testing.T) {
	s := lineScenario(scenario.EntityDef{ID: "p1", Tile: "A"})
	s.Tiles[1].Cost = 0

	graph, entities, err := BuildWorld(s)
	require.NoError(t, err)

	p := entities.Get("p1")
	require.NotNil(t, p)
	assert.Equal(t, domain.EntityKindCharacter, p.Kind)
	assert.Equal(t, "p1", p.Name)
	assert.Equal(t, domain.DefaultSpeed, p.Speed)
	assert.Equal(t, domain.DefaultActionsPerTurn, p.RemainingActions)
	assert.Equal(t, 1, graph.Tile("B").TraversalCost)
}

func TestBuildWorld_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *scenario.Scenario)
	}{
		{name: "duplicate tile", mutate: func(s *scenario.Scenario) {
			s.Tiles = append(s.Tiles, scenario.TileDef{ID: "A", X: 9})
		}},
		{name: "negative cost", mutate: func(s *scenario.Scenario) { s.Tiles[0].Cost = -2 }},
		{name: "edge to unknown tile", mutate: func(s *scenario.Scenario) {
			s.Edges = []scenario.EdgeDef{{From: "A", To: "Z"}}
		}},
		{name: "shared tile", mutate: func(s *scenario.Scenario) {
			s.Entities = append(s.Entities, scenario.EntityDef{ID: "p2", Tile: "A"})
		}},
		{name: "duplicate entity", mutate: func(s *scenario.Scenario) {
			s.Entities = append(s.Entities, scenario.EntityDef{ID: "p1", Tile: "C"})
		}},
		{name: "unknown driver", mutate: func(s *scenario.Scenario) {
			s.Entities = append(s.Entities, scenario.EntityDef{ID: "van", Kind: "VEHICLE", Tile: "D", Driver: "nobody"})
		}},
		{name: "shared driver", mutate: func(s *scenario.Scenario) {
			s.Entities = append(s.Entities,
				scenario.EntityDef{ID: "doc"},
				scenario.EntityDef{ID: "van", Kind: "VEHICLE", Tile: "C", Driver: "doc"},
				scenario.EntityDef{ID: "truck", Kind: "VEHICLE", Tile: "D", Driver: "doc"},
			)
		}},
		{name: "driver on character", mutate: func(s *scenario.Scenario) {
			s.Entities = append(s.Entities,
				scenario.EntityDef{ID: "doc"},
				scenario.EntityDef{ID: "p2", Tile: "C", Driver: "doc"},
			)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := lineScenario(scenario.EntityDef{ID: "p1", Tile: "A"})
			tt.mutate(s)
			_, _, err := BuildWorld(s)
			require.Error(t, err)
		})
	}

	_, _, err := BuildWorld(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBuildWorld_ManualEdges(t *testing.T) {
	s := &scenario.Scenario{
		Tiles: []scenario.TileDef{
			{ID: "left", X: 0},
			{ID: "right", X: 10},
		},
		Edges: []scenario.EdgeDef{{From: "left", To: "right"}},
	}
	graph, _, err := BuildWorld(s)
	require.NoError(t, err)
	assert.True(t, graph.Tile("left").HasNeighbor("right"))
	assert.True(t, graph.Tile("right").HasNeighbor("left"))
}
