package domain

import (
	"errors"
	"testing"
)

func newLineGraph(t *testing.T) *TileGraph {
	t.Helper()
	g := NewTileGraph()
	for i, id := range []TileID{"A", "B", "C"} {
		if _, err := g.AddTile(id, Vec2{X: float64(i)}, "", 1); err != nil {
			t.Fatalf("AddTile(%s): %v", id, err)
		}
	}
	return g
}

func TestTileGraph_AddTile(t *testing.T) {
	g := newLineGraph(t)

	if g.Len() != 3 {
		t.Errorf("Expected 3 tiles, got %d", g.Len())
	}
	if _, err := g.AddTile("A", Vec2{}, "", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Duplicate tile: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := g.AddTile("Z", Vec2{}, "", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Zero cost: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := g.AddTile("", Vec2{}, "", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Empty id: expected ErrInvalidArgument, got %v", err)
	}

	// Порядок объявления сохраняется
	tiles := g.Tiles()
	for i, want := range []TileID{"A", "B", "C"} {
		if tiles[i].ID != want {
			t.Errorf("Tiles()[%d] = %s, want %s", i, tiles[i].ID, want)
		}
	}
	if tiles[0].WorkingDistance != InfiniteDistance {
		t.Errorf("New tile should start at InfiniteDistance, got %d", tiles[0].WorkingDistance)
	}
}

func TestTileGraph_AddEdge(t *testing.T) {
	g := newLineGraph(t)

	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.Tile("A").HasNeighbor("B") {
		t.Error("A should list B as neighbour")
	}
	if g.Tile("B").HasNeighbor("A") {
		t.Error("AddEdge must be one-directional")
	}
	if err := g.AddEdge("A", "A"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Self-edge: expected ErrInvalidArgument, got %v", err)
	}
	if err := g.AddEdge("A", "X"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Foreign tile: expected ErrInvalidArgument, got %v", err)
	}
}

func TestTileGraph_ClaimRelease(t *testing.T) {
	g := newLineGraph(t)

	if err := g.Claim("B", "e1"); err != nil {
		t.Fatalf("Claim: %v", err)
	}
	occupied, err := g.IsOccupied("B")
	if err != nil || !occupied {
		t.Fatalf("B should be occupied (err=%v)", err)
	}
	if g.Occupant("B") != "e1" {
		t.Errorf("Occupant = %q, want e1", g.Occupant("B"))
	}

	// Второй претендент отклоняется
	if err := g.Claim("B", "e2"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Second claim: expected ErrInvalidArgument, got %v", err)
	}

	// Чужой Release ничего не меняет
	g.Release("B", "e2")
	if occupied, _ := g.IsOccupied("B"); !occupied {
		t.Error("Release by non-occupant must not free the tile")
	}

	g.Release("B", "e1")
	if occupied, _ := g.IsOccupied("B"); occupied {
		t.Error("B should be free after Release")
	}

	if _, err := g.IsOccupied("X"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Unknown tile: expected ErrInvalidArgument, got %v", err)
	}
}

func TestTileGraph_Obstruct(t *testing.T) {
	g := newLineGraph(t)

	if err := g.Obstruct("C"); err != nil {
		t.Fatalf("Obstruct: %v", err)
	}
	g.Release("C", NilEntityID)
	if occupied, _ := g.IsOccupied("C"); !occupied {
		t.Error("Obstruction must survive Release with empty entity")
	}
	if err := g.Claim("C", "e1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Claiming obstruction: expected ErrInvalidArgument, got %v", err)
	}
}

func TestTileGraph_ResetHighlights(t *testing.T) {
	g := newLineGraph(t)
	g.SetHighlight("A", HighlightReachable)
	g.SetHighlight("B", HighlightSelected)

	g.ResetHighlights()

	for _, tile := range g.Tiles() {
		if tile.Highlight != HighlightDefault {
			t.Errorf("Tile %s highlight = %s, want DEFAULT", tile.ID, tile.Highlight)
		}
	}
}

func TestEntityRegistry(t *testing.T) {
	r := NewEntityRegistry()

	e := &Entity{ID: "e1", Kind: EntityKindCharacter}
	if err := r.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if r.Get("e1") != e {
		t.Error("Get returned wrong entity")
	}
	if err := r.Register(&Entity{ID: "e1"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Duplicate: expected ErrInvalidArgument, got %v", err)
	}
	if err := r.Register(&Entity{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Empty id: expected ErrInvalidArgument, got %v", err)
	}
	if r.Get("nobody") != nil {
		t.Error("Unknown entity should be nil")
	}
}

func TestEntity_Budget(t *testing.T) {
	e := &Entity{ID: "e1", ActionsPerTurn: 2}
	e.RefreshActions()
	e.SpendAction()
	e.SpendAction()
	e.SpendAction()

	if e.RemainingActions != 0 {
		t.Errorf("RemainingActions = %d, want 0", e.RemainingActions)
	}
	if e.CanAct() {
		t.Error("Entity with empty budget should not act")
	}

	e.RefreshActions()
	if e.RemainingActions != 2 {
		t.Errorf("After refresh RemainingActions = %d, want 2", e.RemainingActions)
	}
}
