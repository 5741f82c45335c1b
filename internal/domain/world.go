package domain

// TileGraph владеет всеми тайлами одной навигационной области.
// Единственный писатель полей Occupied, WorkingDistance и Highlight.
type TileGraph struct {
	tiles map[TileID]*Tile
	order []TileID // Порядок объявления тайлов
}

func NewTileGraph() *TileGraph {
	return &TileGraph{
		tiles: make(map[TileID]*Tile),
		order: make([]TileID, 0),
	}
}
