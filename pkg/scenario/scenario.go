package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario - описание навигационной области и сущностей сессии.
// Слой сессии строит из него TileGraph и реестр сущностей.
type Scenario struct {
	Name     string       `yaml:"name"`
	Connect  []ConnectDef `yaml:"connect,omitempty"`
	Tiles    []TileDef    `yaml:"tiles"`
	Edges    []EdgeDef    `yaml:"edges,omitempty"` // Ручные связи (в обе стороны)
	Entities []EntityDef  `yaml:"entities,omitempty"`
}

// ConnectDef - правило автосвязи по радиусу (с опциональным фильтром группы)
type ConnectDef struct {
	Radius float64 `yaml:"radius"`
	Group  string  `yaml:"group,omitempty"`
}

// EdgeDef - ручная связь двух тайлов
type EdgeDef struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type TileDef struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Cost    int     `yaml:"cost,omitempty"` // 0 -> 1
	Group   string  `yaml:"group,omitempty"`
	Blocked bool    `yaml:"blocked,omitempty"` // Статическое препятствие
}

type EntityDef struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name,omitempty"`
	Kind           string `yaml:"kind,omitempty"` // CHARACTER (по умолчанию) или VEHICLE
	Tile           string `yaml:"tile,omitempty"`
	Speed          int    `yaml:"speed,omitempty"`
	ActionsPerTurn int    `yaml:"actionsPerTurn,omitempty"`
	Driver         string `yaml:"driver,omitempty"` // Для транспорта: ID водителя
}

// Load читает сценарий из YAML-файла
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML и проверяет ссылочную целостность
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid scenario format: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &s, nil
}

// Marshal сериализует сценарий обратно в YAML
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate проверяет уникальность ID и ссылки между тайлами и сущностями
func (s *Scenario) Validate() error {
	if len(s.Tiles) == 0 {
		return errors.New("scenario has no tiles")
	}

	tiles := make(map[string]bool, len(s.Tiles))
	blocked := make(map[string]bool)
	for _, t := range s.Tiles {
		if t.ID == "" {
			return errors.New("tile without id")
		}
		if tiles[t.ID] {
			return fmt.Errorf("duplicate tile %q", t.ID)
		}
		if t.Cost < 0 {
			return fmt.Errorf("tile %q has negative cost", t.ID)
		}
		tiles[t.ID] = true
		blocked[t.ID] = t.Blocked
	}

	for _, c := range s.Connect {
		if c.Radius <= 0 {
			return fmt.Errorf("connect radius must be positive, got %.2f", c.Radius)
		}
	}

	for _, e := range s.Edges {
		if !tiles[e.From] || !tiles[e.To] {
			return fmt.Errorf("edge %s-%s references unknown tile", e.From, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("edge %s-%s is a self-edge", e.From, e.To)
		}
	}

	entities := make(map[string]EntityDef, len(s.Entities))
	claimed := make(map[string]string)
	for _, e := range s.Entities {
		if e.ID == "" {
			return errors.New("entity without id")
		}
		if _, dup := entities[e.ID]; dup {
			return fmt.Errorf("duplicate entity %q", e.ID)
		}
		if e.Tile != "" {
			if !tiles[e.Tile] {
				return fmt.Errorf("entity %q placed on unknown tile %q", e.ID, e.Tile)
			}
			if blocked[e.Tile] {
				return fmt.Errorf("entity %q placed on blocked tile %q", e.ID, e.Tile)
			}
			if other, taken := claimed[e.Tile]; taken {
				return fmt.Errorf("entities %q and %q share tile %q", other, e.ID, e.Tile)
			}
			claimed[e.Tile] = e.ID
		}
		entities[e.ID] = e
	}

	seats := make(map[string]string)
	for _, e := range s.Entities {
		if e.Driver == "" {
			continue
		}
		if !isVehicle(e) {
			return fmt.Errorf("entity %q is not a vehicle but names driver %q", e.ID, e.Driver)
		}
		driver, ok := entities[e.Driver]
		if !ok {
			return fmt.Errorf("vehicle %q has unknown driver %q", e.ID, e.Driver)
		}
		if isVehicle(driver) {
			return fmt.Errorf("driver %q of %q is itself a vehicle", driver.ID, e.ID)
		}
		if driver.Tile != "" {
			return fmt.Errorf("driver %q of %q must not be placed on a tile", driver.ID, e.ID)
		}
		if other, taken := seats[e.Driver]; taken {
			return fmt.Errorf("driver %q is shared by vehicles %q and %q", e.Driver, other, e.ID)
		}
		seats[e.Driver] = e.ID
	}
	return nil
}

func isVehicle(e EntityDef) bool {
	return strings.EqualFold(e.Kind, "VEHICLE")
}
