package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p EntityPayload) Validate() error {
	if p.EntityID == "" {
		return errors.New("entityId is required")
	}
	return nil
}

func (p ActionPayload) Validate() error {
	if p.EntityID == "" {
		return errors.New("entityId is required")
	}
	if p.Action == "" {
		return errors.New("action is required")
	}
	return nil
}

func (p TilePayload) Validate() error {
	if p.TileID == "" {
		return errors.New("tileId is required")
	}
	return nil
}

func (p ReachablePayload) Validate() error {
	if p.Origin == "" {
		return errors.New("origin is required")
	}
	if p.Budget < 0 {
		return errors.New("budget cannot be negative")
	}
	return nil
}

func (p PathPayload) Validate() error {
	if p.Origin == "" || p.Goal == "" {
		return errors.New("origin and goal are required")
	}
	if p.Origin == p.Goal {
		return errors.New("origin and goal must differ")
	}
	return nil
}
