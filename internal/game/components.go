package game

// Position is a pixel-space ECS component.
type Position struct {
	X, Y float64
}

// ShipControlled tags the entity steered by the player.
type ShipControlled struct{}
