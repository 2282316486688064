package entity

// Player is the actor controlled by the user. It carries the inventory.
type Player struct {
	Actor
	Inventory Inventory
}

// NewPlayer creates a player centered on (x, y) with the starting inventory
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Actor:     *NewActor(x, y, w, h),
		Inventory: NewInventory(),
	}
}

// Steer sets the movement direction from the held direction keys.
// Vertical keys keep the current facing; horizontal keys turn the player.
func (p *Player) Steer(up, down, left, right bool) {
	switch {
	case up:
		p.Direction[1] = -1
		p.Status = p.Facing() + "_walk"
	case down:
		p.Direction[1] = 1
		p.Status = p.Facing() + "_walk"
	default:
		p.Direction[1] = 0
	}

	switch {
	case left:
		p.Direction[0] = -1
		p.Status = StatusLeftWalk
	case right:
		p.Direction[0] = 1
		p.Status = StatusRightWalk
	default:
		p.Direction[0] = 0
	}
}

// SetInventory replaces the carried inventory with a copy of inv
func (p *Player) SetInventory(inv Inventory) {
	p.Inventory = inv.Clone()
}
