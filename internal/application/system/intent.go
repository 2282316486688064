package system

import "github.com/younwookim/wiretown/internal/domain/entity"

// Intent represents what a trigger activation asks for
type Intent interface {
	isIntent()
}

// EnterIntent asks to enter a sub-scene
type EnterIntent struct {
	Target string
}

func (EnterIntent) isIntent() {}

// GrantIntent asks to add an item to the inventory
type GrantIntent struct {
	Item   string
	Amount int
}

func (GrantIntent) isIntent() {}

// ExitIntent asks to leave the current scene
type ExitIntent struct{}

func (ExitIntent) isIntent() {}

// Interact returns the intent of the first trigger the hitbox overlaps,
// or nil when it overlaps none.
func Interact(hitbox entity.Rect, triggers []entity.Trigger) Intent {
	for _, t := range triggers {
		if !hitbox.Overlaps(t.Rect) {
			continue
		}
		switch t.Kind {
		case entity.TriggerEnter:
			return EnterIntent{Target: t.Target}
		case entity.TriggerGrant:
			return GrantIntent{Item: t.Item, Amount: t.Amount}
		case entity.TriggerExit:
			return ExitIntent{}
		}
	}
	return nil
}
