package entity

// ItemMoney is the inventory key for the player's money
const ItemMoney = "money"

// Quality is the grade earned in the cable minigame
type Quality int

const (
	QualityNone Quality = iota
	QualityOrange
	QualityYellow
	QualityGreen
)

// String returns the string representation of the quality
func (q Quality) String() string {
	switch q {
	case QualityNone:
		return "none"
	case QualityOrange:
		return "orange"
	case QualityYellow:
		return "yellow"
	case QualityGreen:
		return "green"
	default:
		return "unknown"
	}
}

// CableRecord is a cable crimped in the minigame
type CableRecord struct {
	Order   string  `json:"order"`   // Reference ordering that was matched (e.g. T568B)
	Quality Quality `json:"quality"` // Grade earned
}

// Inventory holds everything the player carries between scenes.
// It is the only state that survives a scene swap.
type Inventory struct {
	Money  int
	Items  map[string]int
	Cables []CableRecord
}

// NewInventory returns the starting inventory
func NewInventory() Inventory {
	return Inventory{
		Money: 500,
		Items: map[string]int{
			"udp":  0,
			"rj45": 0,
		},
		Cables: []CableRecord{},
	}
}

// Clone returns a deep copy
func (inv Inventory) Clone() Inventory {
	out := Inventory{
		Money:  inv.Money,
		Items:  make(map[string]int, len(inv.Items)),
		Cables: make([]CableRecord, len(inv.Cables)),
	}
	for k, v := range inv.Items {
		out.Items[k] = v
	}
	copy(out.Cables, inv.Cables)
	return out
}

// Add grants amount of item. Money is tracked separately from consumables.
func (inv *Inventory) Add(item string, amount int) {
	if item == ItemMoney {
		inv.Money += amount
		return
	}
	if inv.Items == nil {
		inv.Items = make(map[string]int)
	}
	inv.Items[item] += amount
}

// Count returns how many of item the inventory holds
func (inv Inventory) Count(item string) int {
	if item == ItemMoney {
		return inv.Money
	}
	return inv.Items[item]
}

// AddCable records a finished cable
func (inv *Inventory) AddCable(rec CableRecord) {
	inv.Cables = append(inv.Cables, rec)
}
