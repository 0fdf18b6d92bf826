package catalogs

// ItemKind tags which catalog a costed item came from.
type ItemKind string

// Item kinds, in the order squads usually list them.
const (
	KindModel   ItemKind = "model"
	KindWeapon  ItemKind = "weapon"
	KindWargear ItemKind = "wargear"
)

// Item is the tagged result of a cost lookup: exactly one of Model,
// Weapon, or Wargear is set, per Kind. Rosters reference all three
// through a single namespace.
type Item struct {
	Kind    ItemKind
	Model   *Model
	Weapon  *Weapon
	Wargear *Wargear
}

// Name returns the item's catalog name.
func (i Item) Name() string {
	switch i.Kind {
	case KindModel:
		return i.Model.Name
	case KindWeapon:
		return i.Weapon.Name
	default:
		return i.Wargear.Name
	}
}

// Cost returns the item's base point cost.
func (i Item) Cost() Points {
	switch i.Kind {
	case KindModel:
		return i.Model.Cost
	case KindWeapon:
		return i.Weapon.Cost
	default:
		return i.Wargear.Cost
	}
}

// Abilities returns the item's ability names.
func (i Item) Abilities() []string {
	switch i.Kind {
	case KindModel:
		return i.Model.Abilities
	case KindWeapon:
		return i.Weapon.Abilities
	default:
		return i.Wargear.Abilities
	}
}
