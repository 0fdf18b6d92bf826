package catalogs

// Wargear is a catalog entry for a piece of non-weapon equipment.
type Wargear struct {
	Name      string
	Cost      Points
	Abilities []string
}
