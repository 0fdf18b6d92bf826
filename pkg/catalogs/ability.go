package catalogs

// Ability is a catalog entry describing a named special rule.
type Ability struct {
	Name        string
	Description string
}
