package catalogs

// Psyker is a catalog entry holding the psychic profile of a model.
// Keyed by the model's name; most models have no psyker entry.
type Psyker struct {
	Name           string
	PowersPerTurn  int
	DenyPerTurn    int
	NumKnownPowers int
	Discipline     string
}
