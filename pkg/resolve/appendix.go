package resolve

import "github.com/musterpoint/muster/pkg/catalogs"

// appendixBuilder accumulates the army-wide reference tables while squads
// resolve, deduplicating by name in first-use order.
type appendixBuilder struct {
	catalog  *catalogs.Catalog
	appendix Appendix
	seen     map[string]bool
}

func newAppendixBuilder(catalog *catalogs.Catalog) *appendixBuilder {
	return &appendixBuilder{catalog: catalog, seen: make(map[string]bool)}
}

func (b *appendixBuilder) addSquad(squad *ResolvedSquad) {
	for _, model := range squad.Models {
		if b.mark("model", model.Name) {
			b.appendix.Models = append(b.appendix.Models, model)
		}
	}
	for _, weapon := range squad.Weapons {
		if b.mark("weapon", weapon.Name) {
			b.appendix.Weapons = append(b.appendix.Weapons, weapon)
		}
	}
	for _, gear := range squad.Wargear {
		if b.mark("wargear", gear.Name) {
			b.appendix.Wargear = append(b.appendix.Wargear, gear)
		}
	}
	for _, ability := range squad.Abilities {
		if b.mark("ability", ability.Name) {
			b.appendix.Abilities = append(b.appendix.Abilities, ability)
		}
	}
	for _, psyker := range squad.Psykers {
		if b.mark("psyker", psyker.Name) {
			b.appendix.Psykers = append(b.appendix.Psykers, psyker)
		}
	}
}

func (b *appendixBuilder) mark(kind, name string) bool {
	key := kind + "\x00" + name
	if b.seen[key] {
		return false
	}
	b.seen[key] = true
	return true
}
