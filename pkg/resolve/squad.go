package resolve

import (
	"fmt"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
	"github.com/musterpoint/muster/pkg/roster"
)

// ResolvedSquad is a squad with its item rows joined to the catalog, its
// stat blocks denormalized for rendering and its total computed.
type ResolvedSquad struct {
	Source     *roster.Squad
	Name       string
	Slot       string
	BaseCost   catalogs.Points
	TotalCost  catalogs.Points
	ModelCount int
	Breakdown  []BreakdownRow

	Models    []*catalogs.Model
	Weapons   []*catalogs.Weapon
	Wargear   []*catalogs.Wargear
	Abilities []*catalogs.Ability
	Psykers   []*catalogs.Psyker

	// GrenadeRangeBuff is set when the squad carries the auxiliary grenade
	// launcher ability. The buffed range is an overlay for rendering, never
	// a change to the shared catalog records.
	GrenadeRangeBuff bool
}

// BreakdownRow is one line of a squad's cost table. Included rows belong
// to a model whose cost already covers its wargear; their subtotal is
// zero.
type BreakdownRow struct {
	Name     string
	Kind     catalogs.ItemKind
	Quantity int
	UnitCost catalogs.Points
	Subtotal catalogs.Points
	Included bool
}

// GrenadeLauncherAbility extends the thrown range of frag and krak
// grenades for the squad carrying it.
const GrenadeLauncherAbility = "Auxiliary Grenade Launcher"

// BuffedGrenadeRange is the extended range granted by the launcher.
const BuffedGrenadeRange = "30"

var buffedGrenades = map[string]bool{
	"Frag Grenade": true,
	"Krak Grenade": true,
}

// BuffedRange returns the overlay range for a weapon profile, if the
// squad's buffs change it.
func (s *ResolvedSquad) BuffedRange(weaponName string) (string, bool) {
	if s.GrenadeRangeBuff && buffedGrenades[weaponName] {
		return BuffedGrenadeRange, true
	}
	return "", false
}

func (r *Resolver) squad(detachmentPath roster.Path, squad *roster.Squad, appendix *appendixBuilder) (*ResolvedSquad, error) {
	path := detachmentPath.Squad(squad.Name)

	resolved := &ResolvedSquad{
		Source:   squad,
		Name:     squad.Name,
		Slot:     squad.Slot,
		BaseCost: squad.BaseCost,
	}

	// A model whose cost includes its wargear zeroes the squad's weapon
	// and wargear component. The flag must agree across the squad's
	// models or the intended total is ambiguous.
	includesWargear := false
	includesSeen := false

	var abilityNames []string
	seenAbility := make(map[string]bool)
	addAbilities := func(names []string) {
		for _, name := range names {
			if !seenAbility[name] {
				seenAbility[name] = true
				abilityNames = append(abilityNames, name)
			}
		}
	}

	for _, item := range squad.Items {
		record, ok := r.catalog.Item(item.Name)
		if !ok {
			return nil, errors.NewUnknownReferenceError(item.Name, "item", path.Item(item.Name).String())
		}

		row := BreakdownRow{
			Name:     item.Name,
			Kind:     record.Kind,
			Quantity: item.Quantity,
			UnitCost: record.Cost(),
			Subtotal: record.Cost() * catalogs.Points(item.Quantity),
		}

		switch record.Kind {
		case catalogs.KindModel:
			model := record.Model
			resolved.Models = append(resolved.Models, model)
			resolved.ModelCount += item.Quantity
			addAbilities(model.Abilities)

			if includesSeen && includesWargear != model.IncludesWargear {
				return nil, errors.NewCostOverrideError(path.String(), "IncludesWargear",
					model.IncludesWargear, "squad mixes models with and without included wargear")
			}
			includesWargear = model.IncludesWargear
			includesSeen = true

			if psyker, ok := r.catalog.Psyker(model.Name); ok {
				resolved.Psykers = append(resolved.Psykers, psyker)
			}

		case catalogs.KindWeapon:
			resolved.Weapons = append(resolved.Weapons, record.Weapon)
			for _, mode := range record.Weapon.Modes() {
				addAbilities(mode.Abilities)
			}

		case catalogs.KindWargear:
			resolved.Wargear = append(resolved.Wargear, record.Wargear)
			addAbilities(record.Wargear.Abilities)
		}

		resolved.Breakdown = append(resolved.Breakdown, row)
	}

	// A specialist gains one ability per earned level, named after the
	// specialism: "Leader (1)" through "Leader (3)".
	if squad.Specialist != "" {
		for level := 1; level <= squad.Level(); level++ {
			addAbilities([]string{fmt.Sprintf("%s (%d)", squad.Specialist, level)})
		}
	}

	if includesWargear {
		for i := range resolved.Breakdown {
			if resolved.Breakdown[i].Kind != catalogs.KindModel {
				resolved.Breakdown[i].Subtotal = 0
				resolved.Breakdown[i].Included = true
			}
		}
	}

	resolved.TotalCost = resolved.BaseCost
	for _, row := range resolved.Breakdown {
		resolved.TotalCost += row.Subtotal
	}

	for _, name := range abilityNames {
		ability, ok := r.catalog.Ability(name)
		if !ok {
			return nil, errors.NewUnknownReferenceError(name, "ability", path.String())
		}
		resolved.Abilities = append(resolved.Abilities, ability)
		if name == GrenadeLauncherAbility {
			resolved.GrenadeRangeBuff = true
		}
	}

	appendix.addSquad(resolved)
	return resolved, nil
}
