// Package resolve joins parsed army lists against a catalog and computes
// point totals bottom-up. Resolution never mutates the catalog; every
// resolved tree is owned by the run that produced it.
package resolve

import (
	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
	"github.com/musterpoint/muster/pkg/roster"
)

// BattleForgedCommandPoints is the baseline CP granted to any army built
// from detachments, before per-formation bonuses.
const BattleForgedCommandPoints = 3

// Resolver resolves army lists against one catalog.
type Resolver struct {
	catalog *catalogs.Catalog
}

// New returns a resolver backed by the given catalog.
func New(catalog *catalogs.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// ResolvedArmy is an army with every name joined to its catalog record and
// every total precomputed. Sibling order everywhere matches declaration
// order in the source document.
type ResolvedArmy struct {
	Source        *roster.Army
	Name          string
	PointsLimit   catalogs.Points
	Warlord       string
	Notes         string
	Detachments   []*ResolvedDetachment
	TotalCost     catalogs.Points
	PointsToSpare catalogs.Points
	CommandPoints int
	Appendix      Appendix
}

// ResolvedDetachment is a detachment with its formation record, per-slot
// usage and total cost.
type ResolvedDetachment struct {
	Source    *roster.Detachment
	Name      string
	Type      string
	Formation *catalogs.Formation
	Units     []*ResolvedSquad
	TotalCost catalogs.Points
	Slots     []SlotUsage
}

// SlotUsage is one force-organisation slot with its squad count and the
// formation's limits. A violated limit is informational; it never blocks
// resolution.
type SlotUsage struct {
	Slot      string
	Count     int
	Min       int
	Max       int
	Violation string
}

// Appendix holds the army-wide reference data rendered after the squad
// cards: every distinct record used anywhere in the army, in first-use
// order.
type Appendix struct {
	Models    []*catalogs.Model
	Weapons   []*catalogs.Weapon
	Wargear   []*catalogs.Wargear
	Abilities []*catalogs.Ability
	Psykers   []*catalogs.Psyker
}

// Army resolves one parsed army list. The first unknown reference or
// invalid override aborts the army with an error naming the exact node.
func (r *Resolver) Army(army *roster.Army) (*ResolvedArmy, error) {
	resolved := &ResolvedArmy{
		Source:        army,
		Name:          army.Name,
		PointsLimit:   army.PointsLimit,
		Warlord:       army.Warlord,
		Notes:         army.Notes,
		CommandPoints: BattleForgedCommandPoints,
	}

	appendix := newAppendixBuilder(r.catalog)

	for _, detachment := range army.Detachments {
		rd, err := r.detachment(army, detachment, appendix)
		if err != nil {
			return nil, err
		}
		resolved.Detachments = append(resolved.Detachments, rd)
		resolved.TotalCost += rd.TotalCost
		resolved.CommandPoints += rd.Formation.CommandPoints
	}

	resolved.PointsToSpare = resolved.PointsLimit - resolved.TotalCost
	resolved.Appendix = appendix.appendix
	return resolved, nil
}

func (r *Resolver) detachment(army *roster.Army, detachment *roster.Detachment, appendix *appendixBuilder) (*ResolvedDetachment, error) {
	path := army.Path().Detachment(detachment.Name)

	formation, ok := r.catalog.Formation(detachment.Type)
	if !ok {
		return nil, errors.NewUnknownReferenceError(detachment.Type, "formation", path.String())
	}

	resolved := &ResolvedDetachment{
		Source:    detachment,
		Name:      detachment.Name,
		Type:      detachment.Type,
		Formation: formation,
	}

	for _, squad := range detachment.Units {
		rs, err := r.squad(path, squad, appendix)
		if err != nil {
			return nil, err
		}
		resolved.Units = append(resolved.Units, rs)
		resolved.TotalCost += rs.TotalCost
	}

	resolved.Slots = slotUsage(formation, resolved.Units)
	return resolved, nil
}
