package render

import (
	"fmt"
	"strings"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/resolve"
)

// View models carry only precomputed strings so templates and the
// markdown builder stay free of arithmetic and stay byte-deterministic.

type armyView struct {
	Name          string
	Warlord       string
	Notes         string
	PointsLimit   string
	TotalCost     string
	PointsToSpare string
	CommandPoints int
	Detachments   []detachmentView
	Appendix      appendixView
	Stylesheet    string
	PrintLayout   bool
	IncludeNotes  bool
	BuffNote      bool
}

type detachmentView struct {
	Name   string
	Type   string
	Cost   string
	Slots  []slotView
	Squads []squadView
}

type slotView struct {
	Slot      string
	Count     int
	Limit     string
	Violation string
}

type squadView struct {
	Name       string
	Slot       string
	Cost       string
	ModelCount int
	Specialist string
	Demeanour  string
	Experience int
	Portrait   string
	Notes      string
	Breakdown  []breakdownView
	Models     tableView
	Weapons    tableView
	Wargear    tableView
	Abilities  []abilityView
	Psykers    tableView
}

type breakdownView struct {
	Name     string
	Kind     string
	Quantity int
	UnitCost string
	Subtotal string
	Included bool
}

type abilityView struct {
	Name        string
	Description string
}

type tableView struct {
	Header []string
	Rows   [][]string
}

func (t tableView) Empty() bool { return len(t.Rows) == 0 }

type appendixView struct {
	Models    tableView
	Weapons   tableView
	Wargear   tableView
	Abilities []abilityView
	Psykers   tableView
}

func (o Options) armyView(army *resolve.ResolvedArmy) armyView {
	view := armyView{
		Name:          army.Name,
		Warlord:       army.Warlord,
		PointsLimit:   army.PointsLimit.String(),
		TotalCost:     army.TotalCost.String(),
		PointsToSpare: army.PointsToSpare.String(),
		CommandPoints: army.CommandPoints,
		Stylesheet:    "style.css",
		PrintLayout:   o.PrintLayout,
		IncludeNotes:  o.IncludeNotes,
	}
	if o.IncludeNotes {
		view.Notes = army.Notes
	}

	for _, detachment := range army.Detachments {
		dv := detachmentView{
			Name: detachment.Name,
			Type: detachment.Type,
			Cost: detachment.TotalCost.String(),
		}
		for _, slot := range detachment.Slots {
			dv.Slots = append(dv.Slots, slotView{
				Slot:      slot.Slot,
				Count:     slot.Count,
				Limit:     fmt.Sprintf("%d-%d", slot.Min, slot.Max),
				Violation: slot.Violation,
			})
		}
		for _, squad := range detachment.Units {
			sv := o.squadView(squad)
			if sv.buffed {
				view.BuffNote = true
			}
			dv.Squads = append(dv.Squads, sv.squadView)
		}
		view.Detachments = append(view.Detachments, dv)
	}

	view.Appendix = o.appendixView(army.Appendix)
	return view
}

type builtSquadView struct {
	squadView
	buffed bool
}

func (o Options) squadView(squad *resolve.ResolvedSquad) builtSquadView {
	view := builtSquadView{squadView: squadView{
		Name:       squad.Name,
		Slot:       squad.Slot,
		Cost:       squad.TotalCost.String(),
		ModelCount: squad.ModelCount,
		Specialist: squad.Source.Specialist,
		Demeanour:  squad.Source.Demeanour,
		Experience: squad.Source.Experience,
		Portrait:   squad.Source.Portrait,
	}}
	if o.IncludeNotes {
		view.squadView.Notes = squad.Source.Notes
	}

	for _, row := range squad.Breakdown {
		view.squadView.Breakdown = append(view.squadView.Breakdown, breakdownView{
			Name:     row.Name,
			Kind:     string(row.Kind),
			Quantity: row.Quantity,
			UnitCost: row.UnitCost.String(),
			Subtotal: row.Subtotal.String(),
			Included: row.Included,
		})
	}

	view.squadView.Models = modelTable(squad.Models)
	weapons, buffed := o.weaponTable(squad)
	view.squadView.Weapons = weapons
	view.buffed = buffed
	view.squadView.Wargear = wargearTable(squad.Wargear)
	view.squadView.Abilities = abilityViews(squad.Abilities)
	view.squadView.Psykers = psykerTable(squad.Psykers)
	return view
}

func (o Options) appendixView(appendix resolve.Appendix) appendixView {
	return appendixView{
		Models:    modelTable(appendix.Models),
		Weapons:   plainWeaponTable(appendix.Weapons),
		Wargear:   wargearTable(appendix.Wargear),
		Abilities: abilityViews(appendix.Abilities),
		Psykers:   psykerTable(appendix.Psykers),
	}
}

func modelTable(models []*catalogs.Model) tableView {
	table := tableView{Header: append([]string{"Model"}, catalogs.StatColumns...)}
	for _, model := range models {
		table.Rows = append(table.Rows, append([]string{model.Name}, model.Stats.Values()...))
		for _, variant := range model.DamageVariants {
			name := fmt.Sprintf("%s (%dW)", model.Name, variant.Threshold)
			table.Rows = append(table.Rows, append([]string{name}, variant.Model.Stats.Values()...))
		}
	}
	return table
}

// weaponTable renders one profile row per firing mode. With buffed stats
// enabled, overlay ranges are marked with an asterisk.
func (o Options) weaponTable(squad *resolve.ResolvedSquad) (tableView, bool) {
	table := tableView{Header: append([]string{"Weapon"}, catalogs.WeaponColumns...)}
	buffed := false
	for _, weapon := range squad.Weapons {
		for _, mode := range weapon.Modes() {
			values := mode.Profile.Values()
			if o.ShowBuffedStats {
				if overlay, ok := squad.BuffedRange(mode.Name); ok {
					values[0] = overlay + "*"
					buffed = true
				}
			}
			table.Rows = append(table.Rows, append([]string{mode.Name}, values...))
		}
	}
	return table, buffed
}

func plainWeaponTable(weapons []*catalogs.Weapon) tableView {
	table := tableView{Header: append([]string{"Weapon"}, catalogs.WeaponColumns...)}
	for _, weapon := range weapons {
		for _, mode := range weapon.Modes() {
			table.Rows = append(table.Rows, append([]string{mode.Name}, mode.Profile.Values()...))
		}
	}
	return table
}

func wargearTable(wargear []*catalogs.Wargear) tableView {
	table := tableView{Header: []string{"Wargear", "Abilities"}}
	for _, gear := range wargear {
		table.Rows = append(table.Rows, []string{gear.Name, strings.Join(gear.Abilities, ", ")})
	}
	return table
}

func abilityViews(abilities []*catalogs.Ability) []abilityView {
	views := make([]abilityView, 0, len(abilities))
	for _, ability := range abilities {
		views = append(views, abilityView{Name: ability.Name, Description: ability.Description})
	}
	return views
}

func psykerTable(psykers []*catalogs.Psyker) tableView {
	table := tableView{Header: []string{"Psyker", "Powers/Turn", "Deny/Turn", "Known Powers", "Discipline"}}
	for _, psyker := range psykers {
		table.Rows = append(table.Rows, []string{
			psyker.Name,
			fmt.Sprintf("%d", psyker.PowersPerTurn),
			fmt.Sprintf("%d", psyker.DenyPerTurn),
			fmt.Sprintf("%d", psyker.NumKnownPowers),
			psyker.Discipline,
		})
	}
	return table
}
