package render

import (
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/musterpoint/muster/pkg/errors"
)

// marshalArmyMarkdown renders an army view as a Markdown document with
// the same content as the HTML page.
func marshalArmyMarkdown(view armyView) ([]byte, error) {
	var buf strings.Builder
	m := md.NewMarkdown(&buf)

	m.H1(view.Name)
	summary := [][]string{
		{"Points limit", view.PointsLimit},
		{"Points total", view.TotalCost},
		{"Points to spare", view.PointsToSpare},
		{"Command points", fmt.Sprintf("%d", view.CommandPoints)},
	}
	if view.Warlord != "" {
		summary = append([][]string{{"Warlord", view.Warlord}}, summary...)
	}
	m.Table(md.TableSet{Header: []string{"", ""}, Rows: summary})
	if view.IncludeNotes && view.Notes != "" {
		m.PlainText(view.Notes).LF()
	}

	for _, detachment := range view.Detachments {
		m.H2(fmt.Sprintf("%s (%s, %s pts)", detachment.Name, detachment.Type, detachment.Cost))
		markdownSlots(m, detachment.Slots)
		for _, squad := range detachment.Squads {
			markdownSquad(m, squad, view.IncludeNotes)
		}
	}

	m.H2("Army reference")
	markdownTable(m, "Models", view.Appendix.Models)
	markdownTable(m, "Weapons", view.Appendix.Weapons)
	markdownTable(m, "Wargear", view.Appendix.Wargear)
	markdownAbilities(m, view.Appendix.Abilities)
	markdownTable(m, "Psykers", view.Appendix.Psykers)

	if view.BuffNote {
		m.PlainText("\\* value includes squad equipment buffs").LF()
	}

	if err := m.Build(); err != nil {
		return nil, errors.WrapParse("markdown", view.Name, err)
	}
	return []byte(buf.String()), nil
}

func markdownSquad(m *md.Markdown, squad squadView, includeNotes bool) {
	m.H3(fmt.Sprintf("%s (%s, %d models, %s pts)", squad.Name, squad.Slot, squad.ModelCount, squad.Cost))

	rows := make([][]string, 0, len(squad.Breakdown))
	for _, row := range squad.Breakdown {
		subtotal := row.Subtotal
		if row.Included {
			subtotal = "included"
		}
		rows = append(rows, []string{row.Name, row.Kind, fmt.Sprintf("%d", row.Quantity), row.UnitCost, subtotal})
	}
	m.Table(md.TableSet{Header: []string{"Item", "Kind", "Qty", "Unit", "Subtotal"}, Rows: rows})

	markdownTable(m, "", squad.Models)
	markdownTable(m, "", squad.Weapons)
	markdownTable(m, "", squad.Wargear)
	markdownAbilities(m, squad.Abilities)
	markdownTable(m, "", squad.Psykers)

	if squad.Specialist != "" {
		m.PlainText(fmt.Sprintf("Specialist: %s", squad.Specialist)).LF()
	}
	if includeNotes && squad.Notes != "" {
		m.PlainText(squad.Notes).LF()
	}
}

func markdownSlots(m *md.Markdown, slots []slotView) {
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		note := slot.Violation
		rows = append(rows, []string{slot.Slot, fmt.Sprintf("%d", slot.Count), slot.Limit, note})
	}
	m.Table(md.TableSet{Header: []string{"Slot", "Used", "Limit", "Notes"}, Rows: rows})
}

func markdownTable(m *md.Markdown, title string, table tableView) {
	if table.Empty() {
		return
	}
	if title != "" {
		m.H3(title)
	}
	m.Table(md.TableSet{Header: table.Header, Rows: table.Rows})
}

func markdownAbilities(m *md.Markdown, abilities []abilityView) {
	if len(abilities) == 0 {
		return
	}
	rows := make([][]string, 0, len(abilities))
	for _, ability := range abilities {
		rows = append(rows, []string{ability.Name, ability.Description})
	}
	m.Table(md.TableSet{Header: []string{"Ability", "Description"}, Rows: rows})
}

// marshalIndexMarkdown renders the index page as Markdown.
func marshalIndexMarkdown(entries []IndexEntry) ([]byte, error) {
	var buf strings.Builder
	m := md.NewMarkdown(&buf)

	m.H1("Army lists")
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		link := fmt.Sprintf("[%s](%s)", entry.Name, entry.Filename)
		rows = append(rows, []string{
			link,
			fmt.Sprintf("%s / %s", entry.TotalCost, entry.PointsLimit),
			fmt.Sprintf("%d", entry.CommandPoints),
		})
	}
	m.Table(md.TableSet{Header: []string{"Army", "Points", "CP"}, Rows: rows})

	if err := m.Build(); err != nil {
		return nil, errors.WrapParse("markdown", "index", err)
	}
	return []byte(buf.String()), nil
}
