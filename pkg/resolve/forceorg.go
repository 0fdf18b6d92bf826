package resolve

import (
	"fmt"

	"github.com/musterpoint/muster/pkg/catalogs"
)

// slotUsage builds the force-organisation chart for one detachment. Slots
// appear in formation order with the Transports row last. Limit violations
// are recorded as annotations.
func slotUsage(formation *catalogs.Formation, units []*ResolvedSquad) []SlotUsage {
	counts := make(map[string]int)
	for _, unit := range units {
		counts[unit.Slot]++
	}

	usage := make([]SlotUsage, 0, len(formation.Slots)+1)
	for _, limit := range formation.Slots {
		row := SlotUsage{
			Slot:  limit.Slot,
			Count: counts[limit.Slot],
			Min:   limit.Min,
			Max:   limit.Max,
		}
		switch {
		case row.Count < row.Min:
			row.Violation = fmt.Sprintf("below the formation minimum of %d", row.Min)
		case row.Count > row.Max:
			row.Violation = fmt.Sprintf("exceeds the formation maximum of %d", row.Max)
		}
		usage = append(usage, row)
	}

	// Transports are limited per escorted squad rather than by a fixed
	// range: a 1:1 ratio allows one transport per non-transport squad.
	if formation.TransportsRatio == "1:1" {
		row := SlotUsage{
			Slot:  catalogs.TransportsSlot,
			Count: counts[catalogs.TransportsSlot],
			Max:   len(units) - counts[catalogs.TransportsSlot],
		}
		if row.Count > row.Max {
			row.Violation = fmt.Sprintf("exceeds one transport per squad (limit %d)", row.Max)
		}
		usage = append(usage, row)
	}

	return usage
}
