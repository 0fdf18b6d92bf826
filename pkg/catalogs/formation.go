package catalogs

// FormationSlots is the column order of force-organization slots in the
// formations table and in rendered charts.
var FormationSlots = []string{"HQ", "Troops", "Fast Attack", "Elites", "Heavy Support"}

// TransportsSlot is the slot name handled outside the fixed slot columns:
// its limit depends on the rest of the detachment.
const TransportsSlot = "Transports"

// SlotLimit is the allowed unit count range for one force-org slot.
type SlotLimit struct {
	Slot string
	Min  int
	Max  int
}

// Formation is a catalog entry for a detachment type: its command point
// value and the force-organization slots it allows.
type Formation struct {
	Name          string
	CommandPoints int

	// Slots holds one limit per entry of FormationSlots, in that order.
	Slots []SlotLimit

	// TransportsRatio expresses the transports limit relative to the
	// other units in the detachment. "1:1" allows one transport per
	// non-transport unit. Empty means no transports allowed.
	TransportsRatio string
}

// Slot returns the limit for a named slot and whether the formation has it.
func (f *Formation) Slot(name string) (SlotLimit, bool) {
	for _, s := range f.Slots {
		if s.Slot == name {
			return s, true
		}
	}
	return SlotLimit{}, false
}
