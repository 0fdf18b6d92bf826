package catalogs

import (
	"regexp"
	"strconv"
	"strings"
)

// Statline holds a model's characteristic values. Values stay strings:
// source data mixes plain numbers with notations like `3+` and `6"`.
type Statline struct {
	Movement       string
	WeaponSkill    string
	BallisticSkill string
	Strength       string
	Toughness      string
	Wounds         string
	Attacks        string
	Leadership     string
	Save           string
}

// StatColumns is the display order of statline columns.
var StatColumns = []string{"M", "WS", "BS", "S", "T", "W", "A", "Ld", "Sv"}

// Values returns the statline values in StatColumns order.
func (s Statline) Values() []string {
	return []string{
		s.Movement, s.WeaponSkill, s.BallisticSkill, s.Strength,
		s.Toughness, s.Wounds, s.Attacks, s.Leadership, s.Save,
	}
}

// Model is a catalog entry for one model profile.
//
// A row named "Base (NW)" is a damage variant of the "Base" model whose
// profile applies once the model is down to N wounds. Variants attach to
// their base record and are never looked up directly.
type Model struct {
	Name      string
	Cost      Points
	Stats     Statline
	Abilities []string

	// IncludesWargear marks models whose cost already covers their
	// weapons and wargear.
	IncludesWargear bool

	// DamageVariants holds degraded profiles in file declaration order.
	DamageVariants []DamageVariant
}

// DamageVariant is a degraded model profile that activates at or below
// a wound threshold.
type DamageVariant struct {
	Threshold int
	Model     *Model
}

// damageVariantPattern matches names like "Robot (10W)".
var damageVariantPattern = regexp.MustCompile(`^(.*)\(([0-9]+)W\)$`)

// parseDamageVariantName splits a damage-variant row name into its base
// model name and wound threshold. Plain names return ok=false.
func parseDamageVariantName(name string) (base string, threshold int, ok bool) {
	m := damageVariantPattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	threshold, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), threshold, true
}
