package catalogs

import (
	"regexp"
	"strings"
)

// WeaponProfile holds a weapon's characteristic values.
type WeaponProfile struct {
	Range    string
	Type     string
	Strength string
	AP       string
	Damage   string
}

// WeaponColumns is the display order of weapon profile columns.
var WeaponColumns = []string{"Range", "Type", "S", "AP", "D"}

// Values returns the profile values in WeaponColumns order.
func (p WeaponProfile) Values() []string {
	return []string{p.Range, p.Type, p.Strength, p.AP, p.Damage}
}

// Weapon is a catalog entry for one weapon.
//
// A row named "Base [Mode]" is one firing mode of the weapon "Base". The
// modes group under a synthetic base entry whose own profile is empty;
// callers must go through Modes() to always see real profile records.
type Weapon struct {
	Name      string
	Cost      Points
	Profile   WeaponProfile
	Abilities []string

	modes []*Weapon
}

// Modes returns the weapon's firing-mode profiles, or the weapon itself
// when it has a single profile.
func (w *Weapon) Modes() []*Weapon {
	if len(w.modes) > 0 {
		return w.modes
	}
	return []*Weapon{w}
}

// addMode attaches a firing-mode profile to a base weapon.
func (w *Weapon) addMode(mode *Weapon) {
	w.modes = append(w.modes, mode)
}

// weaponModePattern matches names like "Missile Launcher [Krak]".
var weaponModePattern = regexp.MustCompile(`^(.*)\[.*\]$`)

// parseWeaponModeName extracts the base weapon name from a firing-mode
// row name. Plain names return ok=false.
func parseWeaponModeName(name string) (base string, ok bool) {
	m := weaponModePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
