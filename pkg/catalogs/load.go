package catalogs

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/errors"
)

// Load reads every catalog table from the configured filesystem. A failed
// table load aborts the whole catalog: everything downstream depends on it.
func (c *Catalog) Load() error {
	if c.options.readFS == nil {
		return nil // memory catalog, nothing to load
	}

	if err := c.loadWeapons(); err != nil {
		return err
	}
	if err := c.loadWargear(); err != nil {
		return err
	}
	if err := c.loadModels(); err != nil {
		return err
	}
	if err := c.loadAbilities(); err != nil {
		return err
	}
	if err := c.loadFormations(); err != nil {
		return err
	}
	// Not every game system has psychic rules.
	if err := c.loadPsykers(); err != nil && !errors.IsNotFound(err) {
		return err
	}

	c.buildItems()
	return nil
}

// row is one parsed CSV data row with header-based field access.
type row struct {
	file   string
	num    int // 1-based data row number, header excluded
	fields map[string]string
}

// get returns a required field value.
func (r row) get(field string) (string, error) {
	v, ok := r.fields[field]
	if !ok {
		return "", errors.NewCatalogRowError(r.file, r.num, field, "missing required field")
	}
	return v, nil
}

// points returns a required cost field.
func (r row) points(field string) (Points, error) {
	s, err := r.get(field)
	if err != nil {
		return 0, err
	}
	p, err := ParsePoints(s)
	if err != nil {
		return 0, errors.NewCatalogRowError(r.file, r.num, field, err.Error())
	}
	return p, nil
}

// integer returns a required integer field.
func (r row) integer(field string) (int, error) {
	s, err := r.get(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewCatalogRowError(r.file, r.num, field, "not an integer")
	}
	return n, nil
}

// readTable reads a CSV table and calls parse once per data row.
// The first row is the header. Returns ErrNotFound when the file is absent
// so optional tables can be skipped.
func (c *Catalog) readTable(file string, parse func(r row) error) error {
	f, err := c.options.readFS.Open(file)
	if err != nil {
		return errors.NewNotFoundError("catalog file", file)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return errors.NewCatalogRowError(file, 0, "", "empty file")
		}
		return errors.WrapParse("csv", file, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	num := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.WrapParse("csv", file, err)
		}
		num++

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				fields[name] = rec[i]
			}
		}
		if err := parse(row{file: file, num: num, fields: fields}); err != nil {
			return err
		}
	}
}

// splitAbilities parses a pipe-separated ability list field.
func splitAbilities(s string) []string {
	var abilities []string
	for _, a := range strings.Split(s, "|") {
		a = strings.TrimSpace(a)
		if a != "" {
			abilities = append(abilities, a)
		}
	}
	return abilities
}

// loadModels reads models.csv. Damage-variant rows attach to their base
// model, which must appear earlier in the file.
func (c *Catalog) loadModels() error {
	return c.readTable(constants.ModelsFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		if name == "" {
			return errors.NewCatalogRowError(r.file, r.num, "Name", "must not be empty")
		}
		cost, err := r.points("Cost")
		if err != nil {
			return err
		}

		model := &Model{Name: name, Cost: cost}
		stats := []struct {
			col string
			dst *string
		}{
			{"M", &model.Stats.Movement},
			{"WS", &model.Stats.WeaponSkill},
			{"BS", &model.Stats.BallisticSkill},
			{"S", &model.Stats.Strength},
			{"T", &model.Stats.Toughness},
			{"W", &model.Stats.Wounds},
			{"A", &model.Stats.Attacks},
			{"Ld", &model.Stats.Leadership},
			{"Sv", &model.Stats.Save},
		}
		for _, s := range stats {
			v, err := r.get(s.col)
			if err != nil {
				return err
			}
			*s.dst = v
		}

		if v, ok := r.fields["Abilities"]; ok {
			model.Abilities = splitAbilities(v)
		}
		if v := strings.TrimSpace(r.fields["IncludesWargear"]); v != "" && v != "0" {
			model.IncludesWargear = true
		}

		if base, threshold, ok := parseDamageVariantName(name); ok {
			baseModel, found := c.models.Get(base)
			if !found {
				return errors.NewCatalogRowError(r.file, r.num, "Name",
					"damage variant of unknown model "+strconv.Quote(base))
			}
			baseModel.DamageVariants = append(baseModel.DamageVariants,
				DamageVariant{Threshold: threshold, Model: model})
			return nil
		}
		return c.models.Add(name, model)
	})
}

// loadWeapons reads weapons.csv. Firing-mode rows group under a synthetic
// base entry created on first sight.
func (c *Catalog) loadWeapons() error {
	return c.readTable(constants.WeaponsFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		if name == "" {
			return errors.NewCatalogRowError(r.file, r.num, "Name", "must not be empty")
		}
		cost, err := r.points("Cost")
		if err != nil {
			return err
		}

		weapon := &Weapon{Name: name, Cost: cost}
		profile := []struct {
			col string
			dst *string
		}{
			{"Range", &weapon.Profile.Range},
			{"Type", &weapon.Profile.Type},
			{"S", &weapon.Profile.Strength},
			{"AP", &weapon.Profile.AP},
			{"D", &weapon.Profile.Damage},
		}
		for _, p := range profile {
			v, err := r.get(p.col)
			if err != nil {
				return err
			}
			*p.dst = v
		}
		if v, ok := r.fields["Abilities"]; ok {
			weapon.Abilities = splitAbilities(v)
		}

		if base, ok := parseWeaponModeName(name); ok {
			baseWeapon, found := c.weapons.Get(base)
			if !found {
				baseWeapon = &Weapon{Name: base, Cost: cost}
				if err := c.weapons.Add(base, baseWeapon); err != nil {
					return err
				}
			}
			baseWeapon.addMode(weapon)
			return nil
		}
		return c.weapons.Add(name, weapon)
	})
}

// loadWargear reads wargear.csv.
func (c *Catalog) loadWargear() error {
	return c.readTable(constants.WargearFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		cost, err := r.points("Cost")
		if err != nil {
			return err
		}
		gear := &Wargear{Name: name, Cost: cost}
		if v, ok := r.fields["Abilities"]; ok {
			gear.Abilities = splitAbilities(v)
		}
		return c.wargear.Add(name, gear)
	})
}

// loadAbilities reads abilities.csv.
func (c *Catalog) loadAbilities() error {
	return c.readTable(constants.AbilitiesFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		description, err := r.get("Description")
		if err != nil {
			return err
		}
		return c.abilities.Add(name, &Ability{Name: name, Description: description})
	})
}

// loadFormations reads formations.csv. Slot columns hold "min-max" ranges.
func (c *Catalog) loadFormations() error {
	return c.readTable(constants.FormationsFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		cp, err := r.integer("CP")
		if err != nil {
			return err
		}
		formation := &Formation{Name: name, CommandPoints: cp}
		for _, slot := range FormationSlots {
			v, err := r.get(slot)
			if err != nil {
				return err
			}
			min, max, err := parseSlotRange(v)
			if err != nil {
				return errors.NewCatalogRowError(r.file, r.num, slot, err.Error())
			}
			formation.Slots = append(formation.Slots, SlotLimit{Slot: slot, Min: min, Max: max})
		}
		formation.TransportsRatio = strings.TrimSpace(r.fields["Transports"])
		return c.formations.Add(name, formation)
	})
}

// loadPsykers reads psykers.csv.
func (c *Catalog) loadPsykers() error {
	return c.readTable(constants.PsykersFile, func(r row) error {
		name, err := r.get("Name")
		if err != nil {
			return err
		}
		psyker := &Psyker{Name: name}
		fields := []struct {
			col string
			dst *int
		}{
			{"PowersPerTurn", &psyker.PowersPerTurn},
			{"DenyPerTurn", &psyker.DenyPerTurn},
			{"NumKnownPowers", &psyker.NumKnownPowers},
		}
		for _, f := range fields {
			n, err := r.integer(f.col)
			if err != nil {
				return err
			}
			*f.dst = n
		}
		discipline, err := r.get("Discipline")
		if err != nil {
			return err
		}
		psyker.Discipline = discipline
		return c.psykers.Add(name, psyker)
	})
}

// parseSlotRange parses a "min-max" slot limit like "1-2".
func parseSlotRange(s string) (min, max int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New(`expected "min-max" range`)
	}
	min, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.New("range minimum is not an integer")
	}
	max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.New("range maximum is not an integer")
	}
	return min, max, nil
}
