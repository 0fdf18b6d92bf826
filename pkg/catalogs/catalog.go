// Package catalogs provides the reference-table system for muster: models,
// weapons, wargear, abilities, formations, and psykers read from CSV files
// into name-keyed, declaration-ordered tables.
//
// A catalog is loaded once per run and is read-only afterwards. Every
// roster resolution shares the same catalog without copying, so lookups
// return tagged results instead of mutating anything.
//
// Example usage:
//
//	// Catalog from a data directory on disk
//	cat, err := catalogs.New(catalogs.WithPath("./data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Built-in starter catalog
//	cat, err = catalogs.New(catalogs.WithEmbedded())
//
//	item, ok := cat.Item("Bolt Rifle")
package catalogs

import (
	"io/fs"
	"os"

	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/errors"
)

// Catalog holds every reference table for one game system. Populated by
// Load, immutable afterwards.
type Catalog struct {
	options *catalogOptions

	models     *Table[*Model]
	weapons    *Table[*Weapon]
	wargear    *Table[*Wargear]
	abilities  *Table[*Ability]
	formations *Table[*Formation]
	psykers    *Table[*Psyker]

	// items is the combined cost-lookup namespace over weapons, models,
	// and wargear. Later tables shadow earlier ones on a name clash,
	// matching the load order below.
	items map[string]Item
}

// New creates a catalog with the given options and loads it if a
// filesystem is configured.
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		options:    catalogDefaults().apply(opts...),
		models:     NewTable[*Model]("models", constants.ModelsFile),
		weapons:    NewTable[*Weapon]("weapons", constants.WeaponsFile),
		wargear:    NewTable[*Wargear]("wargear", constants.WargearFile),
		abilities:  NewTable[*Ability]("abilities", constants.AbilitiesFile),
		formations: NewTable[*Formation]("formations", constants.FormationsFile),
		psykers:    NewTable[*Psyker]("psykers", constants.PsykersFile),
		items:      make(map[string]Item),
	}

	if cat.options.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// NewFromPath creates a catalog backed by CSV files in a directory.
func NewFromPath(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	return New(WithPath(path))
}

// NewFromFS creates a catalog from any fs.FS implementation.
func NewFromFS(fsys fs.FS) (*Catalog, error) {
	return New(WithFS(fsys))
}

// Models returns the models table.
func (c *Catalog) Models() *Table[*Model] {
	return c.models
}

// Weapons returns the weapons table.
func (c *Catalog) Weapons() *Table[*Weapon] {
	return c.weapons
}

// Wargear returns the wargear table.
func (c *Catalog) Wargear() *Table[*Wargear] {
	return c.wargear
}

// Abilities returns the abilities table.
func (c *Catalog) Abilities() *Table[*Ability] {
	return c.abilities
}

// Formations returns the formations table.
func (c *Catalog) Formations() *Table[*Formation] {
	return c.formations
}

// Psykers returns the psykers table.
func (c *Catalog) Psykers() *Table[*Psyker] {
	return c.psykers
}

// Item looks up a costed item by name across the combined model, weapon,
// and wargear namespace. The second return reports whether it exists.
func (c *Catalog) Item(name string) (Item, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Formation looks up a detachment type by name.
func (c *Catalog) Formation(name string) (*Formation, bool) {
	return c.formations.Get(name)
}

// Ability looks up an ability by name.
func (c *Catalog) Ability(name string) (*Ability, bool) {
	return c.abilities.Get(name)
}

// Psyker looks up a model's psychic profile, if it has one.
func (c *Catalog) Psyker(modelName string) (*Psyker, bool) {
	return c.psykers.Get(modelName)
}

// buildItems rebuilds the combined cost-lookup namespace. Order matters:
// models shadow weapons and wargear shadows both, matching the original
// table precedence.
func (c *Catalog) buildItems() {
	c.items = make(map[string]Item, c.weapons.Len()+c.models.Len()+c.wargear.Len())
	c.weapons.ForEach(func(name string, w *Weapon) bool {
		c.items[name] = Item{Kind: KindWeapon, Weapon: w}
		return true
	})
	c.models.ForEach(func(name string, m *Model) bool {
		c.items[name] = Item{Kind: KindModel, Model: m}
		return true
	})
	c.wargear.ForEach(func(name string, g *Wargear) bool {
		c.items[name] = Item{Kind: KindWargear, Wargear: g}
		return true
	})
}
