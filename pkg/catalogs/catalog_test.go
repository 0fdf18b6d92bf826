package catalogs_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
)

// testFS builds an in-memory catalog filesystem. Pass overrides to replace
// or remove (empty string) individual tables.
func testFS(overrides map[string]string) fstest.MapFS {
	files := map[string]string{
		"models.csv": `Name,Cost,M,WS,BS,S,T,W,A,Ld,Sv,Abilities,IncludesWargear
Trooper,5,6,4+,4+,3,3,1,1,6,5+,,
Sergeant,7,6,3+,3+,3,3,1,2,7,5+,Leadership Aura,
Sentinel Walker,35,8,4+,4+,5,5,6,2,7,3+,,
Sentinel Walker (3W),0,5,5+,4+,5,5,6,1,7,3+,,
Crawler,70,10,6+,4+,6,6,10,3,7,3+,,1
`,
		"weapons.csv": `Name,Cost,Range,Type,S,AP,D,Abilities
Rifle,2,24,Rapid Fire 1,3,0,1,
Frag Grenade,0,6,Grenade D6,3,0,1,
Krak Grenade,0,6,Grenade 1,6,-1,D3,
Missile Launcher [Frag],20,48,Heavy D6,4,0,1,
Missile Launcher [Krak],20,48,Heavy 1,8,-2,D6,
`,
		"wargear.csv": `Name,Cost,Abilities
Comm-link,5,Relay Orders
Auxiliary Grenade Launcher,10,Auxiliary Grenade Launcher
`,
		"abilities.csv": `Name,Description
Leadership Aura,Friendly units within 6in may use this model's Leadership.
Relay Orders,Once per turn pass an order to another unit.
Auxiliary Grenade Launcher,Grenades thrown by this model have an extended range of 30in.
`,
		"formations.csv": `Name,CP,HQ,Troops,Fast Attack,Elites,Heavy Support,Transports
Patrol,0,1-1,1-3,0-2,0-2,0-2,1:1
Battalion,3,2-3,3-6,0-3,0-6,0-3,1:1
`,
		"psykers.csv": `Name,PowersPerTurn,DenyPerTurn,NumKnownPowers,Discipline
Field Psyker,1,1,2,Telepathica
`,
	}
	for name, content := range overrides {
		if content == "" {
			delete(files, name)
			continue
		}
		files[name] = content
	}

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func loadCatalog(t *testing.T, overrides map[string]string) *catalogs.Catalog {
	t.Helper()
	catalog, err := catalogs.NewFromFS(testFS(overrides))
	require.NoError(t, err)
	return catalog
}

func TestLoadModels(t *testing.T) {
	catalog := loadCatalog(t, nil)

	trooper, ok := catalog.Models().Get("Trooper")
	require.True(t, ok)
	assert.Equal(t, catalogs.Points(5), trooper.Cost)
	assert.Equal(t, "6", trooper.Stats.Movement)
	assert.Equal(t, "4+", trooper.Stats.WeaponSkill)
	assert.Equal(t, "5+", trooper.Stats.Save)
	assert.False(t, trooper.IncludesWargear)

	sergeant, ok := catalog.Models().Get("Sergeant")
	require.True(t, ok)
	assert.Equal(t, []string{"Leadership Aura"}, sergeant.Abilities)

	crawler, ok := catalog.Models().Get("Crawler")
	require.True(t, ok)
	assert.True(t, crawler.IncludesWargear)
}

func TestLoadDamageVariants(t *testing.T) {
	catalog := loadCatalog(t, nil)

	walker, ok := catalog.Models().Get("Sentinel Walker")
	require.True(t, ok)
	require.Len(t, walker.DamageVariants, 1)

	variant := walker.DamageVariants[0]
	assert.Equal(t, 3, variant.Threshold)
	assert.Equal(t, "5", variant.Model.Stats.Movement)

	// Variant rows do not become standalone entries.
	assert.False(t, catalog.Models().Exists("Sentinel Walker (3W)"))
}

func TestLoadDamageVariantWithoutBase(t *testing.T) {
	_, err := catalogs.NewFromFS(testFS(map[string]string{
		"models.csv": `Name,Cost,M,WS,BS,S,T,W,A,Ld,Sv
Ghost (2W),0,6,4+,4+,3,3,3,1,6,5+
`,
	}))
	require.Error(t, err)
	assert.True(t, errors.IsMalformedRow(err))
}

func TestLoadWeaponModes(t *testing.T) {
	catalog := loadCatalog(t, nil)

	launcher, ok := catalog.Weapons().Get("Missile Launcher")
	require.True(t, ok)
	assert.Equal(t, catalogs.Points(20), launcher.Cost)

	modes := launcher.Modes()
	require.Len(t, modes, 2)
	assert.Equal(t, "Missile Launcher [Frag]", modes[0].Name)
	assert.Equal(t, "Missile Launcher [Krak]", modes[1].Name)

	// A plain weapon's modes are itself.
	rifle, ok := catalog.Weapons().Get("Rifle")
	require.True(t, ok)
	modes = rifle.Modes()
	require.Len(t, modes, 1)
	assert.Equal(t, "Rifle", modes[0].Name)
}

func TestLoadFormations(t *testing.T) {
	catalog := loadCatalog(t, nil)

	battalion, ok := catalog.Formation("Battalion")
	require.True(t, ok)
	assert.Equal(t, 3, battalion.CommandPoints)
	assert.Equal(t, "1:1", battalion.TransportsRatio)

	troops, ok := battalion.Slot("Troops")
	require.True(t, ok)
	assert.Equal(t, 3, troops.Min)
	assert.Equal(t, 6, troops.Max)
}

func TestLoadPsykersOptional(t *testing.T) {
	catalog := loadCatalog(t, map[string]string{"psykers.csv": ""})
	assert.Equal(t, 0, catalog.Psykers().Len())

	catalog = loadCatalog(t, nil)
	psyker, ok := catalog.Psyker("Field Psyker")
	require.True(t, ok)
	assert.Equal(t, 2, psyker.NumKnownPowers)
	assert.Equal(t, "Telepathica", psyker.Discipline)
}

func TestLoadMissingTableFails(t *testing.T) {
	_, err := catalogs.NewFromFS(testFS(map[string]string{"weapons.csv": ""}))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadDuplicateEntry(t *testing.T) {
	_, err := catalogs.NewFromFS(testFS(map[string]string{
		"wargear.csv": `Name,Cost,Abilities
Comm-link,5,
Comm-link,6,
`,
	}))
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateEntry(err))

	var dupErr *errors.DuplicateEntryError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Comm-link", dupErr.Name)
}

func TestLoadMalformedCost(t *testing.T) {
	_, err := catalogs.NewFromFS(testFS(map[string]string{
		"wargear.csv": `Name,Cost,Abilities
Comm-link,lots,
`,
	}))
	require.Error(t, err)
	assert.True(t, errors.IsMalformedRow(err))

	var rowErr *errors.CatalogRowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "wargear.csv", rowErr.File)
	assert.Equal(t, 1, rowErr.Row)
	assert.Equal(t, "Cost", rowErr.Field)
}

func TestDeclarationOrderPreserved(t *testing.T) {
	catalog := loadCatalog(t, nil)

	names := catalog.Models().Names()
	assert.Equal(t, []string{"Trooper", "Sergeant", "Sentinel Walker", "Crawler"}, names)

	names = catalog.Weapons().Names()
	assert.Equal(t, []string{"Rifle", "Frag Grenade", "Krak Grenade", "Missile Launcher"}, names)
}

func TestItemLookup(t *testing.T) {
	catalog := loadCatalog(t, nil)

	item, ok := catalog.Item("Trooper")
	require.True(t, ok)
	assert.Equal(t, catalogs.KindModel, item.Kind)
	assert.Equal(t, catalogs.Points(5), item.Cost())

	item, ok = catalog.Item("Rifle")
	require.True(t, ok)
	assert.Equal(t, catalogs.KindWeapon, item.Kind)

	item, ok = catalog.Item("Comm-link")
	require.True(t, ok)
	assert.Equal(t, catalogs.KindWargear, item.Kind)

	_, ok = catalog.Item("Sergent")
	assert.False(t, ok)
}

// Wargear shadows models and weapons of the same name in the combined
// item namespace.
func TestItemNamespacePrecedence(t *testing.T) {
	catalog := loadCatalog(t, map[string]string{
		"wargear.csv": `Name,Cost,Abilities
Rifle,9,
`,
	})

	item, ok := catalog.Item("Rifle")
	require.True(t, ok)
	assert.Equal(t, catalogs.KindWargear, item.Kind)
	assert.Equal(t, catalogs.Points(9), item.Cost())
}

func TestParsePoints(t *testing.T) {
	p, err := catalogs.ParsePoints("12.5")
	require.NoError(t, err)
	assert.Equal(t, catalogs.Points(12.5), p)
	assert.Equal(t, "12.5", p.String())

	p, err = catalogs.ParsePoints("40")
	require.NoError(t, err)
	assert.Equal(t, "40", p.String())

	_, err = catalogs.ParsePoints("-3")
	require.Error(t, err)

	_, err = catalogs.ParsePoints("free")
	require.Error(t, err)
}

func TestNewWithoutSourceIsEmpty(t *testing.T) {
	catalog, err := catalogs.New()
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Models().Len())
}

func TestTableAccess(t *testing.T) {
	table := catalogs.NewTable[int]("number", "numbers.csv")
	require.NoError(t, table.Add("one", 1))
	require.NoError(t, table.Add("two", 2))

	err := table.Add("one", 11)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateEntry(err))

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []int{1, 2}, table.List())

	var seen []string
	table.ForEach(func(name string, entry int) bool {
		seen = append(seen, name)
		return true
	})
	assert.Equal(t, []string{"one", "two"}, seen)
}
