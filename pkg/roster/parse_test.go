package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
	"github.com/musterpoint/muster/pkg/roster"
)

const patrolList = `Name: Outremer Patrol
Points: 500
Warlord: Sergeant
Detachments:
  - Name: Spearhead
    Type: Patrol
    Units:
      - Name: Command Squad
        Slot: HQ
        Items:
          Sergeant: 1
          Rifle: 1
      - Name: First Squad
        Slot: Troops
        BaseCost: 10
        Items:
          Trooper: 5
          Rifle: 5
        Notes: Holds the center.
`

func TestParse(t *testing.T) {
	army, err := roster.Parse("patrol.yaml", []byte(patrolList))
	require.NoError(t, err)

	assert.Equal(t, "Outremer Patrol", army.Name)
	assert.Equal(t, catalogs.Points(500), army.PointsLimit)
	assert.Equal(t, "Sergeant", army.Warlord)
	assert.Equal(t, "patrol.yaml", army.File)

	require.Len(t, army.Detachments, 1)
	detachment := army.Detachments[0]
	assert.Equal(t, "Spearhead", detachment.Name)
	assert.Equal(t, "Patrol", detachment.Type)

	require.Len(t, detachment.Units, 2)
	first := detachment.Units[1]
	assert.Equal(t, "First Squad", first.Name)
	assert.Equal(t, "Troops", first.Slot)
	assert.Equal(t, catalogs.Points(10), first.BaseCost)
	assert.Equal(t, "Holds the center.", first.Notes)
}

func TestParsePreservesItemOrder(t *testing.T) {
	doc := `Name: Ordered
Points: 100
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Squad
        Slot: Troops
        Items:
          Zulu: 1
          Alpha: 2
          Mike: 3
`
	army, err := roster.Parse("ordered.yaml", []byte(doc))
	require.NoError(t, err)

	items := army.Detachments[0].Units[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Zulu", items[0].Name)
	assert.Equal(t, "Alpha", items[1].Name)
	assert.Equal(t, "Mike", items[2].Name)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{
			name: "missing army name",
			doc:  "Points: 100\n",
			path: "",
		},
		{
			name: "missing points limit",
			doc:  "Name: Host\n",
			path: `army "Host"`,
		},
		{
			name: "negative points limit",
			doc:  "Name: Host\nPoints: -50\n",
			path: `army "Host"`,
		},
		{
			name: "detachment without name",
			doc: `Name: Host
Points: 100
Detachments:
  - Type: Patrol
`,
			path: `army "Host"`,
		},
		{
			name: "detachment without type",
			doc: `Name: Host
Points: 100
Detachments:
  - Name: Main
`,
			path: `army "Host" > detachment "Main"`,
		},
		{
			name: "squad without slot",
			doc: `Name: Host
Points: 100
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Squad
`,
			path: `army "Host" > detachment "Main" > squad "Squad"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roster.Parse("bad.yaml", []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsSchemaError(err))

			var schemaErr *errors.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, "bad.yaml", schemaErr.File)
			assert.Equal(t, tt.path, schemaErr.Path)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := roster.Parse("bad.yaml", []byte("Name: [unclosed\n"))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
}

func TestParseNegativeQuantity(t *testing.T) {
	doc := `Name: Host
Points: 100
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Squad
        Slot: Troops
        Items:
          Trooper: -2
`
	_, err := roster.Parse("bad.yaml", []byte(doc))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidOverride(err))

	var overrideErr *errors.CostOverrideError
	require.ErrorAs(t, err, &overrideErr)
	assert.Contains(t, overrideErr.Path, `item "Trooper"`)
}

func TestParseNegativeBaseCost(t *testing.T) {
	doc := `Name: Host
Points: 100
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Squad
        Slot: Troops
        BaseCost: -5
`
	_, err := roster.Parse("bad.yaml", []byte(doc))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidOverride(err))
}

func TestParseZeroQuantityKept(t *testing.T) {
	doc := `Name: Host
Points: 100
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Squad
        Slot: Troops
        Items:
          Trooper: 0
`
	army, err := roster.Parse("ok.yaml", []byte(doc))
	require.NoError(t, err)

	items := army.Detachments[0].Units[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestPathString(t *testing.T) {
	path := roster.Path{}.Army("Host").Detachment("Main").Squad("First").Item("Rifle")
	assert.Equal(t, `army "Host" > detachment "Main" > squad "First" > item "Rifle"`, path.String())
}

func TestSquadLevel(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{6, 1},
		{7, 2},
		{11, 2},
		{12, 3},
		{40, 3},
	}
	for _, tt := range tests {
		squad := &roster.Squad{Experience: tt.experience}
		assert.Equal(t, tt.want, squad.Level(), "experience %d", tt.experience)
	}
}
