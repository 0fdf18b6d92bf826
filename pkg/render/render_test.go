package render_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/render"
	"github.com/musterpoint/muster/pkg/resolve"
	"github.com/musterpoint/muster/pkg/roster"
)

func resolvedArmy(t *testing.T) *resolve.ResolvedArmy {
	t.Helper()
	fsys := fstest.MapFS{
		"models.csv": &fstest.MapFile{Data: []byte(`Name,Cost,M,WS,BS,S,T,W,A,Ld,Sv,Abilities,IncludesWargear
Trooper,5,6,4+,4+,3,3,1,1,6,5+,,
Sergeant,7,6,3+,3+,3,3,1,2,7,5+,Leadership Aura,
`)},
		"weapons.csv": &fstest.MapFile{Data: []byte(`Name,Cost,Range,Type,S,AP,D,Abilities
Rifle,2,24,Rapid Fire 1,3,0,1,
Frag Grenade,0,6,Grenade D6,3,0,1,
`)},
		"wargear.csv": &fstest.MapFile{Data: []byte(`Name,Cost,Abilities
Auxiliary Grenade Launcher,10,Auxiliary Grenade Launcher
`)},
		"abilities.csv": &fstest.MapFile{Data: []byte(`Name,Description
Leadership Aura,Friendly units within 6in may use this model's Leadership.
Auxiliary Grenade Launcher,Grenades thrown by this model have an extended range of 30in.
`)},
		"formations.csv": &fstest.MapFile{Data: []byte(`Name,CP,HQ,Troops,Fast Attack,Elites,Heavy Support,Transports
Patrol,0,1-1,1-3,0-2,0-2,0-2,1:1
`)},
	}
	catalog, err := catalogs.NewFromFS(fsys)
	require.NoError(t, err)

	army, err := roster.Parse("lists/host.yaml", []byte(`Name: Host of Examples
Points: 200
Warlord: Sergeant
Notes: A demonstration muster.
Detachments:
  - Name: Main
    Type: Patrol
    Units:
      - Name: Command
        Slot: HQ
        Items:
          Sergeant: 1
          Rifle: 1
      - Name: Grenadiers
        Slot: Troops
        Notes: Keep them close.
        Items:
          Trooper: 4
          Frag Grenade: 4
          Auxiliary Grenade Launcher: 1
`))
	require.NoError(t, err)

	resolved, err := resolve.New(catalog).Army(army)
	require.NoError(t, err)
	return resolved
}

func TestArmyHTML(t *testing.T) {
	renderer, err := render.New(render.Options{IncludeNotes: true})
	require.NoError(t, err)

	doc, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)

	assert.Equal(t, "Host of Examples", doc.Name)
	assert.Equal(t, "host.html", doc.Filename)

	html := string(doc.Content)
	assert.Contains(t, html, "<h1>Host of Examples</h1>")
	assert.Contains(t, html, "Sergeant")
	assert.Contains(t, html, "Keep them close.")
	assert.Contains(t, html, "style.css")
	// Squad totals land in the card headers.
	assert.Contains(t, html, "30 pts") // 4 troopers, 4 frags, launcher
	assert.Contains(t, html, "9 pts")  // sergeant and rifle
}

func TestArmyHTMLOmitsNotesByDefault(t *testing.T) {
	renderer, err := render.New(render.Options{})
	require.NoError(t, err)

	doc, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)
	assert.NotContains(t, string(doc.Content), "Keep them close.")
}

func TestArmyBuffedStats(t *testing.T) {
	renderer, err := render.New(render.Options{ShowBuffedStats: true})
	require.NoError(t, err)

	doc, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)

	html := string(doc.Content)
	assert.Contains(t, html, "30*")
	assert.Contains(t, html, "squad equipment buffs")

	plain, err := render.New(render.Options{})
	require.NoError(t, err)
	doc, err = plain.Army(resolvedArmy(t))
	require.NoError(t, err)
	assert.NotContains(t, string(doc.Content), "30*")
}

func TestRenderingIsDeterministic(t *testing.T) {
	renderer, err := render.New(render.Options{IncludeNotes: true, ShowBuffedStats: true})
	require.NoError(t, err)

	first, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)
	second, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestArmyMarkdown(t *testing.T) {
	renderer, err := render.New(render.Options{Format: render.FormatMarkdown})
	require.NoError(t, err)

	doc, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)

	assert.Equal(t, "host.md", doc.Filename)
	markdown := string(doc.Content)
	assert.Contains(t, markdown, "# Host of Examples")
	assert.Contains(t, markdown, "Trooper")
	assert.Contains(t, markdown, "Rapid Fire 1")
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := render.New(render.Options{Format: "pdf"})
	require.Error(t, err)
}

func TestIndex(t *testing.T) {
	renderer, err := render.New(render.Options{})
	require.NoError(t, err)

	doc, err := renderer.Index([]*resolve.ResolvedArmy{resolvedArmy(t)})
	require.NoError(t, err)

	assert.Equal(t, "index.html", doc.Filename)
	html := string(doc.Content)
	assert.Contains(t, html, `href="host.html"`)
	assert.Contains(t, html, "Host of Examples")
	assert.Contains(t, html, "39 / 200")
}

func TestWriteFiles(t *testing.T) {
	renderer, err := render.New(render.Options{})
	require.NoError(t, err)

	army, err := renderer.Army(resolvedArmy(t))
	require.NoError(t, err)
	index, err := renderer.Index([]*resolve.ResolvedArmy{resolvedArmy(t)})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "html")
	require.NoError(t, renderer.WriteFiles(dir, []*render.Document{army, index}))

	written, err := os.ReadFile(filepath.Join(dir, "host.html"))
	require.NoError(t, err)
	assert.Equal(t, army.Content, written)

	_, err = os.Stat(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "style.css"))
	require.NoError(t, err)
}
