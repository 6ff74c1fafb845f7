package locator

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// desktopDoc mirrors a small accessibility tree:
//
//	Pane "Desktop" 1-0
//	  Window "App" 1-1
//	    Pane "Body" 1-2
//	      Button "OK" 1-3
//	      Button "Cancel" 1-4
//	      Text "OK" 1-5
//	    Pane "Sidebar" 1-6
//	      Button "OK" 1-7
//
// "OK" appears three times, so it never qualifies as a unique anchor;
// "Cancel", "Body" and "Sidebar" do.
func desktopDoc(t *testing.T) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<Pane RtID="1-0" Name="Desktop">
  <Window RtID="1-1" Name="App">
    <Pane RtID="1-2" Name="Body">
      <Button RtID="1-3" Name="OK"/>
      <Button RtID="1-4" Name="Cancel"/>
      <Text RtID="1-5" Name="OK"/>
    </Pane>
    <Pane RtID="1-6" Name="Sidebar">
      <Button RtID="1-7" Name="OK"/>
    </Pane>
  </Window>
</Pane>`)
	require.NoError(t, err)
	return doc
}

// dupDoc has no unique Name anywhere, forcing a full root-anchored climb.
func dupDoc(t *testing.T) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<Pane RtID="9-0" Name="dup">
  <Group RtID="9-1" Name="dup"/>
  <Group RtID="9-2" Name="dup">
    <Button RtID="9-3" Name="dup"/>
  </Group>
</Pane>`)
	require.NoError(t, err)
	return doc
}

func TestGenerate_UniqueNameShortcut(t *testing.T) {
	doc := desktopDoc(t)
	assert.Equal(t, `//*[@Name="Cancel"]`, Generate(doc, "1-4"))
}

func TestGenerate_UniqueIDPreferredOverName(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<Pane RtID="2-0" Name="root">
  <Button RtID="2-1" id="submit" Name="Go"/>
</Pane>`)
	require.NoError(t, err)
	assert.Equal(t, `//*[@id="submit"]`, Generate(doc, "2-1"))
}

func TestGenerate_AncestorNameUniqueShortens(t *testing.T) {
	// The climb from the "OK" button under "Body" stops at its parent Pane,
	// whose Name is document-unique, and anchors the path with the
	// descendant axis instead of spelling out the route from the root.
	doc := desktopDoc(t)
	assert.Equal(t, `//Pane[@Name="Body"]/Button[1]`, Generate(doc, "1-3"))
}

func TestGenerate_RootAnchoredWithPositions(t *testing.T) {
	doc := dupDoc(t)
	assert.Equal(t, "/Pane/Group[2]/Button", Generate(doc, "9-3"))
}

func TestGenerate_UnknownRtID(t *testing.T) {
	doc := desktopDoc(t)
	assert.Equal(t, NotFound, Generate(doc, "7-7-7"))
}

func TestGenerate_EmptyDocument(t *testing.T) {
	assert.Equal(t, NotFound, Generate(etree.NewDocument(), "1-0"))
}

func TestGenerate_Deterministic(t *testing.T) {
	doc := desktopDoc(t)
	for _, rtid := range []string{"1-3", "1-4", "1-7"} {
		first := Generate(doc, rtid)
		assert.Equal(t, first, Generate(doc, rtid), "rtid %s", rtid)
	}
}

func TestGenerate_RoundTripsThroughEval(t *testing.T) {
	// Every generated locator must resolve back to exactly the node it was
	// generated for.
	for name, doc := range map[string]*etree.Document{
		"desktop": desktopDoc(t),
		"dup":     dupDoc(t),
	} {
		var rtids []string
		walkDoc(doc, func(el *etree.Element) bool {
			rtids = append(rtids, el.SelectAttrValue("RtID", ""))
			return true
		})
		for _, rtid := range rtids {
			expr := Generate(doc, rtid)
			require.NotEqual(t, NotFound, expr, "%s: rtid %s", name, rtid)
			result, err := Eval(doc, expr)
			require.NoError(t, err, "%s: %s", name, expr)
			require.Equal(t, 1, result.Count(), "%s: %s should match exactly once", name, expr)
			assert.Equal(t, rtid, result.Matches[0].RtID, "%s: %s", name, expr)
		}
	}
}
