package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/locator-cli/internal/model"
	"github.com/mj1618/locator-cli/internal/snapshot"
	"github.com/mj1618/locator-cli/internal/uia/uiatest"
)

func testSnapshot(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	tree := &uiatest.FakeNode{
		Name: "Desktop", ControlType: "Pane", RuntimeID: model.RuntimeID{1, 0},
		Bounds: model.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600},
		Children: []*uiatest.FakeNode{
			{
				Name: "App", ControlType: "Window", RuntimeID: model.RuntimeID{1, 1}, Handle: 77,
				Bounds: model.Rect{Left: 0, Top: 0, Right: 400, Bottom: 300},
				Children: []*uiatest.FakeNode{
					{Name: "OK", ControlType: "Button", RuntimeID: model.RuntimeID{1, 2},
						Bounds: model.Rect{Left: 10, Top: 10, Right: 90, Bottom: 40}},
				},
			},
		},
	}
	snap, err := snapshot.Build(uiatest.NewProvider(tree), snapshot.BuildOptions{})
	require.NoError(t, err)
	return snap
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("640,480")
	require.NoError(t, err)
	assert.Equal(t, 640, x)
	assert.Equal(t, 480, y)

	x, y, err = parsePoint(" 10 , 20 ")
	require.NoError(t, err)
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	for _, bad := range []string{"", "640", "640,480,100", "a,b"} {
		_, _, err := parsePoint(bad)
		assert.Error(t, err, "point %q", bad)
	}
}

func TestSnapshotStats(t *testing.T) {
	snap := testSnapshot(t)
	stats := snapshotStats(snap, 1500*time.Millisecond)
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 2, stats.MaxLevel)
	assert.Equal(t, int64(1500), stats.BuildMS)
}

func TestResolveResult(t *testing.T) {
	node := &uiatest.FakeNode{
		Name: "OK", ControlType: "Button", RuntimeID: model.RuntimeID{9, 5}, Handle: 42,
		Bounds: model.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4},
	}
	el := model.NewElement("OK", `//*[@Name="OK"]`, 42, model.RuntimeID{9, 5}, node.Bounds)

	res := resolveResult(el, node)
	assert.Equal(t, "OK", res.Name)
	assert.Equal(t, `//*[@Name="OK"]`, res.Locator)
	assert.Equal(t, "9-5", res.RtID)
	assert.Equal(t, model.Handle(42), res.Handle)
	assert.Equal(t, node.Bounds, res.Bounds)
}
