package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Geometry(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	assert.Equal(t, 100, r.Width())
	assert.Equal(t, 50, r.Height())
	assert.Equal(t, 5000, r.Area())

	cx, cy := r.Center()
	assert.Equal(t, 60, cx)
	assert.Equal(t, 45, cy)
}

func TestRect_Contains_BordersInclusive(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(5, 5))
	assert.False(t, r.Contains(11, 5))
	assert.False(t, r.Contains(5, -1))
}

func TestRuntimeID_String(t *testing.T) {
	assert.Equal(t, "42-7-3", RuntimeID{42, 7, 3}.String())
	assert.Equal(t, "0-0-0-0", UnknownRuntimeID().String())
	assert.Equal(t, "", RuntimeID{}.String())
}

func TestRuntimeID_ParseRoundTrip(t *testing.T) {
	id, err := ParseRuntimeID("42-7-3")
	require.NoError(t, err)
	assert.True(t, id.Equal(RuntimeID{42, 7, 3}))
	assert.Equal(t, "42-7-3", id.String())
}

func TestParseRuntimeID_Invalid(t *testing.T) {
	_, err := ParseRuntimeID("")
	assert.Error(t, err)
	_, err = ParseRuntimeID("1-x-3")
	assert.Error(t, err)
}

func TestRuntimeID_Equal(t *testing.T) {
	assert.True(t, RuntimeID{1, 2}.Equal(RuntimeID{1, 2}))
	assert.False(t, RuntimeID{1, 2}.Equal(RuntimeID{1, 2, 3}))
	assert.False(t, RuntimeID{1, 2}.Equal(RuntimeID{2, 1}))
}

func TestRuntimeID_IsZero(t *testing.T) {
	assert.True(t, RuntimeID(nil).IsZero())
	assert.True(t, UnknownRuntimeID().IsZero())
	assert.False(t, RuntimeID{0, 1}.IsZero())
}

func TestNodeRecord_DisplayName(t *testing.T) {
	r := NodeRecord{
		Name:                 "Start",
		LocalizedControlType: "button",
		ClassName:            "Start.Button",
		FrameworkID:          "XAML",
		RtID:                 "42-7-3",
	}
	assert.Equal(t, "'Start' button (Start.Button | XAML | 42-7-3)", r.DisplayName())
}

func TestElement_ReadOnlyAccessors(t *testing.T) {
	id := RuntimeID{1, 2, 3}
	bounds := Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	el := NewElement("OK", `/Pane/Button[@Name="OK"]`, 0x1234, id, bounds)

	assert.Equal(t, "OK", el.Name())
	assert.Equal(t, `/Pane/Button[@Name="OK"]`, el.Locator())
	assert.Equal(t, Handle(0x1234), el.Handle())
	assert.True(t, el.RuntimeID().Equal(id))
	assert.Equal(t, bounds, el.Bounds())
}
