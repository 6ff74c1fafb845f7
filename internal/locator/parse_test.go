package locator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainSegments(t *testing.T) {
	path, err := Parse("/Pane/Window/Button")
	require.NoError(t, err)
	assert.False(t, path.Descendant)
	assert.False(t, path.SelectRtID)
	require.Len(t, path.Segments, 3)
	assert.Equal(t, "Pane", path.Segments[0].Tag)
	assert.Equal(t, "Window", path.Segments[1].Tag)
	assert.Equal(t, "Button", path.Segments[2].Tag)
}

func TestParse_AttributePredicates(t *testing.T) {
	path, err := Parse(`/Pane[@ClassName="Shell_TrayWnd"][@Name="Taskbar"]/Button[@AutomationId="StartButton"]`)
	require.NoError(t, err)
	require.Len(t, path.Segments, 2)

	first := path.Segments[0]
	require.NotNil(t, first.ClassName)
	assert.Equal(t, "Shell_TrayWnd", *first.ClassName)
	require.NotNil(t, first.Name)
	assert.Equal(t, "Taskbar", *first.Name)
	assert.Nil(t, first.AutomationID)

	second := path.Segments[1]
	require.NotNil(t, second.AutomationID)
	assert.Equal(t, "StartButton", *second.AutomationID)
}

func TestParse_RtIDPredicateAndSuffix(t *testing.T) {
	path, err := Parse(`/Pane/Button[@RtID="42-7-3"]/@RtID`)
	require.NoError(t, err)
	assert.True(t, path.SelectRtID)
	require.Len(t, path.Segments, 2)
	require.NotNil(t, path.Segments[1].RtID)
	assert.Equal(t, "42-7-3", *path.Segments[1].RtID)
}

func TestParse_PositionIndex(t *testing.T) {
	path, err := Parse("/Pane/Pane[2]/Button[13]")
	require.NoError(t, err)
	assert.Equal(t, 0, path.Segments[0].Index)
	assert.Equal(t, 2, path.Segments[1].Index)
	assert.Equal(t, 13, path.Segments[2].Index)
}

func TestParse_DescendantAnchor(t *testing.T) {
	path, err := Parse(`//*[@Name="Start"]`)
	require.NoError(t, err)
	assert.True(t, path.Descendant)
	require.Len(t, path.Segments, 1)
	assert.Equal(t, "*", path.Segments[0].Tag)
	require.NotNil(t, path.Segments[0].Name)
	assert.Equal(t, "Start", *path.Segments[0].Name)
}

func TestParse_DescendantTaggedAnchor(t *testing.T) {
	path, err := Parse(`//Pane[@Name="Body"]/Button[1]`)
	require.NoError(t, err)
	assert.True(t, path.Descendant)
	require.Len(t, path.Segments, 2)
	assert.Equal(t, "Pane", path.Segments[0].Tag)
	assert.Equal(t, 1, path.Segments[1].Index)
}

func TestParse_EscapedQuoteForm(t *testing.T) {
	// Locators that traveled through another quoting layer keep their
	// backslash-escaped quotes.
	path, err := Parse(`/Pane[@ClassName=\"#32769\"][@Name=\"Desktop 1\"]/Button[@Name=\"Start\"]`)
	require.NoError(t, err)
	require.Len(t, path.Segments, 2)
	require.NotNil(t, path.Segments[0].ClassName)
	assert.Equal(t, "#32769", *path.Segments[0].ClassName)
	require.NotNil(t, path.Segments[1].Name)
	assert.Equal(t, "Start", *path.Segments[1].Name)
}

func TestParse_SingleQuotes(t *testing.T) {
	path, err := Parse(`//*[@Name='Start']`)
	require.NoError(t, err)
	require.NotNil(t, path.Segments[0].Name)
	assert.Equal(t, "Start", *path.Segments[0].Name)
}

func TestParse_UnknownAttributeIgnored(t *testing.T) {
	path, err := Parse(`/Button[@FrameworkId="XAML"]`)
	require.NoError(t, err)
	seg := path.Segments[0]
	assert.Nil(t, seg.Name)
	assert.Nil(t, seg.ClassName)
	assert.Nil(t, seg.AutomationID)
}

func TestParse_Malformed(t *testing.T) {
	cases := []string{
		"",
		"Button",               // missing leading slash
		"/Button[@Name=]",      // missing value
		`/Button[@Name="OK"`,   // missing ']'
		`/Button[@Name="OK]`,   // unterminated value
		"/Button[0]",           // index must be 1-based
		"/Button[@=\"x\"]",     // missing attribute name
		"/@RtID",               // suffix without segment
		`/Button/@Name`,        // only RtID selection supported
		`/Button/@RtID/Button`, // suffix must terminate
		"/",                    // no segment
	}
	for _, expr := range cases {
		_, err := Parse(expr)
		var syntaxErr *SyntaxError
		require.Error(t, err, "expr %q", expr)
		assert.True(t, errors.As(err, &syntaxErr), "expr %q should produce *SyntaxError, got %v", expr, err)
	}
}

func TestParse_SyntaxErrorMentionsExpression(t *testing.T) {
	_, err := Parse("/Button[@Name=]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/Button[@Name=]")
}
