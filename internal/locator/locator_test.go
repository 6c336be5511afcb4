package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance13c/testforge/internal/scenario"
)

const samplePage = `
<html><body>
  <form>
    <input id="username" type="text" placeholder="User name">
    <input name="password" type="password">
    <button data-testid="submit-btn">Sign in</button>
    <input type="hidden" name="csrf" value="x">
  </form>
  <a href="/help">Help</a>
</body></html>
`

func byValue(suggestions []Suggestion, value string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.Value == value {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestSuggestRanksIDFirst(t *testing.T) {
	suggestions, err := Suggest(samplePage)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	assert.Equal(t, scenario.StrategyID, suggestions[0].Strategy)
	assert.Equal(t, "username", suggestions[0].Value)
	assert.Equal(t, "User name", suggestions[0].Label)
}

func TestSuggestStrategies(t *testing.T) {
	suggestions, err := Suggest(samplePage)
	require.NoError(t, err)

	password, ok := byValue(suggestions, "password")
	require.True(t, ok)
	assert.Equal(t, scenario.StrategyName, password.Strategy)

	submit, ok := byValue(suggestions, "[data-testid='submit-btn']")
	require.True(t, ok)
	assert.Equal(t, scenario.StrategyCSS, submit.Strategy)
	assert.Equal(t, "Sign in", submit.Label)

	help, ok := byValue(suggestions, "Help")
	require.True(t, ok)
	assert.Equal(t, scenario.StrategyLink, help.Strategy)
}

func TestSuggestSkipsHiddenInputs(t *testing.T) {
	suggestions, err := Suggest(samplePage)
	require.NoError(t, err)

	_, found := byValue(suggestions, "csrf")
	assert.False(t, found, "hidden inputs should not be suggested")
}

func TestSuggestXPathFallback(t *testing.T) {
	suggestions, err := Suggest(`<html><body><button></button></body></html>`)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, scenario.StrategyXPath, suggestions[0].Strategy)
	assert.Contains(t, suggestions[0].Value, "//button")
}

func TestSuggestEmptyDocument(t *testing.T) {
	suggestions, err := Suggest(`<html><body><p>nothing here</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
