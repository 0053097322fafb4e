package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSuggestions_MatchesPrefix(t *testing.T) {
	pool := []string{"projects", "project", "profiles", "preview"}
	got := filterSuggestions(pool, "proj")
	assert.Equal(t, []string{"projects", "project"}, got)
}

func TestFilterSuggestions_EmptyPrefixReturnsAll(t *testing.T) {
	pool := []string{"projects", "deck"}
	got := filterSuggestions(pool, "")
	assert.Equal(t, pool, got)
}

func TestFilterSuggestions_CaseInsensitive(t *testing.T) {
	pool := []string{"Projects", "deck"}
	got := filterSuggestions(pool, "proj")
	assert.Equal(t, []string{"Projects"}, got)
}

func TestFilterSuggestions_NoMatch(t *testing.T) {
	pool := []string{"projects", "deck"}
	got := filterSuggestions(pool, "xyz")
	assert.Nil(t, got)
}

func TestAllCommandNames_CoversWizardScreens(t *testing.T) {
	names := allCommandNames()
	for _, name := range []string{"profiles", "missions", "slides", "preview", "open", "use", "new", "demo"} {
		assert.Contains(t, names, name)
	}
}

func TestSubcommandNames_MatchCobraTree(t *testing.T) {
	root := NewRootCmd(testApp(t))
	for parent, subs := range subcommandNames() {
		for _, sub := range subs {
			cmd, _, err := root.Find([]string{parent, sub})
			require.NoError(t, err, "%s %s", parent, sub)
			assert.Equal(t, sub, cmd.Name(), "%s %s", parent, sub)
		}
	}
}

func TestShellProjectCache_ReturnsProjects(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Autocomplete", "Acme")

	cache := newShellProjectCache()
	projects := cache.get(app)
	require.Len(t, projects, 1)
	assert.Equal(t, p.ShortID, projects[0].ShortID)
}

func TestShellProjectCache_InvalidateReloads(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "First", "Acme")

	cache := newShellProjectCache()
	require.Len(t, cache.get(app), 1)

	seedProject(t, app, "Second", "Acme")
	assert.Len(t, cache.get(app), 1, "served from cache within the ttl")

	cache.invalidate()
	assert.Len(t, cache.get(app), 2)
}

func TestCommandBar_ProjectSuggestions(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Cloud", "Acme")
	seedProject(t, app, "Data", "Beta Labs")

	c := newCommandBar(newSharedState(app))

	assert.ElementsMatch(t, []string{"ACM01", "BET01"}, c.projectSuggestions(""))
	assert.Equal(t, []string{"BET01"}, c.projectSuggestions("be"))
}

func TestCommandBar_RouteSuggestions(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Cloud", "Acme")
	state := newSharedState(app)
	c := newCommandBar(state)

	assert.Equal(t, []string{"/", "/new"}, c.routeSuggestions())

	state.SetActiveProjectFrom(p)
	routes := c.routeSuggestions()
	assert.Contains(t, routes, "/project/ACM01")
	assert.Contains(t, routes, "/project/ACM01/profiles")
	assert.Contains(t, routes, "/project/ACM01/preview")
}
