package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewStack_RootIsNeverPopped(t *testing.T) {
	s := viewStack{newStubView(ViewDashboard, "", "dashboard")}
	assert.False(t, s.pop())
	assert.Len(t, s, 1)

	s.push(newStubView(ViewProject, "Cloud", ""), newStubView(ViewProfiles, "Profiles", ""))
	assert.Equal(t, []ViewID{ViewDashboard, ViewProject, ViewProfiles}, s.ids())
	assert.Equal(t, []string{"Cloud", "Profiles"}, s.titles())

	assert.True(t, s.pop())
	s.popToRoot()
	assert.Equal(t, []ViewID{ViewDashboard}, s.ids())
}

func TestViewStack_ReplaceTopOnEmpty(t *testing.T) {
	var s viewStack
	assert.Nil(t, s.top())
	s.replaceTop(newStubView(ViewDashboard, "", ""))
	assert.Equal(t, ViewDashboard, s.top().ID())
}

func TestViewStack_BroadcastReachesEveryView(t *testing.T) {
	a := newStubView(ViewDashboard, "", "")
	b := newStubView(ViewProject, "", "")
	s := viewStack{a, b}

	s.broadcast(refreshViewMsg{})
	assert.Len(t, a.updateSeen, 1)
	assert.Len(t, b.updateSeen, 1)

	_, ok := s.deliver(ViewPreview, refreshViewMsg{})
	assert.False(t, ok)
}
