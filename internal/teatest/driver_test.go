package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type countMsg struct{ n int }

// counter chains one Cmd per count until it reaches limit.
type counter struct {
	count, limit int
	slow         bool
}

func (c counter) Init() tea.Cmd { return c.next() }

func (c counter) next() tea.Cmd {
	if c.count >= c.limit {
		return nil
	}
	n := c.count + 1
	slow := c.slow
	return func() tea.Msg {
		if slow {
			time.Sleep(50 * time.Millisecond)
		}
		return countMsg{n: n}
	}
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countMsg:
		c.count = msg.n
		return c, c.next()
	case tea.KeyMsg:
		if msg.String() == "q" {
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainsChainedCmds(t *testing.T) {
	d := New(t, counter{limit: 20})
	d.DrainInit()
	assert.Equal(t, 20, d.Model.(counter).count)
}

func TestDriver_MaxDrainDepthStopsChain(t *testing.T) {
	d := New(t, counter{limit: 20}, WithMaxDrainDepth(5))
	d.DrainInit()
	assert.Less(t, d.Model.(counter).count, 20)
}

func TestDriver_SlowCmdDropped(t *testing.T) {
	d := New(t, counter{limit: 3, slow: true}, WithCmdTimeout(5*time.Millisecond))
	d.DrainInit()
	assert.Equal(t, 0, d.Model.(counter).count)
	assert.Equal(t, 1, d.Dropped)
}

func TestDriver_QuitDetected(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
