package cli

import tea "github.com/charmbracelet/bubbletea"

// viewStack holds the open screens, dashboard at the bottom. The root is
// never popped.
type viewStack []View

func (s viewStack) top() View {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s viewStack) ids() []ViewID {
	ids := make([]ViewID, len(s))
	for i, v := range s {
		ids[i] = v.ID()
	}
	return ids
}

// titles returns the non-empty view titles, bottom to top.
func (s viewStack) titles() []string {
	var out []string
	for _, v := range s {
		if t := v.Title(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *viewStack) push(views ...View) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(views))
	for _, v := range views {
		*s = append(*s, v)
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// pop removes the top view and reports whether one was removed.
func (s *viewStack) pop() bool {
	if len(*s) <= 1 {
		return false
	}
	*s = (*s)[:len(*s)-1]
	return true
}

func (s *viewStack) popToRoot() {
	if len(*s) > 1 {
		*s = (*s)[:1]
	}
}

func (s *viewStack) replaceTop(v View) tea.Cmd {
	if len(*s) == 0 {
		*s = append(*s, v)
	} else {
		(*s)[len(*s)-1] = v
	}
	return v.Init()
}

// updateTop forwards msg to the top view.
func (s viewStack) updateTop(msg tea.Msg) tea.Cmd {
	if len(s) == 0 {
		return nil
	}
	return s.updateAt(len(s)-1, msg)
}

func (s viewStack) updateAt(i int, msg tea.Msg) tea.Cmd {
	updated, cmd := s[i].Update(msg)
	s[i] = updated.(View)
	return cmd
}

// deliver hands msg to the topmost view with the given ID, which may sit
// below the active one. It reports false when no such view is open.
func (s viewStack) deliver(id ViewID, msg tea.Msg) (tea.Cmd, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].ID() == id {
			return s.updateAt(i, msg), true
		}
	}
	return nil, false
}

// broadcast sends msg to every view so underlying screens can reload.
func (s viewStack) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range s {
		if cmd := s.updateAt(i, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
