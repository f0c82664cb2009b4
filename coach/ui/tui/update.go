package tui

import (
	"coach/coach/ui/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case replyMsg:
		m.sess.Complete(msg.pending, msg.reply, msg.err)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if m.sess.Mode() != session.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	if m.sess.Mode() == session.ModeLanding {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
		m.input.Reset()
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	if m.sess.Mode() == session.ModeLanding {
		if key.Matches(msg, m.keys.Start) && m.sess.Start() {
			cmd := m.input.Focus()
			m.refresh()
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Send) {
		m.sess.SetInput(m.input.Value())
		p, ok := m.sess.SubmitInput()
		if !ok {
			return m, nil
		}
		m.input.Reset()
		m.refresh()
		return m, tea.Batch(m.requestReply(p), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	m.input.SetWidth(w - 2)
	h := m.height - headerHeight - inputHeight - inputChrome
	if h < 3 {
		h = 3
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

// refresh re-renders the transcript into the viewport and pins it to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.transcriptView())
	m.viewport.GotoBottom()
}
