// Package tui is the full-screen terminal chat client.
package tui

import (
	"context"

	"coach/coach/ui/render"
	"coach/coach/ui/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	headerHeight = 3
	inputHeight  = 3
	// border + help line under the input
	inputChrome = 3
)

// replyMsg carries the relay outcome back into the update loop.
type replyMsg struct {
	pending session.Pending
	reply   string
	err     error
}

type KeyMap struct {
	Start key.Binding
	Send  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start now")),
		Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Reset: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new session")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type Model struct {
	sess    *session.Session
	replier session.Replier
	render  render.Set
	keys    KeyMap

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool
}

func New(sess *session.Session, replier session.Replier) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe your business idea or answer the coach's questions..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	// enter sends; alt+enter keeps multi-line input possible
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = dotStyle

	return Model{
		sess:     sess,
		replier:  replier,
		render:   render.Terminal(),
		keys:     DefaultKeyMap(),
		viewport: viewport.New(0, 0),
		input:    ta,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Session exposes the underlying state, mostly for tests.
func (m Model) Session() *session.Session {
	return m.sess
}

func (m Model) requestReply(p session.Pending) tea.Cmd {
	replier := m.replier
	return func() tea.Msg {
		reply, err := replier.GenerateReply(context.Background(), p.Messages)
		return replyMsg{pending: p, reply: reply, err: err}
	}
}
