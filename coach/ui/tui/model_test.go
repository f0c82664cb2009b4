package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"coach/coach/ui/session"
	"coach/coach/utils/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplier struct {
	mu    sync.Mutex
	calls [][]types.Message
	reply string
	err   error
}

func (f *fakeReplier) GenerateReply(_ context.Context, t []types.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, t)
	return f.reply, f.err
}

func newModel(t *testing.T, r session.Replier) Model {
	t.Helper()
	m := New(session.New(), r)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// findReply runs cmd (and batch children) and returns the relay result.
func findReply(t *testing.T, cmd tea.Cmd) replyMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if r, ok := c().(replyMsg); ok {
				return r
			}
		}
		t.Fatal("no reply in batch")
	}
	r, ok := msg.(replyMsg)
	require.True(t, ok, "expected replyMsg, got %T", msg)
	return r
}

func TestLandingToActive(t *testing.T) {
	m := newModel(t, &fakeReplier{})
	assert.Equal(t, session.ModeLanding, m.Session().Mode())
	assert.Contains(t, m.View(), "Question everything. Build what matters.")
	assert.Contains(t, m.View(), "Kill your darlings.")

	m, _ = press(t, m, enter)
	assert.Equal(t, session.ModeActive, m.Session().Mode())
	assert.Equal(t, []types.Message{{Role: types.RoleAssistant, Content: session.Greeting}}, m.Session().Transcript())
	assert.NotContains(t, m.View(), "Question everything.")
}

func TestSubmitRoundTrip(t *testing.T) {
	r := &fakeReplier{reply: "**Evaluation (score /10 each):**\n- Viability: 7/10"}
	m := newModel(t, r)
	m, _ = press(t, m, enter)

	m = typeText(t, m, "We sell B2B SaaS for dentist scheduling.")
	m, cmd := press(t, m, enter)
	assert.Equal(t, session.ModeLoading, m.Session().Mode())
	assert.Equal(t, "", m.input.Value())

	// repeated enters while loading start nothing
	m = typeText(t, m, "more")
	m, again := press(t, m, enter)
	assert.Nil(t, again)

	reply := findReply(t, cmd)
	require.Len(t, r.calls, 1)
	assert.Equal(t, types.Message{Role: types.RoleUser, Content: "We sell B2B SaaS for dentist scheduling."}, r.calls[0][1])

	next, _ := m.Update(reply)
	m = next.(Model)
	assert.Equal(t, session.ModeActive, m.Session().Mode())
	got := m.Session().Transcript()
	require.Len(t, got, 3)
	assert.Equal(t, r.reply, got[2].Content)
	assert.Contains(t, m.viewport.View(), "Viability: 7/10")
	assert.NotContains(t, m.viewport.View(), "**Evaluation")
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	r := &fakeReplier{}
	m := newModel(t, r)
	m, _ = press(t, m, enter)
	m = typeText(t, m, "   ")
	m, cmd := press(t, m, enter)
	assert.Nil(t, cmd)
	assert.Len(t, m.Session().Transcript(), 1)
	assert.Empty(t, r.calls)
}

func TestFailureShowsFallback(t *testing.T) {
	r := &fakeReplier{err: errors.New("relay returned 500")}
	m := newModel(t, r)
	m, _ = press(t, m, enter)
	m = typeText(t, m, "idea")
	m, cmd := press(t, m, enter)

	next, _ := m.Update(findReply(t, cmd))
	m = next.(Model)
	got := m.Session().Transcript()
	require.Len(t, got, 3)
	assert.Equal(t, session.FallbackMessage, got[2].Content)
	assert.Equal(t, session.ModeActive, m.Session().Mode())
}

func TestResetReturnsToLanding(t *testing.T) {
	m := newModel(t, &fakeReplier{reply: "late"})
	m, _ = press(t, m, enter)
	m = typeText(t, m, "idea")
	m, cmd := press(t, m, enter)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, session.ModeLanding, m.Session().Mode())
	assert.Empty(t, m.Session().Transcript())

	// the in-flight reply belongs to the discarded transcript
	next, _ := m.Update(findReply(t, cmd))
	m = next.(Model)
	assert.Empty(t, m.Session().Transcript())
	assert.Equal(t, session.ModeLanding, m.Session().Mode())
}

func TestQuit(t *testing.T) {
	m := newModel(t, &fakeReplier{})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
