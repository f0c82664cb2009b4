package tui

import (
	"strings"

	"coach/coach/ui/render"
	"coach/coach/ui/session"
	"coach/coach/utils/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	white   = lipgloss.Color("#FFFFFF")
	surface = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#27272A"}
	border  = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#3F3F46"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(render.Purple)
	subtitleStyle = lipgloss.NewStyle().Foreground(render.TextMuted)
	hintStyle     = lipgloss.NewStyle().Foreground(render.TextMuted)
	headerStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(border)
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(render.Blue).MarginBottom(1)
	cardTitle     = lipgloss.NewStyle().Bold(true).Foreground(render.TextStrong)
	cardLead      = lipgloss.NewStyle().Foreground(render.TextMuted)
	cardStyle     = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(border)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(white).Background(render.Blue).Padding(0, 3)
	userBubble    = lipgloss.NewStyle().Foreground(white).Background(render.Blue).Padding(0, 2)
	coachBubble   = lipgloss.NewStyle().Background(surface).Padding(0, 2)
	inputStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
	dotStyle      = lipgloss.NewStyle().Foreground(render.TextMuted)
)

type feature struct {
	title string
	lead  string
	body  string
}

var features = []feature{
	{
		title: "Ship faster.",
		lead:  "Clarity in seconds.",
		body:  "Get instant analysis on viability, scalability, and product-market fit. Real frameworks. Real insights. 10 seconds.",
	},
	{
		title: "Kill your darlings.",
		lead:  "Find what's broken before users do.",
		body:  "Catalytic questions expose hidden assumptions. See your blind spots. Fix them. Ship.",
	},
	{
		title: "Think 10x.",
		lead:  "Good ideas aren't enough.",
		body:  "Push past obvious answers. Get to the core insight. Build something people want.",
	},
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Starting..."
	}
	var body string
	if m.sess.Mode() == session.ModeLanding {
		body = m.landingView()
	} else {
		body = m.chatView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body)
}

func (m Model) headerView() string {
	left := titleStyle.Render("Business Coach") + "\n" + subtitleStyle.Render("Think clearer.")
	right := hintStyle.Render("ctrl+n  New Session")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	return headerStyle.Width(m.width).Render(row)
}

func (m Model) landingView() string {
	cardWidth := (m.width - 8) / len(features)
	if cardWidth < 24 {
		cardWidth = 24
	}
	cards := make([]string, 0, len(features))
	for _, f := range features {
		text := cardTitle.Render(f.title) + "\n\n" + cardLead.Render(f.lead) + " " + f.body
		cards = append(cards, cardStyle.Width(cardWidth).Render(text))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(grid) > m.width {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	cta := buttonStyle.Render("Start now ›") + "  " + hintStyle.Render("press enter")
	content := lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle.Render("Question everything. Build what matters."),
		grid,
		"",
		cta,
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

func (m Model) chatView() string {
	help := hintStyle.Render("enter send · alt+enter newline · ctrl+n new session · ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		inputStyle.Render(m.input.View()),
		help,
	)
}

// transcriptView renders every message with its role's strategy, user
// bubbles on the right and coach bubbles on the left.
func (m Model) transcriptView() string {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	maxBubble := width * 3 / 4
	if maxBubble < 20 {
		maxBubble = width
	}
	blocks := make([]string, 0, len(m.sess.Transcript())+1)
	for _, msg := range m.sess.Transcript() {
		blocks = append(blocks, m.bubble(msg, width, maxBubble))
	}
	if m.sess.Mode() == session.ModeLoading {
		blocks = append(blocks, coachBubble.Render(m.spinner.View()+" thinking"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) bubble(msg types.Message, width, maxBubble int) string {
	text := m.render.Message(msg)
	style := coachBubble
	align := lipgloss.Left
	if msg.Role == types.RoleUser {
		style = userBubble
		align = lipgloss.Right
	}
	if lipgloss.Width(text)+4 > maxBubble {
		style = style.Width(maxBubble)
	}
	return lipgloss.PlaceHorizontal(width, align, style.Render(text))
}
