package render

import (
	"coach/coach/utils/color"

	"github.com/charmbracelet/lipgloss"
)

var (
	Blue       = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	Purple     = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	TextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	TextMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Terminal styles assistant markup with lipgloss for the full-screen UI.
func Terminal() Set {
	bold := lipgloss.NewStyle().Bold(true).Foreground(TextStrong)
	bullet := lipgloss.NewStyle().Bold(true).Foreground(Blue)
	return Set{
		Assistant: MarkupRenderer{Styles: Styles{
			Bold:   func(s string) string { return bold.Render(s) },
			Bullet: func(s string) string { return bullet.Render(s) },
		}},
		User:      LiteralRenderer{},
	}
}

// Line styles assistant markup with ANSI colors for the line-mode client.
func Line() Set {
	return Set{
		Assistant: MarkupRenderer{Styles: Styles{Bold: color.Bold, Bullet: color.Bullet}},
		User:      LiteralRenderer{Style: color.ColorUser},
	}
}
