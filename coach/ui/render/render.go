// Package render turns transcript content into display text. Assistant
// content goes through a light markup pass; user content is shown verbatim.
package render

import (
	"regexp"
	"strings"

	"coach/coach/utils/types"
)

type Kind int

const (
	KindText Kind = iota
	KindBold
	KindBullet
	KindBreak
)

// Segment is one run of parsed markup.
type Segment struct {
	Kind Kind
	Text string
}

const BulletGlyph = "• "

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Parse splits assistant markup into segments. Supported: **bold** within a
// line, line breaks, and bullets written as "• " anywhere or "- " / "* " at
// the start of a line. Everything else is text.
func Parse(content string) []Segment {
	var out []Segment
	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			out = append(out, Segment{Kind: KindBreak})
		}
		trimmed := strings.TrimLeft(line, " \t")
		indent := line[:len(line)-len(trimmed)]
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			if indent != "" {
				out = append(out, Segment{Kind: KindText, Text: indent})
			}
			out = append(out, Segment{Kind: KindBullet, Text: BulletGlyph})
			line = trimmed[2:]
		}
		out = append(out, parseInline(line)...)
	}
	return out
}

func parseInline(line string) []Segment {
	var out []Segment
	last := 0
	for _, m := range boldRe.FindAllStringSubmatchIndex(line, -1) {
		out = appendText(out, line[last:m[0]])
		out = append(out, Segment{Kind: KindBold, Text: line[m[2]:m[3]]})
		last = m[1]
	}
	return appendText(out, line[last:])
}

// appendText emits plain text, lifting any "• " markers into bullet segments.
func appendText(out []Segment, s string) []Segment {
	for {
		idx := strings.Index(s, BulletGlyph)
		if idx < 0 {
			break
		}
		if idx > 0 {
			out = append(out, Segment{Kind: KindText, Text: s[:idx]})
		}
		out = append(out, Segment{Kind: KindBullet, Text: BulletGlyph})
		s = s[idx+len(BulletGlyph):]
	}
	if s != "" {
		out = append(out, Segment{Kind: KindText, Text: s})
	}
	return out
}

// Styles paints each segment kind. A nil func leaves the text as is.
type Styles struct {
	Text   func(string) string
	Bold   func(string) string
	Bullet func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

type Renderer interface {
	Render(content string) string
}

// MarkupRenderer is the assistant strategy.
type MarkupRenderer struct {
	Styles Styles
}

func (r MarkupRenderer) Render(content string) string {
	var b strings.Builder
	for _, seg := range Parse(content) {
		switch seg.Kind {
		case KindBreak:
			b.WriteByte('\n')
		case KindBold:
			b.WriteString(apply(r.Styles.Bold, seg.Text))
		case KindBullet:
			b.WriteString(apply(r.Styles.Bullet, seg.Text))
		default:
			b.WriteString(apply(r.Styles.Text, seg.Text))
		}
	}
	return b.String()
}

// LiteralRenderer is the user strategy: no markup is interpreted.
type LiteralRenderer struct {
	Style func(string) string
}

func (r LiteralRenderer) Render(content string) string {
	return apply(r.Style, content)
}

// Set pairs one strategy per role.
type Set struct {
	Assistant Renderer
	User      Renderer
}

// ForRole picks the strategy; anything that is not user renders as assistant.
func (s Set) ForRole(role string) Renderer {
	if role == types.RoleUser {
		return s.User
	}
	return s.Assistant
}

func (s Set) Message(m types.Message) string {
	return s.ForRole(m.Role).Render(m.Content)
}

// Plain renders markup without any styling, e.g. for logs or dumb terminals.
func Plain() Set {
	return Set{Assistant: MarkupRenderer{}, User: LiteralRenderer{}}
}
