package render

import (
	"strings"
	"testing"

	"coach/coach/utils/types"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Segment
	}{
		{"plain", "hello", []Segment{{KindText, "hello"}}},
		{"empty", "", nil},
		{"bold", "a **b** c", []Segment{{KindText, "a "}, {KindBold, "b"}, {KindText, " c"}}},
		{"two bolds", "**x****y**", []Segment{{KindBold, "x"}, {KindBold, "y"}}},
		{"unclosed bold", "**open", []Segment{{KindText, "**open"}}},
		{"bold does not cross lines", "**a\nb**", []Segment{{KindText, "**a"}, {KindBreak, ""}, {KindText, "b**"}}},
		{"breaks", "a\n\nb", []Segment{{KindText, "a"}, {KindBreak, ""}, {KindBreak, ""}, {KindText, "b"}}},
		{"glyph bullet", "• one", []Segment{{KindBullet, BulletGlyph}, {KindText, "one"}}},
		{"dash bullet", "- Viability: 7/10", []Segment{{KindBullet, BulletGlyph}, {KindText, "Viability: 7/10"}}},
		{"indented star bullet", "  * deep", []Segment{{KindText, "  "}, {KindBullet, BulletGlyph}, {KindText, "deep"}}},
		{"dash mid-line is text", "a - b", []Segment{{KindText, "a - b"}}},
		{"bullet then bold", "- **Scalability:** 6/10", []Segment{
			{KindBullet, BulletGlyph}, {KindBold, "Scalability:"}, {KindText, " 6/10"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.in))
		})
	}
}

func tag(prefix string) func(string) string {
	return func(s string) string { return "<" + prefix + ">" + s + "</" + prefix + ">" }
}

func TestMarkupRenderer(t *testing.T) {
	r := MarkupRenderer{Styles: Styles{Bold: tag("b"), Bullet: tag("li")}}
	got := r.Render("**Evaluation (score /10 each):**\n- Viability: 8/10")
	assert.Equal(t, "<b>Evaluation (score /10 each):</b>\n<li>• </li>Viability: 8/10", got)
}

func TestLiteralRendererKeepsMarkup(t *testing.T) {
	in := "**not bold**\n- not a bullet\n  spaced"
	assert.Equal(t, in, LiteralRenderer{}.Render(in))
	assert.Equal(t, "<u>"+in+"</u>", LiteralRenderer{Style: tag("u")}.Render(in))
}

func TestForRole(t *testing.T) {
	s := Set{
		Assistant: MarkupRenderer{Styles: Styles{Bold: tag("b")}},
		User:      LiteralRenderer{},
	}
	assert.IsType(t, LiteralRenderer{}, s.ForRole(types.RoleUser))
	assert.IsType(t, MarkupRenderer{}, s.ForRole(types.RoleAssistant))
	assert.IsType(t, MarkupRenderer{}, s.ForRole("system"))

	assert.Equal(t, "**x**", s.Message(types.Message{Role: types.RoleUser, Content: "**x**"}))
	assert.Equal(t, "<b>x</b>", s.Message(types.Message{Role: types.RoleAssistant, Content: "**x**"}))
}

func TestPlainStripsMarkers(t *testing.T) {
	got := Plain().Message(types.Message{Role: types.RoleAssistant, Content: "**Next-Step Questions:**\n1. Why?"})
	assert.Equal(t, "Next-Step Questions:\n1. Why?", got)
}

func TestTerminalAndLineSets(t *testing.T) {
	for name, set := range map[string]Set{"terminal": Terminal(), "line": Line()} {
		t.Run(name, func(t *testing.T) {
			out := set.Message(types.Message{Role: types.RoleAssistant, Content: "**Loopholes**\n• gap"})
			assert.Contains(t, out, "Loopholes")
			assert.Contains(t, out, "gap")
			assert.NotContains(t, out, "**")

			user := set.Message(types.Message{Role: types.RoleUser, Content: "**raw**"})
			assert.True(t, strings.Contains(user, "**raw**"))
		})
	}
}
