// coach/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	promptColor  = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	userColor    = color.New(color.FgHiBlue)
	coachColor   = color.New(color.FgMagenta, color.Bold)
	boldColor    = color.New(color.Bold)
	bulletColor  = color.New(color.FgBlue, color.Bold)
)

func ColorPrompt(s string) string {
	return promptColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorUser(s string) string {
	return userColor.Sprint(s)
}

func ColorCoach(s string) string {
	return coachColor.Sprint(s)
}

func Bold(s string) string {
	return boldColor.Sprint(s)
}

func Bullet(s string) string {
	return bulletColor.Sprint(s)
}

// Disable turns colors off, e.g. for NO_COLOR or piped output.
func Disable() {
	color.NoColor = true
}
