// Command-line client for the Business Coach relay
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"coach/coach/config"
	"coach/coach/ui/client"
	"coach/coach/ui/render"
	"coach/coach/ui/session"
	"coach/coach/ui/tui"
	"coach/coach/utils/color"
	"coach/coach/utils/logging"
	"coach/coach/utils/types"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}
	// Client logs go to files only; the terminal belongs to the UI.
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	sess := session.New()
	relay := client.NewRelayClient(cfg.RelayURL, sess.ID)
	logging.AppLogger.Info("coach client started", zap.String("relay", cfg.RelayURL), zap.String("session_id", sess.ID()))

	args := os.Args[1:]
	mode := "tui"
	if len(args) >= 1 {
		mode = args[0]
	}
	switch mode {
	case "tui":
		p := tea.NewProgram(tui.New(sess, relay), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logging.ErrorLogger.Error("tui exited with error", zap.Error(err))
			os.Exit(1)
		}
	case "plain":
		if os.Getenv("NO_COLOR") != "" {
			color.Disable()
		}
		runPlain(os.Stdin, os.Stdout, sess, relay)
	default:
		fmt.Println("Business Coach usage:")
		fmt.Println("  coach         # full-screen chat")
		fmt.Println("  coach plain   # line-by-line chat")
		os.Exit(1)
	}
}

// runPlain is the line-mode client: one line per turn, /new resets, exit quits.
func runPlain(in io.Reader, out io.Writer, sess *session.Session, relay session.Replier) {
	rs := render.Line()
	fmt.Fprintln(out, color.ColorPrompt("Business Coach")+" - Think clearer.")
	fmt.Fprintln(out, "Question everything. Build what matters.")
	fmt.Fprintln(out, color.ColorInfo("Type /new for a new session or 'exit' to quit.\n"))

	sess.Start()
	printMessage(out, rs, sess.Transcript()[0])

	thinking := session.ReplierFunc(func(ctx context.Context, transcript []types.Message) (string, error) {
		fmt.Fprintln(out, color.ColorInfo("thinking..."))
		return relay.GenerateReply(ctx, transcript)
	})

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(out, color.ColorPrompt("you> "))
		if !scanner.Scan() {
			break // EOF or error
		}
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			fmt.Fprintln(out, "Goodbye!")
			return
		case "/new":
			sess.Reset()
			sess.Start()
			fmt.Fprintln(out, color.ColorWarning("-- new session --"))
			printMessage(out, rs, sess.Transcript()[0])
			continue
		}

		if !sess.Send(context.Background(), thinking, line) {
			continue
		}
		transcript := sess.Transcript()
		printMessage(out, rs, transcript[len(transcript)-1])
	}
}

func printMessage(out io.Writer, rs render.Set, m types.Message) {
	label := color.ColorCoach("coach")
	if m.Role == types.RoleUser {
		label = color.ColorUser("you")
	}
	fmt.Fprintf(out, "\n%s\n%s\n\n", label, rs.Message(m))
}
