// coach/utils/types/chat.go
package types

// SessionHeader carries the client's session id. The relay only uses it to
// correlate log lines; it keeps nothing per session.
const SessionHeader = "X-Coach-Session"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Order in a transcript is turn order.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat: the whole transcript, every call.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
