// Package session holds one chat session's transcript and mode in memory.
//
// Mode transitions:
//
//	Landing --Start--> Active --Submit--> Loading --Complete--> Active
//	any --Reset--> Landing
//
// At most one relay call is in flight: Submit refuses while Loading.
package session

import (
	"context"
	"strings"
	"sync"

	"coach/coach/utils/types"

	"github.com/google/uuid"
)

type Mode int

const (
	ModeLanding Mode = iota
	ModeActive
	ModeLoading
)

func (m Mode) String() string {
	switch m {
	case ModeLanding:
		return "landing"
	case ModeActive:
		return "active"
	case ModeLoading:
		return "loading"
	default:
		return "unknown"
	}
}

const (
	Greeting = "Welcome! I'm your Business Evaluation Coach. Let's rigorously analyze your business idea together. " +
		"Please start by telling me about your business concept - what industry are you in, what's your value proposition, " +
		"who are your target customers, and what's your revenue model?"
	FallbackMessage = "I encountered an error processing your request. Please try again."
)

// Replier produces the next assistant turn for a transcript.
type Replier interface {
	GenerateReply(ctx context.Context, transcript []types.Message) (string, error)
}

// ReplierFunc adapts a plain function to Replier.
type ReplierFunc func(ctx context.Context, transcript []types.Message) (string, error)

func (f ReplierFunc) GenerateReply(ctx context.Context, transcript []types.Message) (string, error) {
	return f(ctx, transcript)
}

type Session struct {
	mu         sync.Mutex
	id         string
	mode       Mode
	transcript []types.Message
	input      string
}

func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID changes on every Reset.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Transcript returns a copy; callers cannot mutate session state through it.
func (s *Session) Transcript() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Message(nil), s.transcript...)
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) SetInput(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = v
}

// Start seeds the transcript with the greeting. Only valid from Landing.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeLanding {
		return false
	}
	s.transcript = []types.Message{{Role: types.RoleAssistant, Content: Greeting}}
	s.mode = ModeActive
	return true
}

// Pending is one in-flight relay call: the transcript to send and the
// session it belongs to.
type Pending struct {
	SessionID string
	Messages  []types.Message
}

// Submit appends input as a user message and enters Loading. It returns the
// call to make, or ok=false when the guard suppresses it: blank input, not
// Active, or a call already pending.
func (s *Session) Submit(input string) (p Pending, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeActive || strings.TrimSpace(input) == "" {
		return Pending{}, false
	}
	s.transcript = append(s.transcript, types.Message{Role: types.RoleUser, Content: input})
	s.input = ""
	s.mode = ModeLoading
	return Pending{SessionID: s.id, Messages: append([]types.Message(nil), s.transcript...)}, true
}

// SubmitInput submits the buffered input.
func (s *Session) SubmitInput() (Pending, bool) {
	return s.Submit(s.Input())
}

// Complete ends Loading with the relay outcome. A result for a session that
// has since been reset is dropped.
func (s *Session) Complete(p Pending, reply string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeLoading || p.SessionID != s.id {
		return false
	}
	content := reply
	if err != nil {
		content = FallbackMessage
	}
	s.transcript = append(s.transcript, types.Message{Role: types.RoleAssistant, Content: content})
	s.mode = ModeActive
	return true
}

// Reset discards everything and returns to Landing.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.input = ""
	s.mode = ModeLanding
	s.id = uuid.NewString()
}

// Send runs Submit, one relay call and Complete. It reports whether a call
// was made.
func (s *Session) Send(ctx context.Context, r Replier, input string) bool {
	p, ok := s.Submit(input)
	if !ok {
		return false
	}
	reply, err := r.GenerateReply(ctx, p.Messages)
	s.Complete(p, reply, err)
	return true
}
