// Package relay attaches the coach's system prompt to a transcript and asks
// the model for the next assistant turn. It keeps no state between calls.
package relay

import (
	"context"
	"errors"
	"fmt"

	"coach/coach/services/llm"
	"coach/coach/utils/logging"
	"coach/coach/utils/types"

	"go.uber.org/zap"
)

const (
	Model     = "claude-sonnet-4-20250514"
	MaxTokens = 1500
)

var (
	ErrEmptyTranscript = errors.New("transcript must not be empty")
	ErrInvalidRole     = errors.New("invalid message role")
)

// RolePolicy decides what happens to a role other than user or assistant.
type RolePolicy int

const (
	// RolesPermissive coerces unknown roles to assistant.
	RolesPermissive RolePolicy = iota
	// RolesStrict rejects them with ErrInvalidRole.
	RolesStrict
)

// Provider is the one call the relay makes per reply.
type Provider interface {
	Run(ctx context.Context, req llm.MessagesRequest) (*llm.MessagesResponse, error)
}

type Service struct {
	provider Provider
	policy   RolePolicy
}

func NewService(provider Provider, policy RolePolicy) *Service {
	return &Service{provider: provider, policy: policy}
}

// NormalizeRole maps user to user and everything else to assistant.
func NormalizeRole(role string) string {
	if role == types.RoleUser {
		return types.RoleUser
	}
	return types.RoleAssistant
}

// BuildRequest turns a transcript into a provider request. Order and
// content are preserved; the system prompt travels separately from history.
func (s *Service) BuildRequest(transcript []types.Message) (llm.MessagesRequest, error) {
	if len(transcript) == 0 {
		return llm.MessagesRequest{}, ErrEmptyTranscript
	}
	msgs := make([]llm.Message, 0, len(transcript))
	for i, m := range transcript {
		if s.policy == RolesStrict && m.Role != types.RoleUser && m.Role != types.RoleAssistant {
			return llm.MessagesRequest{}, fmt.Errorf("%w %q at index %d", ErrInvalidRole, m.Role, i)
		}
		msgs = append(msgs, llm.Message{Role: NormalizeRole(m.Role), Content: m.Content})
	}
	return llm.MessagesRequest{
		Model:     Model,
		MaxTokens: MaxTokens,
		System:    SystemInstruction,
		Messages:  msgs,
	}, nil
}

// GenerateReply makes exactly one provider call. A response without a text
// block yields "" and no error.
func (s *Service) GenerateReply(ctx context.Context, transcript []types.Message) (string, error) {
	defer logging.LogDuration(ctx, "relay_generate_reply")()

	req, err := s.BuildRequest(transcript)
	if err != nil {
		return "", err
	}
	resp, err := s.provider.Run(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	text := resp.FirstText()
	if text == "" {
		logging.AppLogger.Warn("provider returned no text block",
			zap.String("session_id", logging.SessionID(ctx)),
		)
	}
	return text, nil
}
