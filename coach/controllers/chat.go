// coach/controllers/chat.go
package controllers

import (
	"context"
	"errors"
	"fmt"

	"coach/coach/services/relay"
	"coach/coach/utils/types"
)

// FailureMessage is the only error text clients see for relay failures.
const FailureMessage = "Failed to process request"

// ErrBadTranscript marks client mistakes (empty transcript, rejected role).
var ErrBadTranscript = errors.New("bad transcript")

// Replier is satisfied by *relay.Service.
type Replier interface {
	GenerateReply(ctx context.Context, transcript []types.Message) (string, error)
}

type ChatController struct {
	relay Replier
}

func NewChatController(r Replier) *ChatController {
	return &ChatController{relay: r}
}

func (c *ChatController) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	content, err := c.relay.GenerateReply(ctx, req.Messages)
	if err != nil {
		if errors.Is(err, relay.ErrEmptyTranscript) || errors.Is(err, relay.ErrInvalidRole) {
			return types.ChatResponse{}, fmt.Errorf("%w: %w", ErrBadTranscript, err)
		}
		return types.ChatResponse{}, err
	}
	return types.ChatResponse{Content: content}, nil
}
