// Package client calls the relay's chat endpoint on behalf of the UI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	httputils "coach/coach/utils/http"
	"coach/coach/utils/logging"
	"coach/coach/utils/types"

	"go.uber.org/zap"
)

// RelayError is a non-2xx answer from the relay.
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay returned %d: %s", e.StatusCode, e.Message)
}

type RelayClient struct {
	baseURL   string
	http      *http.Client
	sessionID func() string
}

// NewRelayClient targets baseURL (e.g. http://localhost:8000). sessionID,
// when set, is sent on every call so relay logs can be grouped per session.
func NewRelayClient(baseURL string, sessionID func() string) *RelayClient {
	return &RelayClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		sessionID: sessionID,
	}
}

// GenerateReply posts the whole transcript and returns the assistant text.
func (c *RelayClient) GenerateReply(ctx context.Context, transcript []types.Message) (string, error) {
	headers := map[string]string{}
	if c.sessionID != nil {
		headers[types.SessionHeader] = c.sessionID()
	}
	var resp types.ChatResponse
	err := httputils.PostJSON(ctx, c.http, c.baseURL+"/api/chat", headers, types.ChatRequest{Messages: transcript}, &resp)
	if err != nil {
		var se *httputils.StatusError
		if errors.As(err, &se) {
			rerr := &RelayError{StatusCode: se.StatusCode, Message: se.Body}
			var body types.ErrorResponse
			if json.Unmarshal([]byte(se.Body), &body) == nil && body.Error != "" {
				rerr.Message = body.Error
			}
			err = rerr
		}
		logging.ErrorLogger.Error("relay call failed", zap.Error(err), zap.Int("messages", len(transcript)))
		return "", err
	}
	return resp.Content, nil
}
