package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"coach/coach/controllers"
	httputils "coach/coach/utils/http"
	"coach/coach/utils/logging"
	"coach/coach/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// MaxChatBody bounds the transcript a client may post in one request.
const MaxChatBody = 4 << 20

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()
	// POST /api/chat : whole transcript in, next assistant turn out
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		r.Body = http.MaxBytesReader(w, r.Body, MaxChatBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httputils.WriteJSON(w, http.StatusRequestEntityTooLarge, types.ErrorResponse{Error: "request body too large"})
				return
			}
			httputils.WriteJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
			return
		}
		resp, err := ctrl.Chat(r.Context(), req)
		if err != nil {
			if errors.Is(err, controllers.ErrBadTranscript) {
				httputils.WriteJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
				return
			}
			logging.ErrorLogger.Error("Error calling Claude API",
				zap.Error(err),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("session_id", logging.SessionID(r.Context())),
				zap.Int("messages", len(req.Messages)),
			)
			httputils.WriteJSON(w, http.StatusInternalServerError, types.ErrorResponse{Error: controllers.FailureMessage})
			return
		}
		httputils.WriteJSON(w, http.StatusOK, resp)
	})
	return r
}
