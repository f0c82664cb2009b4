package controllers

import (
	"net/http"
	"time"

	httputils "coach/coach/utils/http"
)

type HealthController struct {
	model   string
	started time.Time
}

func NewHealthController(model string) *HealthController {
	return &HealthController{model: model, started: time.Now()}
}

type HealthStatus struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	UptimeSec int64  `json:"uptime_sec"`
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputils.WriteJSON(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Model:     h.model,
		UptimeSec: int64(time.Since(h.started).Seconds()),
	})
}
