package handler

import (
	"net/http"

	"github.com/osse101/BossRush_Go/internal/simulation"
)

// StatusSource provides snapshots of the running simulation
type StatusSource interface {
	Snapshot() simulation.Status
}

// HandleStatus reports the current round and per-team progress
// @Summary Current simulation status
// @Tags status
// @Produce json
// @Success 200 {object} simulation.Status
// @Router /status [get]
func HandleStatus(source StatusSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, source.Snapshot())
	}
}
