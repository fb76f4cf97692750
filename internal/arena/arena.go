// Package arena is a scripted stand-in for the game API. It serves odds from
// a scenario and keeps a ledger of the XP pushed to each character.
package arena

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BossRush_Go/internal/domain"
	"github.com/osse101/BossRush_Go/internal/handler"
	"github.com/osse101/BossRush_Go/internal/logger"
)

// XPResponse is returned after an XP update
type XPResponse struct {
	ID int `json:"id"`
	XP int `json:"XP"`
}

// Arena serves a scenario over HTTP
type Arena struct {
	mu      sync.Mutex
	scripts map[int][]Step
	calls   map[int]int
	xp      map[int]int
	updates map[int]int
}

// New creates an arena for the scenario
func New(s *Scenario) *Arena {
	a := &Arena{
		scripts: make(map[int][]Step, len(s.Teams)),
		calls:   make(map[int]int),
		xp:      make(map[int]int),
		updates: make(map[int]int),
	}
	for _, t := range s.Teams {
		a.scripts[t.ID] = t.Steps
	}
	return a
}

// Mount registers the game API routes on r
func (a *Arena) Mount(r chi.Router) {
	r.Get(RouteOdds, a.HandleOdds)
	r.Put(RouteXP, a.HandleXP)
}

// HandleOdds serves the next scripted step for the team
// @Summary Get boss odds for a team
// @Description Serves the next scripted odds payload; the last step repeats
// @Tags games
// @Produce json
// @Param team path int true "Team ID"
// @Success 200 {object} domain.OddsResponse "Win-rates per boss"
// @Failure 400 {object} handler.ErrorResponse "Invalid team id"
// @Failure 404 {object} handler.ErrorResponse "Team not in scenario"
// @Router /games/odds/{team} [get]
func (a *Arena) HandleOdds(w http.ResponseWriter, r *http.Request) {
	team, err := strconv.Atoi(chi.URLParam(r, "team"))
	if err != nil {
		handler.RespondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return
	}

	step, call, ok := a.next(team)
	if !ok {
		handler.RespondError(w, http.StatusNotFound, ErrMsgUnknownTeam)
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgOddsServed, "team", team, "call", call)

	if step.Status != 0 {
		w.WriteHeader(step.Status)
		return
	}
	w.Header().Set(handler.HeaderContentType, handler.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(step.body())
}

// HandleXP validates an XP update and adds it to the character's ledger
// @Summary Grant XP to a character
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body domain.XPUpdate true "XP to add"
// @Success 200 {object} XPResponse "Accumulated XP"
// @Failure 400 {object} handler.ErrorResponse "Invalid id or body"
// @Router /characters/{id}/xp [put]
func (a *Arena) HandleXP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		handler.RespondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return
	}

	var req domain.XPUpdate
	if !handler.DecodeAndValidate(w, r, &req) {
		return
	}

	a.mu.Lock()
	a.xp[id] += req.XP
	a.updates[id]++
	total := a.xp[id]
	a.mu.Unlock()

	logger.FromContext(r.Context()).Debug(LogMsgXPRecorded, "character", id, "xp", req.XP, "total", total)
	handler.RespondJSON(w, http.StatusOK, XPResponse{ID: id, XP: total})
}

func (a *Arena) next(team int) (Step, int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	steps, ok := a.scripts[team]
	if !ok {
		return Step{}, 0, false
	}
	i := a.calls[team]
	a.calls[team]++
	if i >= len(steps) {
		i = len(steps) - 1
	}
	return steps[i], a.calls[team], true
}

// Calls returns how many odds requests the team has made
func (a *Arena) Calls(team int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[team]
}

// XP returns the accumulated XP for a character
func (a *Arena) XP(id int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.xp[id]
}

// Updates returns how many XP updates a character has received
func (a *Arena) Updates(id int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.updates[id]
}
