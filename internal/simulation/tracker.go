package simulation

import (
	"sync"
	"time"

	"github.com/osse101/BossRush_Go/internal/domain"
)

// TeamStatus is the live state of one team
type TeamStatus struct {
	Team      int  `json:"team"`
	Players   int  `json:"players"`
	Remaining int  `json:"bosses_remaining"`
	Finished  bool `json:"finished"`
	Badges    int  `json:"badges_awarded"`
}

// Status is a point-in-time view of a run
type Status struct {
	RunID     string       `json:"run_id"`
	Running   bool         `json:"running"`
	Round     int          `json:"round"`
	StartedAt time.Time    `json:"started_at"`
	Teams     []TeamStatus `json:"teams"`
}

// Tracker holds the status of the current run. Run writes to it from the
// simulation goroutine; the status server reads snapshots concurrently.
type Tracker struct {
	mu     sync.RWMutex
	status Status
	index  map[int]int
	now    func() time.Time
}

// NewTracker creates an idle tracker
func NewTracker() *Tracker {
	return &Tracker{index: make(map[int]int), now: time.Now}
}

// Snapshot returns a copy of the current status
func (t *Tracker) Snapshot() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.status
	s.Teams = append([]TeamStatus(nil), t.status.Teams...)
	return s
}

func (t *Tracker) start(runID string, teams []domain.Team) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = Status{
		RunID:     runID,
		Running:   true,
		StartedAt: t.now().UTC(),
		Teams:     make([]TeamStatus, len(teams)),
	}
	t.index = make(map[int]int, len(teams))
	for i, team := range teams {
		t.status.Teams[i] = TeamStatus{Team: team.ID, Players: team.Players}
		t.index[team.ID] = i
	}
}

func (t *Tracker) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Running = false
}

func (t *Tracker) setRound(round int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Round = round
}

func (t *Tracker) update(team int, fn func(*TeamStatus)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.index[team]; ok {
		fn(&t.status.Teams[i])
	}
}

func (t *Tracker) setRemaining(team, remaining int) {
	t.update(team, func(s *TeamStatus) { s.Remaining = remaining })
}

func (t *Tracker) setFinished(team int) {
	t.update(team, func(s *TeamStatus) { s.Finished = true })
}

func (t *Tracker) addBadges(team, badges int) {
	t.update(team, func(s *TeamStatus) { s.Badges += badges })
}
