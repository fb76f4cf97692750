package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/BossRush_Go/internal/battlelog"
	"github.com/osse101/BossRush_Go/internal/domain"
	"github.com/osse101/BossRush_Go/internal/logger"
	"github.com/osse101/BossRush_Go/internal/metrics"
)

// ErrMaxRoundsExceeded is returned by Run when MaxRounds is set and teams
// still have bosses remaining after that many rounds.
var ErrMaxRoundsExceeded = errors.New(ErrMsgMaxRoundsExceeded)

// OddsClient is the subset of the game API the driver needs
type OddsClient interface {
	FetchOdds(ctx context.Context, team int) (*domain.OddsResponse, error)
	UpdateXP(ctx context.Context, player, xp int) error
}

// Appender receives battle log records
type Appender interface {
	Append(rec battlelog.Record) error
}

// Config holds the tunables of a run
type Config struct {
	Teams           []domain.Team
	DefeatThreshold float64
	BadgesPerGrant  int
	XPPerBadge      int
	MaxRounds       int // 0 means no limit
	RoundDelay      time.Duration
}

// Summary describes a finished (or aborted) run
type Summary struct {
	RunID         string
	Rounds        int
	Badges        map[int]int // team -> badges awarded
	Defeats       map[int]int // team -> boss_defeated records
	FinishedRound map[int]int // team -> round it reached zero bosses
	XPFailures    int
}

// Engine runs the boss battle round loop
type Engine struct {
	cfg     Config
	client  OddsClient
	log     Appender
	tracker *Tracker
}

// NewEngine creates an engine. tracker may be nil.
func NewEngine(cfg Config, client OddsClient, log Appender, tracker *Tracker) *Engine {
	if tracker == nil {
		tracker = NewTracker()
	}
	return &Engine{
		cfg:     cfg,
		client:  client,
		log:     log,
		tracker: tracker,
	}
}

// Tracker returns the status tracker updated by Run
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// Run plays rounds until every team reports zero bosses remaining. A team
// that reaches zero is finished: it is neither polled nor rewarded again.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	if err := domain.ValidateRoster(e.cfg.Teams); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRoster, err)
	}

	runID := logger.GetRunID(ctx)
	if runID == "" {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}
	log := logger.FromContext(ctx)

	summary := &Summary{
		RunID:         runID,
		Badges:        make(map[int]int, len(e.cfg.Teams)),
		Defeats:       make(map[int]int, len(e.cfg.Teams)),
		FinishedRound: make(map[int]int, len(e.cfg.Teams)),
	}

	e.tracker.start(runID, e.cfg.Teams)
	defer e.tracker.stop()

	log.Info(LogMsgRunStarted, "teams", len(e.cfg.Teams), "max_rounds", e.cfg.MaxRounds)
	if err := e.append(battlelog.GameStart()); err != nil {
		return summary, err
	}

	active := append([]domain.Team(nil), e.cfg.Teams...)
	for round := 1; len(active) > 0; round++ {
		if e.cfg.MaxRounds > 0 && round > e.cfg.MaxRounds {
			log.Warn(LogMsgMaxRoundsExceeded, "rounds", e.cfg.MaxRounds, "teams_remaining", len(active))
			return summary, ErrMaxRoundsExceeded
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		log.Info(LogMsgRoundStarted, "round", round)
		e.tracker.setRound(round)
		if err := e.append(battlelog.RoundStart(round)); err != nil {
			return summary, err
		}

		remaining := make([]int, len(active))
		for i, team := range active {
			left, defeated, err := e.attempt(ctx, team.ID, round)
			if err != nil {
				return summary, err
			}
			if defeated {
				summary.Defeats[team.ID]++
			}
			remaining[i] = left
			metrics.SetBossesRemaining(team.ID, left)
			e.tracker.setRemaining(team.ID, left)
		}

		next := make([]domain.Team, 0, len(active))
		for i, team := range active {
			if remaining[i] == 0 {
				log.Info(LogMsgTeamFinished, "round", round, "team", team.ID)
				summary.FinishedRound[team.ID] = round
				e.tracker.setFinished(team.ID)
				continue
			}
			failures, err := e.allocate(ctx, team, round)
			summary.XPFailures += failures
			if err != nil {
				return summary, err
			}
			badges := team.Players * e.cfg.BadgesPerGrant
			summary.Badges[team.ID] += badges
			e.tracker.addBadges(team.ID, badges)
			next = append(next, team)
		}

		if err := e.append(battlelog.RoundEnd(round)); err != nil {
			return summary, err
		}
		summary.Rounds = round
		active = next

		if len(active) > 0 && e.cfg.RoundDelay > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(e.cfg.RoundDelay):
			}
		}
	}

	if err := e.append(battlelog.GameOver(len(e.cfg.Teams))); err != nil {
		return summary, err
	}
	log.Info(LogMsgRunFinished, "rounds", summary.Rounds, "xp_failures", summary.XPFailures)

	return summary, nil
}

// AttemptBossDefeat fetches odds for a team and returns how many bosses it
// has left. Unusable responses are logged and degrade to 0, except a missing
// first win-rate, which still returns the count.
func (e *Engine) AttemptBossDefeat(ctx context.Context, team, round int) (int, error) {
	left, _, err := e.attempt(ctx, team, round)
	return left, err
}

func (e *Engine) attempt(ctx context.Context, team, round int) (remaining int, defeated bool, err error) {
	odds, err := e.client.FetchOdds(ctx, team)
	if err != nil || odds == nil || odds.Data == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, false, ctxErr
		}
		logger.FromContext(ctx).Warn(LogMsgOddsUnavailable, "round", round, "team", team, "error", err)
		return 0, false, e.append(battlelog.APIError(round, team, battlelog.ReasonMalformedResponse))
	}

	if len(odds.Data) == 0 {
		logger.FromContext(ctx).Warn(LogMsgOddsUnavailable, "round", round, "team", team, "reason", battlelog.ReasonNoData)
		return 0, false, e.append(battlelog.APIError(round, team, battlelog.ReasonNoData))
	}

	remaining = countRemaining(odds.Data)

	first := odds.Data[0].WinRate
	if first == nil {
		logger.FromContext(ctx).Warn(LogMsgOddsUnavailable, "round", round, "team", team, "reason", battlelog.ReasonMissingWinRate)
		return remaining, false, e.append(battlelog.APIError(round, team, battlelog.ReasonMissingWinRate))
	}

	if *first > e.cfg.DefeatThreshold {
		logger.FromContext(ctx).Info(LogMsgBossDefeated, "round", round, "team", team, "win_rate", *first)
		if err := e.append(battlelog.APIResponse(round, team, odds.Raw)); err != nil {
			return 0, false, err
		}
		if err := e.append(battlelog.BossDefeated(round, team)); err != nil {
			return 0, false, err
		}
		// The defeated boss no longer counts toward this round's remaining
		if *first < domain.MaxWinRate {
			remaining--
		}
		return remaining, true, nil
	}

	return remaining, false, nil
}

// AllocateBadges grants every player on the team the configured badges and
// pushes the matching XP to the API. XP update failures are not fatal.
func (e *Engine) AllocateBadges(ctx context.Context, team domain.Team, round int) error {
	_, err := e.allocate(ctx, team, round)
	return err
}

func (e *Engine) allocate(ctx context.Context, team domain.Team, round int) (failures int, err error) {
	badges := e.cfg.BadgesPerGrant
	xp := badges * e.cfg.XPPerBadge

	for _, player := range team.PlayerIDs() {
		grant := domain.Grant{Round: round, Team: team.ID, Player: player, Badges: badges, XP: xp}
		if err := e.append(battlelog.BadgeGrant(grant)); err != nil {
			return failures, err
		}

		if err := e.client.UpdateXP(ctx, player, xp); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return failures, ctxErr
			}
			failures++
			logger.FromContext(ctx).Warn(LogMsgXPUpdateFailed, "round", round, "team", team.ID, "player", player, "error", err)
		}
	}

	return failures, nil
}

func (e *Engine) append(rec battlelog.Record) error {
	if err := e.log.Append(rec); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLog, err)
	}
	return nil
}

// countRemaining counts bosses whose win-rate is below MaxWinRate. Entries
// without a win-rate are not counted.
func countRemaining(bosses []domain.Boss) int {
	n := 0
	for _, b := range bosses {
		if b.WinRate != nil && *b.WinRate < domain.MaxWinRate {
			n++
		}
	}
	return n
}
