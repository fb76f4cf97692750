package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BossRush_Go/internal/battlelog"
	"github.com/osse101/BossRush_Go/internal/domain"
	"github.com/osse101/BossRush_Go/internal/simulation"
)

func structuredLog(t *testing.T, records ...battlelog.Record) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := battlelog.NewWriter(&buf, "test-run")
	for _, rec := range records {
		require.NoError(t, w.Append(rec))
	}
	return &buf
}

func grant(round, team, player, badges int) battlelog.Record {
	return battlelog.BadgeGrant(domain.Grant{Round: round, Team: team, Player: player, Badges: badges, XP: badges * 175})
}

func TestParseStructured(t *testing.T) {
	log := structuredLog(t,
		battlelog.GameStart(),
		battlelog.RoundStart(1),
		grant(1, 1, 1, 1),
		grant(1, 1, 2, 1),
		grant(1, 2, 3, 2),
		battlelog.RoundEnd(1),
		battlelog.RoundStart(2),
		battlelog.APIResponse(2, 2, []byte(`{"data":[{"win_rate":0.99}]}`)),
		battlelog.BossDefeated(2, 2),
		grant(2, 1, 1, 1),
		battlelog.RoundEnd(2),
		battlelog.GameOver(2),
	)

	tally, err := Parse(log)

	require.NoError(t, err)
	assert.Equal(t, 2, tally.Rounds)
	assert.Equal(t, []int{1, 1}, tally.Grants(1, 1))
	assert.Equal(t, []TeamMedian{
		{Team: 1, Players: 2, Median: 1.5},
		{Team: 2, Players: 1, Median: 2},
	}, tally.Medians())
}

func TestParseStructuredRoundMismatch(t *testing.T) {
	log := structuredLog(t,
		battlelog.GameStart(),
		battlelog.RoundStart(1),
		grant(1, 1, 1, 1),
		grant(2, 1, 2, 1),
	)

	_, err := Parse(log)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRoundMismatch))
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseStructuredGrantBeforeFirstRound(t *testing.T) {
	log := structuredLog(t,
		battlelog.GameStart(),
		grant(0, 1, 1, 1),
		battlelog.RoundStart(1),
	)

	_, err := Parse(log)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRoundMismatch))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseLegacyGrantBeforeFirstRound(t *testing.T) {
	input := "Round 0: Team 1 - Player 1 received 5 badges (875 XP)\n" +
		"Starting Round 1\n" +
		"Round 1: Team 1 - Player 1 received 1 badges (175 XP)\n"

	tally, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []int{1}, tally.Grants(1, 1))
}

func TestParseStructuredMalformed(t *testing.T) {
	log := structuredLog(t, battlelog.GameStart(), battlelog.RoundStart(1))
	log.WriteString("{not json\n")

	_, err := Parse(log)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n  \n"} {
		tally, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 0, tally.Rounds)
		assert.Empty(t, tally.Medians())
	}
}

func TestParseLegacy(t *testing.T) {
	input := `Game Simulation Log

Starting Round 1
Round 1: Team 1 - Player 1 received 1 badges (175 XP)
Round 1: Team 1 - Player 2 received 1 badges (175 XP)
Round 1: Team 2 defeated the boss!
End of Round 1
Starting Round 2
Round 2: Team 1 - Player 1 received 3 badges (525 XP)
Round 1: Team 1 - Player 2 received 9 badges (1575 XP)
Round 2: Team 1 - Error: Empty or malformed response from API
Round 2: Team 1 - Player 2 received 1 badges (175 XP)
End of Round 2
Both teams have defeated all bosses. Ending game.
`
	tally, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, tally.Rounds)
	assert.Equal(t, []int{1, 3}, tally.Grants(1, 1))
	// The stale round 1 line in round 2 is ignored
	assert.Equal(t, []int{1, 1}, tally.Grants(1, 2))
	assert.Equal(t, []TeamMedian{{Team: 1, Players: 2, Median: 3}}, tally.Medians())
}

// scriptedArena serves a fixed sequence of win-rates per team
type scriptedArena struct {
	mu    sync.Mutex
	rates map[int][]float64
	xp    map[int]int
}

func (a *scriptedArena) FetchOdds(_ context.Context, team int) (*domain.OddsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	seq := a.rates[team]
	rate := seq[0]
	if len(seq) > 1 {
		a.rates[team] = seq[1:]
	}
	return &domain.OddsResponse{Data: []domain.Boss{{WinRate: &rate}}, Raw: []byte(`{}`)}, nil
}

func (a *scriptedArena) UpdateXP(_ context.Context, player, xp int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.xp[player] += xp
	return nil
}

func TestParseRoundTrip(t *testing.T) {
	arena := &scriptedArena{
		rates: map[int][]float64{
			1: {0.5, 0.6, 0.99},
			2: {0.1, 0.99},
		},
		xp: make(map[int]int),
	}
	teams := []domain.Team{{ID: 1, Players: 3}, {ID: 2, Players: 3}}

	var buf bytes.Buffer
	engine := simulation.NewEngine(simulation.Config{
		Teams:           teams,
		DefeatThreshold: 0.98,
		BadgesPerGrant:  2,
		XPPerBadge:      175,
	}, arena, battlelog.NewWriter(&buf, "round-trip"), nil)

	summary, err := engine.Run(context.Background())
	require.NoError(t, err)

	tally, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, summary.Rounds, tally.Rounds)
	for _, team := range teams {
		for _, player := range team.PlayerIDs() {
			want := summary.Badges[team.ID] / team.Players
			got := 0
			for _, b := range tally.Grants(team.ID, player) {
				got += b
			}
			assert.Equal(t, want, got, "team %d player %d", team.ID, player)
			assert.Equal(t, want*175, arena.xp[player])
		}
	}
	assert.Equal(t, []TeamMedian{
		{Team: 1, Players: 3, Median: 4},
		{Team: 2, Players: 3, Median: 2},
	}, tally.Medians())
}
