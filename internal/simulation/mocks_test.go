package simulation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BossRush_Go/internal/battlelog"
	"github.com/osse101/BossRush_Go/internal/domain"
)

// MockOddsClient implements OddsClient for testing
type MockOddsClient struct {
	mock.Mock
}

func (m *MockOddsClient) FetchOdds(ctx context.Context, team int) (*domain.OddsResponse, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OddsResponse), args.Error(1)
}

func (m *MockOddsClient) UpdateXP(ctx context.Context, player, xp int) error {
	args := m.Called(ctx, player, xp)
	return args.Error(0)
}

// memoryLog collects records in memory and can be told to fail
type memoryLog struct {
	records []battlelog.Record
	failOn  battlelog.EventType
}

func (l *memoryLog) Append(rec battlelog.Record) error {
	if l.failOn != "" && rec.Type == l.failOn {
		return errors.New("disk full")
	}
	l.records = append(l.records, rec)
	return nil
}

func (l *memoryLog) ofType(t battlelog.EventType) []battlelog.Record {
	var out []battlelog.Record
	for _, r := range l.records {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func (l *memoryLog) messages() []string {
	out := make([]string, len(l.records))
	for i, r := range l.records {
		out[i] = r.Message
	}
	return out
}

// odds builds an odds payload from win-rates
func odds(rates ...float64) *domain.OddsResponse {
	bosses := make([]domain.Boss, len(rates))
	for i := range rates {
		rate := rates[i]
		bosses[i] = domain.Boss{WinRate: &rate}
	}
	resp := &domain.OddsResponse{Data: bosses}
	resp.Raw, _ = json.Marshal(resp)
	return resp
}

func defaultConfig(teams ...domain.Team) Config {
	return Config{
		Teams:           teams,
		DefeatThreshold: 0.98,
		BadgesPerGrant:  1,
		XPPerBadge:      175,
	}
}
