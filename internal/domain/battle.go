package domain

import (
	"encoding/json"
	"fmt"
)

// Team is one side of the boss battle. Player ids are derived from the team id
// and the player count, so the roster alone determines every id.
type Team struct {
	ID      int `yaml:"id" json:"id" validate:"min=1"`
	Players int `yaml:"players" json:"players" validate:"min=1"`
}

// PlayerID returns the id of the player at 1-based index i on the team.
func (t Team) PlayerID(i int) int {
	return i + (t.ID-1)*t.Players
}

// PlayerIDs returns every player id on the team in ascending order.
func (t Team) PlayerIDs() []int {
	ids := make([]int, 0, t.Players)
	for i := 1; i <= t.Players; i++ {
		ids = append(ids, t.PlayerID(i))
	}
	return ids
}

// Boss is one entry of the odds payload. WinRate is nil when the API omits it.
type Boss struct {
	WinRate *float64 `json:"win_rate"`
}

// OddsResponse is the body of GET /games/odds/{team}. Data is nil only when
// the field is absent. A present but empty value (null, [], {}, "", 0, false)
// decodes to an empty non-nil slice.
type OddsResponse struct {
	Data []Boss `json:"data"`

	// Raw holds the undecoded body for diagnostics
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the distinction between a missing data field and an
// empty one.
func (r *OddsResponse) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	raw, ok := fields[fieldData]
	if !ok {
		r.Data = nil
		return nil
	}

	empty, err := isEmptyJSON(raw)
	if err != nil {
		return err
	}
	if empty {
		r.Data = []Boss{}
		return nil
	}

	var data []Boss
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	r.Data = data
	return nil
}

func isEmptyJSON(raw json.RawMessage) (bool, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, err
	}
	switch x := v.(type) {
	case nil:
		return true, nil
	case []any:
		return len(x) == 0, nil
	case map[string]any:
		return len(x) == 0, nil
	case string:
		return x == "", nil
	case float64:
		return x == 0, nil
	case bool:
		return !x, nil
	}
	return false, nil
}

// XPUpdate is the body of PUT /characters/{id}/xp.
type XPUpdate struct {
	XP int `json:"XP" validate:"min=0"`
}

// Grant records badges awarded to a single player in one round.
type Grant struct {
	Round  int
	Team   int
	Player int
	Badges int
	XP     int
}

// Validate checks that the team has a positive id and at least one player.
func (t Team) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("%w: id %d", ErrInvalidTeam, t.ID)
	}
	if t.Players < 1 {
		return fmt.Errorf("%w: team %d has %d", ErrInvalidPlayer, t.ID, t.Players)
	}
	return nil
}

// ValidateRoster validates every team and rejects repeated team ids.
func ValidateRoster(teams []Team) error {
	if len(teams) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[int]bool, len(teams))
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateTeam, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
