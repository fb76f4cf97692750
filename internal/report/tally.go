package report

import (
	"sort"
)

// Tally accumulates badge grants per player in the order they were read.
type Tally struct {
	Rounds int
	grants map[playerKey][]int
}

type playerKey struct {
	team, player int
}

// PlayerTotal is the sum of every grant a player received
type PlayerTotal struct {
	Team   int `json:"team"`
	Player int `json:"player"`
	Grants int `json:"grants"`
	Badges int `json:"badges"`
}

// TeamMedian is the median of the per-player totals of one team
type TeamMedian struct {
	Team    int     `json:"team"`
	Players int     `json:"players"`
	Median  float64 `json:"median_badges"`
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{grants: make(map[playerKey][]int)}
}

// Add records badges granted to a player
func (t *Tally) Add(team, player, badges int) {
	k := playerKey{team: team, player: player}
	t.grants[k] = append(t.grants[k], badges)
}

// Grants returns the badges a player received, one entry per grant
func (t *Tally) Grants(team, player int) []int {
	return t.grants[playerKey{team: team, player: player}]
}

// Players returns every player's total, ordered by team then player
func (t *Tally) Players() []PlayerTotal {
	totals := make([]PlayerTotal, 0, len(t.grants))
	for k, badges := range t.grants {
		sum := 0
		for _, b := range badges {
			sum += b
		}
		totals = append(totals, PlayerTotal{Team: k.team, Player: k.player, Grants: len(badges), Badges: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Team != totals[j].Team {
			return totals[i].Team < totals[j].Team
		}
		return totals[i].Player < totals[j].Player
	})
	return totals
}

// Medians groups player totals by team and returns each team's median,
// ordered by team id. Teams with no grants do not appear.
func (t *Tally) Medians() []TeamMedian {
	byTeam := make(map[int][]int)
	for _, p := range t.Players() {
		byTeam[p.Team] = append(byTeam[p.Team], p.Badges)
	}

	medians := make([]TeamMedian, 0, len(byTeam))
	for team, totals := range byTeam {
		medians = append(medians, TeamMedian{Team: team, Players: len(totals), Median: Median(totals)})
	}
	sort.Slice(medians, func(i, j int) bool { return medians[i].Team < medians[j].Team })
	return medians
}

// Median returns the middle value of values, or the mean of the two middle
// values when the count is even. It returns 0 for an empty slice.
func Median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
