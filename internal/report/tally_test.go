package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []int{7}, 7},
		{"odd count", []int{5, 1, 3}, 3},
		{"even count averages middle pair", []int{4, 1, 2, 3}, 2.5},
		{"even count with equal middle", []int{2, 3, 3, 9}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []int{3, 1, 2}
	Median(values)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Add(2, 5, 1)
	tally.Add(1, 2, 1)
	tally.Add(1, 1, 1)
	tally.Add(1, 1, 2)
	tally.Add(1, 3, 4)
	tally.Add(1, 4, 0)

	assert.Equal(t, []int{1, 2}, tally.Grants(1, 1))
	assert.Nil(t, tally.Grants(3, 1))

	assert.Equal(t, []PlayerTotal{
		{Team: 1, Player: 1, Grants: 2, Badges: 3},
		{Team: 1, Player: 2, Grants: 1, Badges: 1},
		{Team: 1, Player: 3, Grants: 1, Badges: 4},
		{Team: 1, Player: 4, Grants: 1, Badges: 0},
		{Team: 2, Player: 5, Grants: 1, Badges: 1},
	}, tally.Players())

	assert.Equal(t, []TeamMedian{
		{Team: 1, Players: 4, Median: 2},
		{Team: 2, Players: 1, Median: 1},
	}, tally.Medians())
}
