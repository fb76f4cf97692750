package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BossRush_Go/internal/domain"
)

// rosterFile is the on-disk layout of ROSTER_PATH:
//
//	teams:
//	  - id: 1
//	    players: 4
type rosterFile struct {
	Teams []domain.Team `yaml:"teams"`
}

// LoadRoster reads the team roster from a YAML file
func LoadRoster(path string) ([]domain.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadRoster, err)
	}

	var roster rosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseRoster, err)
	}

	return roster.Teams, nil
}
