package arena

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/BossRush_Go/internal/domain"
)

// Scenario scripts the odds the arena serves to each team
type Scenario struct {
	Teams []TeamScript `yaml:"teams" validate:"required,min=1,dive"`
}

// TeamScript is the sequence of responses for one team. The last step
// repeats once the sequence is exhausted.
type TeamScript struct {
	ID    int    `yaml:"id" validate:"min=1"`
	Steps []Step `yaml:"odds" validate:"required,min=1,dive"`
}

// Step is one odds response. Status and Raw let a scenario script failures:
// a non-zero Status is sent with an empty body, and Raw replaces the body.
type Step struct {
	WinRates []*float64 `yaml:"win_rates"`
	Status   int        `yaml:"status" validate:"omitempty,min=100,max=599"`
	Raw      string     `yaml:"raw"`
}

var scenarioValidator = validator.New()

// LoadScenario reads and validates a YAML scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadScenario, err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates a YAML scenario
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks struct tags and rejects duplicate team ids
func (s *Scenario) Validate() error {
	if err := scenarioValidator.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidScenario, err)
	}
	seen := make(map[int]bool, len(s.Teams))
	for _, t := range s.Teams {
		if seen[t.ID] {
			return fmt.Errorf("%s: %d", ErrMsgDuplicateTeam, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// body renders the step as an odds payload
func (st Step) body() []byte {
	if st.Raw != "" {
		return []byte(st.Raw)
	}
	resp := domain.OddsResponse{Data: make([]domain.Boss, len(st.WinRates))}
	for i, rate := range st.WinRates {
		resp.Data[i] = domain.Boss{WinRate: rate}
	}
	// Boss only holds a float pointer, so Marshal can't fail
	b, _ := json.Marshal(resp)
	return b
}
