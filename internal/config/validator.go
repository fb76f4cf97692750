package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BossRush_Go/internal/logger"
)

var validate = validator.New()

// Validate checks the struct tags on Config and cross-field rules the tags
// can't express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, formatValidationError(err))
	}

	seen := make(map[int]bool, len(c.Teams))
	for _, team := range c.Teams {
		if seen[team.ID] {
			return fmt.Errorf("%s: "+ErrMsgDuplicateTeam, ErrMsgInvalidConfig, team.ID)
		}
		seen[team.ID] = true
	}

	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == DefaultDBPassword {
		switch c.Environment {
		case logger.EnvironmentProduction, logger.EnvironmentStaging:
			warnings = append(warnings, fmt.Sprintf("DB_PASSWORD is using the default value in %s", c.Environment))
		}
	}
	if c.MaxRounds == 0 {
		warnings = append(warnings, "MAX_ROUNDS is 0; the simulation runs until every team reports zero bosses")
	}

	return warnings
}

// formatValidationError flattens validator errors into "Field: tag" pairs
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", e.Namespace(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
