package maintenance

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/BossRush_Go/internal/database"
	"github.com/osse101/BossRush_Go/internal/logger"
)

// Options bounds a reset
type Options struct {
	BaselineLevel  int
	MinCharacterID int
	MaxCharacterID int
}

// Result holds the rows touched by each reset statement
type Result struct {
	CharactersReset   int64 `json:"characters_reset"`
	PlayersReset      int64 `json:"players_reset"`
	AttributesDeleted int64 `json:"attributes_deleted"`
}

// Resetter returns the game database to its pre-simulation state
type Resetter struct {
	db   database.TxBeginner
	opts Options
}

// NewResetter validates the options and returns a Resetter
func NewResetter(db database.TxBeginner, opts Options) (*Resetter, error) {
	if opts.BaselineLevel < 1 {
		return nil, errors.New(ErrMsgInvalidBaseline)
	}
	if opts.MinCharacterID < 1 || opts.MaxCharacterID < opts.MinCharacterID {
		return nil, fmt.Errorf("%s: %d..%d", ErrMsgInvalidRange, opts.MinCharacterID, opts.MaxCharacterID)
	}
	return &Resetter{db: db, opts: opts}, nil
}

// Reset runs the three reset statements in a single transaction. Any failure
// rolls the whole reset back.
func (r *Resetter) Reset(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)

	tx, err := database.BeginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer database.SafeRollback(ctx, tx)

	var res Result

	tag, err := tx.Exec(ctx, queryResetCharacterLevels, r.opts.BaselineLevel, r.opts.MinCharacterID, r.opts.MaxCharacterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResetLevels, err)
	}
	res.CharactersReset = tag.RowsAffected()
	log.Info(LogMsgCharacterLevelsReset, "min_id", r.opts.MinCharacterID, "max_id", r.opts.MaxCharacterID, "rows", res.CharactersReset)

	tag, err = tx.Exec(ctx, queryResetPlayerXP)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResetXP, err)
	}
	res.PlayersReset = tag.RowsAffected()
	log.Info(LogMsgPlayerXPReset, "rows", res.PlayersReset)

	tag, err = tx.Exec(ctx, queryDeleteLevelAttrs, r.opts.MinCharacterID, r.opts.MaxCharacterID, r.opts.BaselineLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteAttrs, err)
	}
	res.AttributesDeleted = tag.RowsAffected()
	log.Info(LogMsgLevelAttrsDeleted, "baseline", r.opts.BaselineLevel, "rows", res.AttributesDeleted)

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	log.Info(LogMsgResetCommitted)

	return &res, nil
}

// RemoveLog deletes the battle log at path. A missing file is not an error;
// existed reports whether there was anything to delete.
func RemoveLog(path string) (existed bool, err error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info(LogMsgLogMissing, "path", path)
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveLog, err)
	}
	logger.Info(LogMsgLogDeleted, "path", path)
	return true, nil
}
