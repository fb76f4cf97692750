package maintenance

// Reset statements. Bounds and the baseline level are bound as parameters.
const (
	queryResetCharacterLevels = `UPDATE characters SET level_id = $1 WHERE id BETWEEN $2 AND $3`
	queryResetPlayerXP        = `UPDATE players SET total_xp = 0, xp = 0, att_xtra_points = 0`
	queryDeleteLevelAttrs     = `DELETE FROM character_level_attributes WHERE character_id BETWEEN $1 AND $2 AND level_id <> $3`
)

// Log messages
const (
	LogMsgCharacterLevelsReset = "level_id reset for characters"
	LogMsgPlayerXPReset        = "total_xp, xp, and att_xtra_points reset to 0 for all players"
	LogMsgLevelAttrsDeleted    = "character_level_attributes deleted above baseline"
	LogMsgResetCommitted       = "Reset committed"
	LogMsgLogDeleted           = "Battle log deleted"
	LogMsgLogMissing           = "Battle log does not exist"
)

// Error messages
const (
	ErrMsgInvalidRange        = "invalid character id range"
	ErrMsgInvalidBaseline     = "baseline level must be positive"
	ErrMsgFailedToResetLevels = "failed to reset character levels"
	ErrMsgFailedToResetXP     = "failed to reset player xp"
	ErrMsgFailedToDeleteAttrs = "failed to delete character level attributes"
	ErrMsgFailedToCommit      = "failed to commit reset"
	ErrMsgFailedToRemoveLog   = "failed to remove battle log"
)
