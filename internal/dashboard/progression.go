// Package dashboard holds the derived-state rules behind the farmer
// dashboard: XP progression, the recent-activity feed, summary stats and
// the produce emoji table. Everything here is a pure function over
// caller-owned values.
package dashboard

import (
	"errors"

	"farmconnect/internal/models"
)

const (
	// XPPerLevel is the XP span of every level.
	XPPerLevel = 100
	// ProduceAddedXP is awarded for each recorded produce entry.
	ProduceAddedXP = 10
)

// ErrNegativeXP is returned when an award would decrease a user's XP.
var ErrNegativeXP = errors.New("xp award must not be negative")

// LevelForXP returns floor(xp/100)+1. Negative xp is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// AwardXP returns a copy of user with amount added to XP and the level
// re-derived. The input is not modified.
func AwardXP(user models.User, amount int) (models.User, error) {
	if amount < 0 {
		return user, ErrNegativeXP
	}
	user.XP += amount
	user.Level = LevelForXP(user.XP)
	return user, nil
}

// Progress reports the user's position inside their current level.
func Progress(xp int) models.LevelProgress {
	if xp < 0 {
		xp = 0
	}
	into := xp % XPPerLevel
	return models.LevelProgress{
		XP:            xp,
		Level:         LevelForXP(xp),
		XPIntoLevel:   into,
		XPToNextLevel: XPPerLevel - into,
	}
}
