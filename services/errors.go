package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey detects a unique-constraint violation surfaced by the
// store. The gorm sqlite driver does not always translate these to
// gorm.ErrDuplicatedKey, so the sqlite error text is checked too.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
