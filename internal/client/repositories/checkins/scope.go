package checkins

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mindful/internal/common"
)

// SeedScope decides what "empty" means when seeding sample data.
type SeedScope string

const (
	// ScopeGlobal seeds only when nobody has any records.
	ScopeGlobal SeedScope = "global"
	// ScopeUser seeds when the signing-in user has no records.
	ScopeUser SeedScope = "user"
)

func ParseSeedScope(s string) (SeedScope, error) {
	switch SeedScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeGlobal, "":
		return ScopeGlobal, nil
	case ScopeUser:
		return ScopeUser, nil
	}
	return "", fmt.Errorf("%w: unknown seed scope %q", common.ErrorValidation, s)
}
