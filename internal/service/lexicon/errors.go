package lexicon

import (
	"fmt"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// ErrWordNotFound is returned by Resolve when no tier produced a usable record.
var ErrWordNotFound = fmt.Errorf("word not found by any source: %w", domain.ErrNotFound)
