package review

import (
	"fmt"

	"consultdesk/internal/domain"
)

// MaxListLimit caps a single public page of reviews.
const MaxListLimit = 100

var ErrInvalidLimit = fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidInput)
