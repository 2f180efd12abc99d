package booking

import (
	"fmt"

	"consultdesk/internal/domain"
)

var ErrInvalidRange = fmt.Errorf("%w: from must not be after to", domain.ErrInvalidInput)
