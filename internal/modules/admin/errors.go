package admin

import (
	"errors"
	"fmt"

	"consultdesk/internal/domain"
)

var (
	ErrInvalidStatus  = fmt.Errorf("%w: status must be pending or approved", domain.ErrInvalidInput)
	ErrDeliveryFailed = errors.New("test email delivery failed")
)
