package booking

import (
	"context"

	"consultdesk/internal/domain"
)

// ReservationLedger stores granted reservations and enforces one per slot.
type ReservationLedger interface {
	Commit(ctx context.Context, r *domain.Reservation) error
	ListSlots(ctx context.Context, from, to string) ([]domain.Slot, error)
}

type NotificationSender interface {
	BookingCommitted(ctx context.Context, r *domain.Reservation, confirmTo string) error
}
