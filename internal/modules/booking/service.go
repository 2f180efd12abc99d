package booking

import (
	"context"
	"errors"

	"consultdesk/internal/calendar"
	"consultdesk/internal/domain"
	"consultdesk/internal/metrics"
	"consultdesk/internal/pkg/validator"
)

// Service is the only path into the ledger. Offerability is decided here,
// before Commit; the ledger itself only guards uniqueness.
type Service struct {
	ledger   ReservationLedger
	calendar *calendar.Calendar
	notifs   NotificationSender
}

func NewService(ledger ReservationLedger, cal *calendar.Calendar, notifs NotificationSender) *Service {
	return &Service{ledger: ledger, calendar: cal, notifs: notifs}
}

func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	req.normalize()
	if fields := validator.Validate(req); fields != nil {
		metrics.IncReservation(metrics.ReservationRejected)
		return nil, domain.NewValidationError(fields)
	}

	if _, err := s.calendar.CheckSlot(req.Date, req.Time); err != nil {
		metrics.IncReservation(metrics.ReservationRejected)
		return nil, err
	}

	r := &domain.Reservation{
		Name:    req.Name,
		Contact: req.Contact,
		Date:    req.Date,
		Time:    req.Time,
	}
	if err := s.ledger.Commit(ctx, r); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			metrics.IncReservation(metrics.ReservationConflict)
		}
		return nil, err
	}
	metrics.IncReservation(metrics.ReservationCommitted)

	// committed; the caller's cancellation must not stop the notifications
	if s.notifs != nil {
		_ = s.notifs.BookingCommitted(context.WithoutCancel(ctx), r, confirmationAddress(req))
	}

	return r, nil
}

// ListSlots returns booked (date, time) pairs, optionally within [from, to].
func (s *Service) ListSlots(ctx context.Context, from, to string) ([]domain.Slot, error) {
	if from != "" {
		if _, err := s.calendar.ParseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if _, err := s.calendar.ParseDate(to); err != nil {
			return nil, err
		}
	}
	if from != "" && to != "" && from > to {
		return nil, ErrInvalidRange
	}

	return s.ledger.ListSlots(ctx, from, to)
}

// Availability renders the slot grid of one date with occupancy.
func (s *Service) Availability(ctx context.Context, date string) (*AvailabilityResponse, error) {
	d, err := s.calendar.ParseDate(date)
	if err != nil {
		return nil, err
	}

	booked, err := s.ledger.ListSlots(ctx, date, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b.Time] = true
	}

	offerable := s.calendar.IsOfferable(d)
	grid := calendar.EnumerateSlots(d)
	out := &AvailabilityResponse{
		Date:      date,
		Offerable: offerable,
		Slots:     make([]SlotAvailability, 0, len(grid)),
	}
	for _, t := range grid {
		out.Slots = append(out.Slots, SlotAvailability{
			Time:      t,
			Booked:    taken[t],
			Available: offerable && !taken[t],
		})
	}
	return out, nil
}

// confirmationAddress prefers the explicit email, then an email-shaped contact.
func confirmationAddress(req CreateReservationRequest) string {
	if req.Email != "" {
		return req.Email
	}
	if validator.IsEmail(req.Contact) {
		return req.Contact
	}
	return ""
}
