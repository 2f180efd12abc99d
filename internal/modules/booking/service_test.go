package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultdesk/internal/calendar"
	"consultdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Commit(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = "res-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockLedger) ListSlots(ctx context.Context, from, to string) ([]domain.Slot, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCommitted(ctx context.Context, r *domain.Reservation, confirmTo string) error {
	args := m.Called(ctx, r, confirmTo)
	return args.Error(0)
}

// 2025-03-03 is a Monday.
func testCalendar() *calendar.Calendar {
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	return calendar.New(time.UTC, 60, calendar.WithClock(func() time.Time { return now }))
}

func validRequest() CreateReservationRequest {
	return CreateReservationRequest{Name: "Ada", Contact: "ada@x.com", Date: "2025-03-10", Time: "10:00"}
}

func TestCreateReservation_Success(t *testing.T) {
	ledger := new(MockLedger)
	notifs := new(MockNotifier)
	svc := NewService(ledger, testCalendar(), notifs)

	ledger.On("Commit", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Name == "Ada" && r.Date == "2025-03-10" && r.Time == "10:00"
	})).Return(nil)
	notifs.On("BookingCommitted", mock.Anything, mock.Anything, "ada@x.com").Return(nil)

	r, err := svc.CreateReservation(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "res-1", r.ID)

	ledger.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestCreateReservation_TrimsInput(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)

	ledger.On("Commit", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Name == "Ada" && r.Contact == "+2348000000000"
	})).Return(nil)

	req := validRequest()
	req.Name = "  Ada "
	req.Contact = " +2348000000000 "
	_, err := svc.CreateReservation(context.Background(), req)
	require.NoError(t, err)
	ledger.AssertExpectations(t)
}

func TestCreateReservation_MissingFields(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)

	_, err := svc.CreateReservation(context.Background(), CreateReservationRequest{Name: "   ", Date: "2025-03-10", Time: "10:00"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "contact")
	ledger.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

// The offerability check lives in the service: a Saturday never reaches the ledger.
func TestCreateReservation_SaturdayRejectedBeforeLedger(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)

	req := validRequest()
	req.Date = "2025-03-08"
	_, err := svc.CreateReservation(context.Background(), req)

	assert.ErrorIs(t, err, calendar.ErrNotOfferable)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	ledger.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestCreateReservation_RejectsUnofferable(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{"past date", "2025-02-28", "10:00"},
		{"beyond window", "2025-05-05", "10:00"},
		{"off grid", "2025-03-10", "10:15"},
		{"after last slot", "2025-03-10", "21:00"},
		{"bad date", "10/03/2025", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := new(MockLedger)
			svc := NewService(ledger, testCalendar(), nil)

			req := validRequest()
			req.Date, req.Time = tt.date, tt.time
			_, err := svc.CreateReservation(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			ledger.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateReservation_Conflict(t *testing.T) {
	ledger := new(MockLedger)
	notifs := new(MockNotifier)
	svc := NewService(ledger, testCalendar(), notifs)

	ledger.On("Commit", mock.Anything, mock.Anything).Return(domain.ErrSlotConflict)

	_, err := svc.CreateReservation(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
	notifs.AssertNotCalled(t, "BookingCommitted", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReservation_NotificationFailureDoesNotFailBooking(t *testing.T) {
	ledger := new(MockLedger)
	notifs := new(MockNotifier)
	svc := NewService(ledger, testCalendar(), notifs)

	ledger.On("Commit", mock.Anything, mock.Anything).Return(nil)
	notifs.On("BookingCommitted", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	r, err := svc.CreateReservation(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
}

func TestCreateReservation_NotifiesWithDetachedContext(t *testing.T) {
	ledger := new(MockLedger)
	notifs := new(MockNotifier)
	svc := NewService(ledger, testCalendar(), notifs)

	ctx, cancel := context.WithCancel(context.Background())
	ledger.On("Commit", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) { cancel() })
	notifs.On("BookingCommitted", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CreateReservation(ctx, validRequest())
	require.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestConfirmationAddress(t *testing.T) {
	assert.Equal(t, "ada@x.com", confirmationAddress(CreateReservationRequest{Contact: "ada@x.com"}))
	assert.Equal(t, "", confirmationAddress(CreateReservationRequest{Contact: "+2348000000000"}))
	assert.Equal(t, "alt@x.com", confirmationAddress(CreateReservationRequest{Contact: "+2348000000000", Email: "alt@x.com"}))
}

func TestListSlots(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)
	slots := []domain.Slot{{Date: "2025-03-10", Time: "10:00"}}

	ledger.On("ListSlots", mock.Anything, "", "").Return(slots, nil)
	got, err := svc.ListSlots(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, slots, got)

	_, err = svc.ListSlots(context.Background(), "2025-03-12", "2025-03-10")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.ListSlots(context.Background(), "yesterday", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAvailability(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)

	ledger.On("ListSlots", mock.Anything, "2025-03-10", "2025-03-10").
		Return([]domain.Slot{{Date: "2025-03-10", Time: "09:30"}}, nil)

	out, err := svc.Availability(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.True(t, out.Offerable)
	require.Len(t, out.Slots, 24)
	assert.Equal(t, SlotAvailability{Time: "09:00", Booked: false, Available: true}, out.Slots[0])
	assert.Equal(t, SlotAvailability{Time: "09:30", Booked: true, Available: false}, out.Slots[1])
	assert.Equal(t, "20:30", out.Slots[23].Time)
}

func TestAvailability_Weekend(t *testing.T) {
	ledger := new(MockLedger)
	svc := NewService(ledger, testCalendar(), nil)

	ledger.On("ListSlots", mock.Anything, "2025-03-08", "2025-03-08").Return([]domain.Slot{}, nil)

	out, err := svc.Availability(context.Background(), "2025-03-08")
	require.NoError(t, err)
	assert.False(t, out.Offerable)
	for _, s := range out.Slots {
		assert.False(t, s.Available)
	}
}
