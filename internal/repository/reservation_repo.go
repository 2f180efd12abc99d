package repository

import (
	"context"
	"fmt"
	"time"

	"consultdesk/internal/database"
	"consultdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationRepository is the booking ledger. The composite unique index on
// (booking_date, booking_time) is the only thing that decides who owns a slot.
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Name        string    `gorm:"column:name;not null"`
	Contact     string    `gorm:"column:contact;not null"`
	BookingDate string    `gorm:"column:booking_date;size:10;not null;uniqueIndex:idx_reservations_slot,priority:1"`
	BookingTime string    `gorm:"column:booking_time;size:5;not null;uniqueIndex:idx_reservations_slot,priority:2"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:        m.ID,
		Name:      m.Name,
		Contact:   m.Contact,
		Date:      m.BookingDate,
		Time:      m.BookingTime,
		CreatedAt: m.CreatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:          r.ID,
		Name:        r.Name,
		Contact:     r.Contact,
		BookingDate: r.Date,
		BookingTime: r.Time,
		CreatedAt:   r.CreatedAt,
	}
}

// Commit inserts the reservation in a single statement. A concurrent or prior
// holder of the same slot makes the insert fail with domain.ErrSlotConflict and
// leaves the table unchanged. Offerability is not checked here.
func (r *ReservationRepository) Commit(ctx context.Context, res *domain.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	m := toReservationModel(res)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s", domain.ErrSlotConflict, res.Date, res.Time)
		}
		return err
	}
	*res = *toDomainReservation(m)
	return nil
}

// ListSlots returns booked slots ordered by date and time. Empty bounds are open.
func (r *ReservationRepository) ListSlots(ctx context.Context, from, to string) ([]domain.Slot, error) {
	q := r.db.WithContext(ctx).Model(&reservationModel{})
	if from != "" {
		q = q.Where("booking_date >= ?", from)
	}
	if to != "" {
		q = q.Where("booking_date <= ?", to)
	}

	var rows []reservationModel
	if err := q.Select("booking_date", "booking_time").
		Order("booking_date ASC, booking_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Slot, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Slot{Date: m.BookingDate, Time: m.BookingTime})
	}
	return out, nil
}

// ListAll returns full records, newest first.
func (r *ReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&reservationModel{}).Count(&n).Error
	return n, err
}
