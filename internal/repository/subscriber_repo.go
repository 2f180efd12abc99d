package repository

import (
	"context"
	"time"

	"consultdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

type subscriberModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	Email        string    `gorm:"column:email;size:320;not null;uniqueIndex"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;not null"`
}

func (subscriberModel) TableName() string { return "subscribers" }

func toDomainSubscriber(m subscriberModel) *domain.Subscriber {
	return &domain.Subscriber{ID: m.ID, Email: m.Email, SubscribedAt: m.SubscribedAt}
}

// Subscribe inserts the address unless it already exists. created reports
// whether this call added it; the stored record is returned either way.
func (r *SubscriberRepository) Subscribe(ctx context.Context, email string) (*domain.Subscriber, bool, error) {
	m := subscriberModel{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&m)
	if tx.Error != nil {
		return nil, false, tx.Error
	}
	if tx.RowsAffected == 1 {
		return toDomainSubscriber(m), true, nil
	}

	var existing subscriberModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return toDomainSubscriber(existing), false, nil
}

func (r *SubscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	var rows []subscriberModel
	if err := r.db.WithContext(ctx).Order("subscribed_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Subscriber, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSubscriber(m))
	}
	return out, nil
}
