package repository

import (
	"context"
	"errors"
	"time"

	"consultdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Name        string    `gorm:"column:name;not null"`
	ProjectType string    `gorm:"column:project_type;not null"`
	Rating      int       `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5"`
	Body        string    `gorm:"column:review;type:text;not null"`
	IsAnonymous bool      `gorm:"column:is_anonymous;not null;default:false"`
	Company     *string   `gorm:"column:company"`
	Role        *string   `gorm:"column:role"`
	Status      string    `gorm:"column:status;size:16;not null;default:pending;index"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:          m.ID,
		Name:        m.Name,
		ProjectType: m.ProjectType,
		Rating:      m.Rating,
		Body:        m.Body,
		IsAnonymous: m.IsAnonymous,
		Company:     m.Company,
		Role:        m.Role,
		Status:      domain.ReviewStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	return reviewModel{
		ID:          r.ID,
		Name:        r.Name,
		ProjectType: r.ProjectType,
		Rating:      r.Rating,
		Body:        r.Body,
		IsAnonymous: r.IsAnonymous,
		Company:     r.Company,
		Role:        r.Role,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}
	if rv.Status == "" {
		rv.Status = domain.ReviewPending
	}

	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = *toDomainReview(m)
	return nil
}

// List returns reviews newest first. An empty status matches all; limit <= 0 is unbounded.
func (r *ReviewRepository) List(ctx context.Context, status domain.ReviewStatus, limit int) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Model(&reviewModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []reviewModel
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainReview(m), nil
}

// SetStatus writes the moderation status and returns the updated review.
// Setting the current status again is not an error.
func (r *ReviewRepository) SetStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error) {
	var out *domain.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m reviewModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&reviewModel{}).
			Where("id = ?", id).
			Update("status", string(status)).Error; err != nil {
			return err
		}

		m.Status = string(status)
		out = toDomainReview(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete hard-deletes the review. A missing id yields domain.ErrNotFound.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&reviewModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
