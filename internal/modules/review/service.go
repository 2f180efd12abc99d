package review

import (
	"context"

	"consultdesk/internal/domain"
	"consultdesk/internal/metrics"
	"consultdesk/internal/pkg/validator"
)

type Service struct {
	reviews ReviewStore
	notifs  NotificationSender
}

func NewService(reviews ReviewStore, notifs NotificationSender) *Service {
	return &Service{reviews: reviews, notifs: notifs}
}

// Submit stores a new review as pending. Only moderation can approve it.
func (s *Service) Submit(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error) {
	req.normalize()

	fields := validator.Validate(req)
	if !req.IsAnonymous && req.Name == "" {
		fields = put(fields, "name", "required")
	}
	if req.ProjectType != "" && !domain.IsProjectCategory(req.ProjectType) {
		fields = put(fields, "project_type", "oneof")
	}
	if fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	name := req.Name
	if req.IsAnonymous {
		name = domain.AnonymousName
	}

	rv := &domain.Review{
		Name:        name,
		ProjectType: req.ProjectType,
		Rating:      req.Rating,
		Body:        req.Body,
		IsAnonymous: req.IsAnonymous,
		Company:     req.Company,
		Role:        req.Role,
		Status:      domain.ReviewPending,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	metrics.IncReview("submitted")

	if s.notifs != nil {
		_ = s.notifs.ReviewSubmitted(context.WithoutCancel(ctx), rv, req.Email)
	}
	return rv, nil
}

// ListApproved returns approved reviews, newest first. limit 0 means no cap
// beyond MaxListLimit.
func (s *Service) ListApproved(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.reviews.List(ctx, domain.ReviewApproved, limit)
}

func put(m map[string]string, k, v string) map[string]string {
	if m == nil {
		m = map[string]string{}
	}
	m[k] = v
	return m
}
