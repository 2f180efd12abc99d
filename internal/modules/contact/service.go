package contact

import (
	"context"

	"consultdesk/internal/domain"
	"consultdesk/internal/pkg/validator"
)

type Service struct {
	contacts ContactStore
	notifs   NotificationSender
}

func NewService(contacts ContactStore, notifs NotificationSender) *Service {
	return &Service{contacts: contacts, notifs: notifs}
}

func (s *Service) Submit(ctx context.Context, req SubmitContactRequest) (*domain.ContactMessage, error) {
	req.normalize()
	if fields := validator.Validate(req); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	m := &domain.ContactMessage{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		WhatsApp:   req.WhatsApp,
		BrandAbout: req.BrandAbout,
		Goals:      req.Goals,
		Services:   req.Services,
		Message:    req.Message,
	}
	if err := s.contacts.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.ContactReceived(context.WithoutCancel(ctx), m)
	}
	return m, nil
}
