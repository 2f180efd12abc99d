package repository

import (
	"context"
	"time"

	"consultdesk/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Name        string    `gorm:"column:name;not null"`
	Email       string    `gorm:"column:email;not null"`
	Phone       *string   `gorm:"column:phone"`
	WhatsApp    string    `gorm:"column:whatsapp;not null"`
	BrandAbout  string    `gorm:"column:brand_about;type:text;not null"`
	Goals       string    `gorm:"column:goals;type:text;not null"`
	Services    string    `gorm:"column:services;not null"`
	Message     *string   `gorm:"column:message;type:text"`
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index"`
}

func (contactModel) TableName() string { return "contact_messages" }

func toDomainContact(m contactModel) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		WhatsApp:    m.WhatsApp,
		BrandAbout:  m.BrandAbout,
		Goals:       m.Goals,
		Services:    m.Services,
		Message:     m.Message,
		SubmittedAt: m.SubmittedAt,
	}
}

func toContactModel(c *domain.ContactMessage) contactModel {
	return contactModel{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		WhatsApp:    c.WhatsApp,
		BrandAbout:  c.BrandAbout,
		Goals:       c.Goals,
		Services:    c.Services,
		Message:     c.Message,
		SubmittedAt: c.SubmittedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.ContactMessage) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now().UTC()
	}

	m := toContactModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainContact(m)
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactModel
	if err := r.db.WithContext(ctx).Order("submitted_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ContactMessage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}
