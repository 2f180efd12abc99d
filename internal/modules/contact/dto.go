package contact

import "strings"

type SubmitContactRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Email      string  `json:"email" validate:"required,email,max=320"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	WhatsApp   string  `json:"whatsapp" validate:"required,max=50"`
	BrandAbout string  `json:"brand_about" validate:"required,max=5000"`
	Goals      string  `json:"goals" validate:"required,max=5000"`
	Services   string  `json:"services" validate:"required,max=500"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=5000"`
}

func (r *SubmitContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.WhatsApp = strings.TrimSpace(r.WhatsApp)
	r.BrandAbout = strings.TrimSpace(r.BrandAbout)
	r.Goals = strings.TrimSpace(r.Goals)
	r.Services = strings.TrimSpace(r.Services)
	r.Phone = optional(r.Phone)
	r.Message = optional(r.Message)
}

func optional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
