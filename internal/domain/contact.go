package domain

import "time"

// ContactMessage is an enquiry sent through the public contact form.
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	WhatsApp    string    `json:"whatsapp"`
	BrandAbout  string    `json:"brand_about"`
	Goals       string    `json:"goals"`
	Services    string    `json:"services"`
	Message     *string   `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
