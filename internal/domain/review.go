package domain

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
)

// AnonymousName replaces the display name of reviews submitted anonymously.
const AnonymousName = "Anonymous"

const (
	MinRating = 1
	MaxRating = 5
)

var ProjectCategories = []string{
	"Web Development",
	"Branding & Design",
	"Video & Photography",
	"Creative Consulting",
	"Multiple Services",
	"Other",
}

func IsProjectCategory(v string) bool {
	for _, c := range ProjectCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Review struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	ProjectType string       `json:"project_type"`
	Rating      int          `json:"rating"`
	Body        string       `json:"review"`
	IsAnonymous bool         `json:"is_anonymous"`
	Company     *string      `json:"company,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Status      ReviewStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (r *Review) IsApproved() bool {
	return r.Status == ReviewApproved
}
