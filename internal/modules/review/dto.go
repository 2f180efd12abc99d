package review

import "strings"

type SubmitReviewRequest struct {
	Name        string  `json:"name" validate:"max=200"`
	ProjectType string  `json:"project_type" validate:"required"`
	Rating      int     `json:"rating" validate:"gte=1,lte=5"`
	Body        string  `json:"review" validate:"required,max=5000"`
	IsAnonymous bool    `json:"is_anonymous"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Role        *string `json:"role,omitempty" validate:"omitempty,max=200"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email,max=320"`
}

func (r *SubmitReviewRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.Body = strings.TrimSpace(r.Body)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = optional(r.Company)
	r.Role = optional(r.Role)
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

type SubmitReviewResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
