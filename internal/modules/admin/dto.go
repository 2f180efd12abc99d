package admin

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SetApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type ReviewListFilter struct {
	Status string
	Limit  int
}

type Credentials struct {
	Token        string
	PasswordHash string
}
