package newsletter

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

type SubscribeResponse struct {
	Email   string `json:"email"`
	Created bool   `json:"created"`
}
