package newsletter

import (
	"net/http"

	"consultdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(submit *gin.RouterGroup) {
	submit.POST("/newsletter", h.Subscribe)
}

// Subscribe adds an email to the mailing list.
// @Summary		Subscribe to the newsletter
// @Tags		Newsletter
// @Param		request	body	SubscribeRequest	true	"Email"
// @Success		200	{object}	map[string]interface{}	"Already subscribed"
// @Success		201	{object}	map[string]interface{}	"Subscribed"
// @Failure		400	{object}	map[string]interface{}
// @Router		/newsletter [POST]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	out, err := h.svc.Subscribe(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, out)
}
