package contact

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
	submit.POST("/contact", h.Submit)
}

// Submit stores a contact form enquiry.
// @Summary		Contact form
// @Tags		Contact
// @Param		request	body	SubmitContactRequest	true	"Enquiry"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Router		/contact [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	m, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": m.ID})
}
