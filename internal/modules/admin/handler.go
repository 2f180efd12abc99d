package admin

import (
	"errors"
	"net/http"
	"strconv"

	"consultdesk/internal/domain"
	"consultdesk/internal/middleware"
	"consultdesk/internal/pkg/response"
	"consultdesk/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts login on submit (public, rate limited) and everything
// else on gated, which must already carry the admin gate.
func (h *Handler) RegisterRoutes(submit, gated *gin.RouterGroup) {
	submit.POST("/admin/login", h.Login)

	admin := gated.Group("/admin")
	{
		admin.GET("/bookings", h.ListReservations)
		admin.GET("/reviews", h.ListReviews)
		admin.PATCH("/reviews/:id/approve", h.SetApproval)
		admin.DELETE("/reviews/:id", h.DeleteReview)
		admin.GET("/newsletter", h.ListSubscribers)
		admin.GET("/contacts", h.ListContacts)
		admin.POST("/test-email", h.SendTestEmail)
	}

	gated.DELETE("/reviews/:id", h.DeleteReview)
}

// Login exchanges the admin password for the admin token.
// @Summary		Admin login
// @Tags		Admin
// @Param		request	body	LoginRequest	true	"Password"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Router		/admin/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FromError(c, domain.NewValidationError(fields))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid password")
		return
	}
	response.Success(c, http.StatusOK, LoginResponse{Token: token})
}

// ListReservations returns full reservation records.
// @Summary		All reservations
// @Tags		Admin
// @Security	AdminToken
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Router		/admin/bookings [GET]
func (h *Handler) ListReservations(c *gin.Context) {
	out, err := h.service.ListReservations(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// ListReviews returns reviews of any status, newest first.
// @Summary		All reviews
// @Tags		Admin
// @Security	AdminToken
// @Param		status	query	string	false	"pending or approved"
// @Param		limit	query	int		false	"Maximum number of reviews"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Router		/admin/reviews [GET]
func (h *Handler) ListReviews(c *gin.Context) {
	f := ReviewListFilter{Status: c.Query("status")}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "limit must be a positive integer")
			return
		}
		f.Limit = n
	}

	out, err := h.service.ListReviews(c.Request.Context(), middleware.Credential(c), f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// SetApproval approves a review or returns it to pending.
// @Summary		Approve or unapprove a review
// @Tags		Admin
// @Security	AdminToken
// @Param		id		path	string				true	"Review ID"
// @Param		request	body	SetApprovalRequest	true	"approved flag"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}
// @Router		/admin/reviews/{id}/approve [PATCH]
func (h *Handler) SetApproval(c *gin.Context) {
	var req SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FromError(c, domain.NewValidationError(fields))
		return
	}

	rv, err := h.service.SetApproval(c.Request.Context(), middleware.Credential(c), c.Param("id"), *req.Approved)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// DeleteReview hard-deletes a review.
// @Summary		Delete a review
// @Tags		Admin
// @Security	AdminToken
// @Param		id	path	string	true	"Review ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}
// @Router		/admin/reviews/{id} [DELETE]
func (h *Handler) DeleteReview(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteReview(c.Request.Context(), middleware.Credential(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

// ListSubscribers returns newsletter subscribers.
// @Summary		Newsletter subscribers
// @Tags		Admin
// @Security	AdminToken
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/newsletter [GET]
func (h *Handler) ListSubscribers(c *gin.Context) {
	out, err := h.service.ListSubscribers(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// ListContacts returns contact form submissions.
// @Summary		Contact messages
// @Tags		Admin
// @Security	AdminToken
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/contacts [GET]
func (h *Handler) ListContacts(c *gin.Context) {
	out, err := h.service.ListContacts(c.Request.Context(), middleware.Credential(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// SendTestEmail sends a message to the admin address and reports the result.
// @Summary		Send test email
// @Tags		Admin
// @Security	AdminToken
// @Success		200	{object}	map[string]interface{}
// @Failure		502	{object}	map[string]interface{}
// @Router		/admin/test-email [POST]
func (h *Handler) SendTestEmail(c *gin.Context) {
	err := h.service.SendTestEmail(c.Request.Context(), middleware.Credential(c))
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"sent": true})
	case errors.Is(err, ErrDeliveryFailed):
		response.Error(c, http.StatusBadGateway, "DELIVERY_FAILED", err.Error())
	default:
		response.FromError(c, err)
	}
}
