package review

import (
	"net/http"
	"strconv"

	"consultdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, submit *gin.RouterGroup) {
	public.GET("/reviews", h.ListApproved)
	submit.POST("/reviews", h.Submit)
}

// Submit stores a review for moderation.
// @Summary		Submit a review
// @Description	The review is stored as pending and is not public until an administrator approves it.
// @Tags		Reviews
// @Param		request	body	SubmitReviewRequest	true	"Review"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Router		/reviews [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, SubmitReviewResponse{ID: rv.ID, Status: string(rv.Status)})
}

// ListApproved returns public reviews.
// @Summary		Approved reviews
// @Tags		Reviews
// @Param		limit	query	int	false	"Maximum number of reviews"
// @Success		200	{object}	map[string]interface{}
// @Router		/reviews [GET]
func (h *Handler) ListApproved(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	out, err := h.svc.ListApproved(c.Request.Context(), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// parseLimit reads an optional limit query value.
func parseLimit(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
