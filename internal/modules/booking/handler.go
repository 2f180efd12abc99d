package booking

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

// RegisterRoutes mounts public reads on public and the create endpoint on
// submit, which carries rate limiting.
func (h *Handler) RegisterRoutes(public, submit *gin.RouterGroup) {
	public.GET("/bookings", h.ListSlots)
	public.GET("/bookings/availability", h.Availability)
	submit.POST("/bookings", h.Create)
}

// Create reserves a consultation slot.
// @Summary		Book a slot
// @Description	Reserves (booking_date, booking_time). The slot must be a business day inside the booking window and still free.
// @Tags		Bookings
// @Param		request	body	CreateReservationRequest	true	"Requester and slot"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Missing field or slot not offerable"
// @Failure		409	{object}	map[string]interface{}	"Slot already taken"
// @Router		/bookings [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	r, err := h.svc.CreateReservation(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, CreateReservationResponse{ID: r.ID, Date: r.Date, Time: r.Time})
}

// ListSlots returns booked slots without requester identity.
// @Summary		Booked slots
// @Tags		Bookings
// @Param		from	query	string	false	"YYYY-MM-DD inclusive"
// @Param		to		query	string	false	"YYYY-MM-DD inclusive"
// @Success		200	{object}	map[string]interface{}
// @Router		/bookings [GET]
func (h *Handler) ListSlots(c *gin.Context) {
	slots, err := h.svc.ListSlots(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, slots)
}

// Availability returns the slot grid of one date.
// @Summary		Slot grid for a date
// @Tags		Bookings
// @Param		date	query	string	true	"YYYY-MM-DD"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}
// @Router		/bookings/availability [GET]
func (h *Handler) Availability(c *gin.Context) {
	out, err := h.svc.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}
