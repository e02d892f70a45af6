package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smashcourt/smashcourt-backend/internal/auth"
	"github.com/smashcourt/smashcourt-backend/internal/booking"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/response"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	b, err := h.service.Submit(c.Request.Context(), booking.SubmitRequest{
		UserID:    auth.GetUserID(c),
		CourtID:   body.CourtID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Equipment: body.Equipment,
		CoachID:   body.CoachID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = NewBookingResponse(b)
	}
	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewBookingResponse(b))
}

// CourtAvailability lists the free slots of a court on a given date.
func (h *Handler) CourtAvailability(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid court id")
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(c, booking.ErrInvalidDate)
		return
	}

	slots, err := h.service.DaySlots(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusOK, AvailabilityResponse{
		CourtID: id,
		Date:    dateStr,
		Slots:   slots,
	})
}
