package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smashcourt/smashcourt-backend/internal/coach"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/response"
)

type Handler struct {
	service coach.Service
}

func NewHandler(service coach.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	coaches, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]CoachResponse, len(coaches))
	for i, co := range coaches {
		resp[i] = NewCoachResponse(co)
	}
	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid coach id")
		return
	}

	co, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewCoachResponse(co))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCoachRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	co, err := h.service.Create(c.Request.Context(), coach.CreateRequest{
		Name:           body.Name,
		HourlyRate:     body.HourlyRate,
		Specialization: body.Specialization,
		Availability:   body.Availability,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, NewCoachResponse(co))
}
