package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smashcourt/smashcourt-backend/internal/equipment"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/response"
)

type Handler struct {
	service equipment.Service
}

func NewHandler(service equipment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]EquipmentResponse, len(items))
	for i, e := range items {
		resp[i] = NewEquipmentResponse(e)
	}
	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid equipment id")
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewEquipmentResponse(e))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateEquipmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	e, err := h.service.Create(c.Request.Context(), equipment.CreateRequest{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Quantity: body.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, NewEquipmentResponse(e))
}
