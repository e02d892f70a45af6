package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smashcourt/smashcourt-backend/internal/auth"
	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/response"
	"github.com/smashcourt/smashcourt-backend/internal/user"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	courts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, NewCourtResponses(courts), len(courts))
}

func (h *Handler) ListMine(c *gin.Context) {
	courts, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, NewCourtResponses(courts), len(courts))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid court id")
		return
	}

	crt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewCourtResponse(crt))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	crt, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		Name:      body.Name,
		Type:      body.Type,
		BasePrice: body.BasePrice,
		OwnerID:   auth.GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, NewCourtResponse(crt))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid court id")
		return
	}

	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	crt, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:      body.Name,
		Type:      body.Type,
		BasePrice: body.BasePrice,
		Status:    body.Status,
	}, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, NewCourtResponse(crt))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "invalid court id")
		return
	}

	err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c), user.Role(auth.GetUserRole(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
