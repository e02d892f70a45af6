package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashcourt/smashcourt-backend/internal/court"
	"github.com/smashcourt/smashcourt-backend/internal/pkg/response"
	"github.com/smashcourt/smashcourt-backend/internal/pricing"
)

type Handler struct {
	evaluator    pricing.Evaluator
	ruleService  pricing.RuleService
	courtService court.Service
}

func NewHandler(evaluator pricing.Evaluator, ruleService pricing.RuleService, courtService court.Service) *Handler {
	return &Handler{
		evaluator:    evaluator,
		ruleService:  ruleService,
		courtService: courtService,
	}
}

// Quote prices a prospective booking without admitting it.
func (h *Handler) Quote(c *gin.Context) {
	var body QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()

	crt, err := h.courtService.GetByID(ctx, body.CourtID)
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.evaluator.Quote(ctx, pricing.QuoteInput{
		Court:     crt,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Equipment: body.Equipment,
		CoachID:   body.CoachID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Data(c, http.StatusOK, QuoteResponse{
		TotalPrice: quote.TotalPrice,
		Breakdown:  quote.Breakdown,
	})
}

func (h *Handler) ListRules(c *gin.Context) {
	rules, err := h.ruleService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]RuleResponse, len(rules))
	for i, r := range rules {
		resp[i] = NewRuleResponse(r)
	}
	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) CreateRule(c *gin.Context) {
	var body CreateRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}

	rule, err := h.ruleService.Create(c.Request.Context(), pricing.CreateRuleRequest{
		Name:       body.Name,
		Type:       body.Type,
		Value:      body.Value,
		Conditions: body.Conditions,
		Priority:   body.Priority,
		Enabled:    enabled,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, NewRuleResponse(rule))
}
