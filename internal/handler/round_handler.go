package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consensus-api/internal/dto"
	"consensus-api/internal/middleware"
	"consensus-api/internal/response"
	"consensus-api/internal/service"
)

type RoundHandler struct {
	roundService service.RoundService
	logger       *zap.Logger
}

func NewRoundHandler(roundService service.RoundService, logger *zap.Logger) *RoundHandler {
	return &RoundHandler{roundService: roundService, logger: logger}
}

// OpenRound godoc
// @Summary      Open the next round
// @Description  Closes the active round (if any) and opens round N+1 in one transaction.
// @Description  The closing round's synthesis is carried over as previousRoundSynthesis.
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.OpenRoundRequest false "Question override"
// @Success      201 {object} response.SuccessResponse{data=dto.RoundResponse}
// @Failure      400 {object} response.ErrorResponse "Explicit question list was blank"
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds [post]
func (h *RoundHandler) OpenRound(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	var req dto.OpenRoundRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	round, err := h.roundService.OpenNextRound(c.Request.Context(), middleware.GetSession(c), formID, req.Questions)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, round)
}

// CloseRound godoc
// @Summary      Close the active round
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.RoundResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "No active round"
// @Router       /forms/{formId}/rounds/active/close [post]
func (h *RoundHandler) CloseRound(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	round, err := h.roundService.CloseRound(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, round)
}

// GetActiveRound godoc
// @Summary      Get the active round
// @Description  data is null when no round is active
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.RoundResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds/active [get]
func (h *RoundHandler) GetActiveRound(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	round, err := h.roundService.GetActiveRound(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, round)
}

// ListRounds godoc
// @Summary      List rounds
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.RoundResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds [get]
func (h *RoundHandler) ListRounds(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	rounds, err := h.roundService.ListRounds(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rounds)
}
