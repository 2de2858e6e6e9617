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

type SynthesisHandler struct {
	synthesisService service.SynthesisService
	logger           *zap.Logger
}

func NewSynthesisHandler(synthesisService service.SynthesisService, logger *zap.Logger) *SynthesisHandler {
	return &SynthesisHandler{synthesisService: synthesisService, logger: logger}
}

// PushSynthesis godoc
// @Summary      Publish a round synthesis
// @Description  Empty or whitespace-only html retracts the synthesis. Subscribers receive a summary_updated event.
// @Tags         synthesis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Param        request body dto.PushSynthesisRequest true "Synthesis"
// @Success      200 {object} response.SuccessResponse{data=dto.RoundResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "Stale expectedRevision"
// @Router       /forms/{formId}/rounds/{roundId}/synthesis [put]
func (h *SynthesisHandler) PushSynthesis(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	var req dto.PushSynthesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	round, err := h.synthesisService.PushSynthesis(c.Request.Context(), middleware.GetSession(c), formID, roundID, req.HTML, req.ExpectedRevision)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, round)
}

// PushLatestSynthesis godoc
// @Summary      Publish the synthesis of the current round
// @Description  Targets the active round, or the latest round when none is active
// @Tags         synthesis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.PushSynthesisRequest true "Synthesis"
// @Success      200 {object} response.SuccessResponse{data=dto.RoundResponse}
// @Failure      409 {object} response.ErrorResponse "No round yet or stale expectedRevision"
// @Router       /forms/{formId}/synthesis [put]
func (h *SynthesisHandler) PushLatestSynthesis(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	var req dto.PushSynthesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	round, err := h.synthesisService.PushLatestSynthesis(c.Request.Context(), middleware.GetSession(c), formID, req.HTML, req.ExpectedRevision)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, round)
}

// GenerateSynthesis godoc
// @Summary      Draft a synthesis with the language model
// @Description  Returns an unpublished html draft. Nothing is stored or broadcast.
// @Tags         synthesis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Param        request body dto.GenerateSynthesisRequest false "Model override"
// @Success      200 {object} response.SuccessResponse{data=dto.SynthesisDraftResponse}
// @Failure      400 {object} response.ErrorResponse "No questions or no responses"
// @Failure      502 {object} response.ErrorResponse "Generation failed"
// @Router       /forms/{formId}/rounds/{roundId}/synthesis/generate [post]
func (h *SynthesisHandler) GenerateSynthesis(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	var req dto.GenerateSynthesisRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	draft, err := h.synthesisService.GenerateSynthesis(c.Request.Context(), middleware.GetSession(c), formID, roundID, req.Model)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, draft)
}

// CompileSynthesis godoc
// @Summary      Compile the round's answers into an html digest
// @Tags         synthesis
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SynthesisDraftResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds/{roundId}/synthesis/compile [post]
func (h *SynthesisHandler) CompileSynthesis(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	draft, err := h.synthesisService.CompileSynthesis(c.Request.Context(), middleware.GetSession(c), formID, roundID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, draft)
}
