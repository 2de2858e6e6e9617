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

type SubmissionHandler struct {
	submissionService service.SubmissionService
	logger            *zap.Logger
}

func NewSubmissionHandler(submissionService service.SubmissionService, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService, logger: logger}
}

// submitStatus is 201 for a first answer and 200 when an earlier one was replaced
func submitStatus(result *dto.SubmitResult) int {
	if result.Created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// SubmitToActive godoc
// @Summary      Answer the active round
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.SubmitResponseRequest true "Answers"
// @Success      201 {object} response.SuccessResponse{data=dto.SubmitResult} "First answer"
// @Success      200 {object} response.SuccessResponse{data=dto.SubmitResult} "Answer replaced"
// @Failure      403 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse "No active round"
// @Router       /forms/{formId}/responses [post]
func (h *SubmissionHandler) SubmitToActive(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.submissionService.SubmitToActive(c.Request.Context(), middleware.GetSession(c), formID, req.Answers)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, submitStatus(result), result)
}

// Submit godoc
// @Summary      Answer a specific round
// @Description  Closed rounds still accept answers
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Param        request body dto.SubmitResponseRequest true "Answers"
// @Success      201 {object} response.SuccessResponse{data=dto.SubmitResult}
// @Success      200 {object} response.SuccessResponse{data=dto.SubmitResult}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse "Round closed or missing"
// @Router       /forms/{formId}/rounds/{roundId}/responses/me [put]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), middleware.GetSession(c), formID, roundID, req.Answers)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, submitStatus(result), result)
}

// GetMyResponse godoc
// @Summary      Get the caller's answer for a round
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MyResponseResult}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds/{roundId}/responses/me [get]
func (h *SubmissionHandler) GetMyResponse(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	result, err := h.submissionService.GetMyResponse(c.Request.Context(), middleware.GetSession(c), formID, roundID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// HasSubmitted godoc
// @Summary      Whether the caller answered a round
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=bool}
// @Router       /forms/{formId}/rounds/{roundId}/responses/me/status [get]
func (h *SubmissionHandler) HasSubmitted(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	submitted, err := h.submissionService.HasSubmitted(c.Request.Context(), middleware.GetSession(c), formID, roundID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, submitted)
}

// ListResponses godoc
// @Summary      List a round's responses
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        roundId path string true "Round ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ResponseResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId}/rounds/{roundId}/responses [get]
func (h *SubmissionHandler) ListResponses(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}
	roundID, ok := parseUUIDParam(c, "roundId", "round")
	if !ok {
		return
	}

	responses, err := h.submissionService.ListResponses(c.Request.Context(), middleware.GetSession(c), formID, roundID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, responses)
}

// ListAllResponses godoc
// @Summary      List responses of every round
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.RoundResponsesResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/responses [get]
func (h *SubmissionHandler) ListAllResponses(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	rounds, err := h.submissionService.ListAllResponses(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, rounds)
}

// ListRevisions godoc
// @Summary      Submission audit trail
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ResponseRevisionResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/responses/revisions [get]
func (h *SubmissionHandler) ListRevisions(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	revisions, err := h.submissionService.ListRevisions(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, revisions)
}
