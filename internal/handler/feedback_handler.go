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

type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *zap.Logger
}

func NewFeedbackHandler(feedbackService service.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, logger: logger}
}

// SubmitFeedback godoc
// @Summary      Leave feedback on the process
// @Description  Once per participant and form. The current synthesis is stored alongside.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.SubmitFeedbackRequest true "Feedback"
// @Success      201 {object} response.SuccessResponse{data=dto.FeedbackResponse}
// @Failure      400 {object} response.ErrorResponse "No synthesis to give feedback on"
// @Failure      409 {object} response.ErrorResponse "Feedback already submitted"
// @Router       /forms/{formId}/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(c.Request.Context(), middleware.GetSession(c), formID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, feedback)
}

// ListFeedback godoc
// @Summary      List all feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.FeedbackResponse}
// @Failure      403 {object} response.ErrorResponse "Admin access required"
// @Router       /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.ListFeedback(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, feedback)
}
