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

type FormHandler struct {
	formService       service.FormService
	membershipService service.MembershipService
	stateService      service.ParticipantStateService
	logger            *zap.Logger
}

func NewFormHandler(
	formService service.FormService,
	membershipService service.MembershipService,
	stateService service.ParticipantStateService,
	logger *zap.Logger,
) *FormHandler {
	return &FormHandler{
		formService:       formService,
		membershipService: membershipService,
		stateService:      stateService,
		logger:            logger,
	}
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Creates a consensus form owned by the calling admin. No round is opened.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateFormRequest true "Form"
// @Success      201 {object} response.SuccessResponse{data=dto.FormResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid body or no non-blank question"
// @Failure      403 {object} response.ErrorResponse "Admin access required"
// @Failure      409 {object} response.ErrorResponse "Join code already in use"
// @Router       /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	form, err := h.formService.CreateForm(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, form)
}

// ListForms godoc
// @Summary      List forms
// @Description  Admins see the forms they own, participants the forms they joined
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.FormSummaryResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.membershipService.ListForms(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, forms)
}

// JoinForm godoc
// @Summary      Redeem a join code
// @Description  Idempotent. created is false when the caller was already a member.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.JoinFormRequest true "Join code"
// @Success      200 {object} response.SuccessResponse{data=dto.MembershipResponse}
// @Failure      400 {object} response.ErrorResponse "Invalid code"
// @Router       /forms/join [post]
func (h *FormHandler) JoinForm(c *gin.Context) {
	var req dto.JoinFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	membership, err := h.membershipService.Redeem(c.Request.Context(), middleware.GetSession(c), req.Code)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, membership)
}

// GetForm godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FormResponse}
// @Failure      403 {object} response.ErrorResponse "Form not available"
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	form, err := h.formService.GetForm(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Changes title, base questions or allowJoin. Owner only.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Param        request body dto.UpdateFormRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.FormResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId} [patch]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	var req dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	form, err := h.formService.UpdateForm(c.Request.Context(), middleware.GetSession(c), formID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Tags         forms
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      204
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	if err := h.formService.DeleteForm(c.Request.Context(), middleware.GetSession(c), formID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers godoc
// @Summary      List form members
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse}
// @Failure      403 {object} response.ErrorResponse
// @Router       /forms/{formId}/members [get]
func (h *FormHandler) ListMembers(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	members, err := h.formService.ListMembers(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// GetState godoc
// @Summary      Participant state
// @Description  Derives the caller's view of the form. A non-member gets needs_join.
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ParticipantStateResponse}
// @Failure      404 {object} response.ErrorResponse
// @Router       /forms/{formId}/state [get]
func (h *FormHandler) GetState(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	state, err := h.stateService.GetState(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, state)
}
