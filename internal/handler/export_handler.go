package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consensus-api/internal/middleware"
	"consensus-api/internal/response"
	"consensus-api/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
	logger        *zap.Logger
}

func NewExportHandler(exportService service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, logger: logger}
}

// ExportResponses godoc
// @Summary      Export every round and response
// @Description  Uploaded to object storage with a presigned download link when configured, inline otherwise
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        formId path string true "Form ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ExportResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse "Upload failed"
// @Router       /forms/{formId}/export [get]
func (h *ExportHandler) ExportResponses(c *gin.Context) {
	formID, ok := parseUUIDParam(c, "formId", "form")
	if !ok {
		return
	}

	export, err := h.exportService.ExportResponses(c.Request.Context(), middleware.GetSession(c), formID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, export)
}
