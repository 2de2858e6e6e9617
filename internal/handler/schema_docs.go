package handler

import (
	"consensus-api/internal/dto"
	"consensus-api/internal/notify"
)

// SchemaDocumentation references payloads that no REST handler returns directly,
// so swag still emits their definitions.
type SchemaDocumentation struct {
	ExportDocument dto.ExportDocument `json:"exportDocument"`
	RepairResult   dto.RepairResult   `json:"repairResult"`
	SummaryUpdated notify.Event       `json:"summaryUpdated"`
}

// GetSchemaDocumentation is never routed
// @Summary      Schema Documentation (Not a real endpoint)
// @Description  Documents the export document, repair result and websocket event schemas.
// @Tags         internal
// @Produce      json
// @Success      200 {object} SchemaDocumentation
// @Router       /internal/schemas [get]
func GetSchemaDocumentation() {}
