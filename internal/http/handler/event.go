package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/FutureNHS/futurenhs-platform/internal/domain"
)

// EventHandler describes the payloads published on the event stream so
// consumers can validate what they receive.
type EventHandler struct {
	schemas map[domain.EventType]*jsonschema.Schema
}

func NewEventHandler() *EventHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	payloads := domain.EventPayloads()
	schemas := make(map[domain.EventType]*jsonschema.Schema, len(payloads))
	for eventType, data := range payloads {
		schema := reflector.Reflect(data)
		schema.Title = string(eventType)
		schemas[eventType] = schema
	}
	return &EventHandler{schemas: schemas}
}

func (h *EventHandler) Schemas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemas": h.schemas})
}

func (h *EventHandler) Schema(c *gin.Context) {
	schema, ok := h.schemas[domain.EventType(c.Param("type"))]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown event type"})
		return
	}
	c.JSON(http.StatusOK, schema)
}
