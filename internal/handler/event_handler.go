package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ejderhub-api/internal/dto"
	"ejderhub-api/internal/response"
	"ejderhub-api/internal/service"
)

// EventHandler handles calendar endpoints
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new instance of EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents godoc
// @Summary      List calendar entries, including projected task entries
// @Tags         events
// @Produce      json
// @Success      200 {array} domain.Event
// @Router       /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, events)
}

// GetEvent godoc
// @Summary      Get a calendar entry
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID (UUID)"
// @Success      200 {object} domain.Event
// @Failure      404 {object} response.ErrorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary      Create a calendar entry; task-typed entries become tasks
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEventRequest true "Event"
// @Success      201 {object} domain.Event
// @Failure      400 {object} response.ErrorResponse
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary      Update a calendar entry
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID (UUID)"
// @Param        request body dto.UpdateEventRequest true "Fields to update"
// @Success      200 {object} domain.Event
// @Failure      404 {object} response.ErrorResponse
// @Router       /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// UpdateRsvp godoc
// @Summary      Reply to a meeting invitation
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path string true "Event ID (UUID)"
// @Param        request body dto.RsvpRequest true "RSVP status"
// @Success      200 {object} domain.Event
// @Failure      404 {object} response.ErrorResponse
// @Router       /events/{id}/rsvp [patch]
func (h *EventHandler) UpdateRsvp(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	event, err := h.eventService.UpdateRsvp(c.Request.Context(), eventID, userID, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete a calendar entry
// @Tags         events
// @Param        id path string true "Event ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
