package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/middleware"
)

// EventController handles the event listing, write path, and the
// registration/interest engagement edges.
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController.
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents handles GET /event.
// @Summary List upcoming events
// @Description Retrieves upcoming events with registration and interest counts. With userEmail the viewer's own flags are filled in.
// @Tags events
// @Produce json
// @Param userEmail query string false "Viewer email"
// @Success 200 {array} models.FeedEvent "Events retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	var viewer *string
	if email := ctx.Query("userEmail"); email != "" {
		viewer = &email
	} else {
		viewer = middleware.ViewerEmail(ctx)
	}

	events, err := c.eventService.GetEvents(ctx, viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /event.
// @Summary Create an event
// @Description Creates an event, optionally hosted by a club.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.CreateEventResponse "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid body or end before start"
// @Failure 404 {object} dto.ErrorResponse "Creator or hosting club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.eventService.CreateEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateEventResponse{NewEventID: id})
}

// DeleteEvent handles DELETE /event.
// @Summary Delete an event
// @Description Removes an event with its engagement edges. Only the creator or a system admin may delete.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.DeleteEventRequest true "Event id and requesting user"
// @Success 200 {object} dto.DeleteEventResponse "Event deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the creator or an admin"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	var req dto.DeleteEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.eventService.DeleteEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteEventResponse{DeletedEventID: id})
}

// Register handles POST /event-registration.
// @Summary Register for an event
// @Description Records an attendance intent. Registering twice is a conflict.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventEngagementRequest true "Event id and user"
// @Success 200 {object} dto.CreateEngagementResponse "Registration recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event-registration [post]
func (c *EventController) Register(ctx *gin.Context) {
	var req dto.EventEngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.eventService.Register(ctx, req.EventID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateEngagementResponse{NewID: id})
}

// Unregister handles DELETE /event-registration.
// @Summary Cancel an event registration
// @Description Removes the registration; cancelling one that never existed succeeds with no id.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventEngagementRequest true "Event id and user"
// @Success 200 {object} dto.DeleteEngagementResponse "Registration removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event-registration [delete]
func (c *EventController) Unregister(ctx *gin.Context) {
	var req dto.EventEngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, err := c.eventService.Unregister(ctx, req.EventID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteEngagementResponse{DeletedID: deletedID})
}

// MarkInterest handles POST /event-interest.
// @Summary Mark interest in an event
// @Description Records interest. Marking twice is a conflict.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventEngagementRequest true "Event id and user"
// @Success 200 {object} dto.CreateEngagementResponse "Interest recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already interested"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event-interest [post]
func (c *EventController) MarkInterest(ctx *gin.Context) {
	var req dto.EventEngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.eventService.MarkInterest(ctx, req.EventID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateEngagementResponse{NewID: id})
}

// RemoveInterest handles DELETE /event-interest.
// @Summary Remove interest in an event
// @Description Removes the interest edge; removing one that never existed succeeds with no id.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventEngagementRequest true "Event id and user"
// @Success 200 {object} dto.DeleteEngagementResponse "Interest removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /event-interest [delete]
func (c *EventController) RemoveInterest(ctx *gin.Context) {
	var req dto.EventEngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, err := c.eventService.RemoveInterest(ctx, req.EventID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteEngagementResponse{DeletedID: deletedID})
}
