package event

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/venue"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// EventController handles event-related HTTP requests.
type EventController struct {
	repo   EventRepository
	venues venue.VenueRepository
}

// NewEventController creates a new event controller.
func NewEventController(repo EventRepository, venues venue.VenueRepository) *EventController {
	return &EventController{repo: repo, venues: venues}
}

// EventInput is the request payload for creating or updating an event.
type EventInput struct {
	Name    string     `json:"name" binding:"required,min=2,max=100"`
	Date    *time.Time `json:"date,omitempty"`
	VenueID *uint      `json:"venue_id,omitempty"`
	Preview string     `json:"preview"`
}

func (c *EventController) eventFromPath(ctx *gin.Context) *Event {
	id, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid event ID")
		return nil
	}
	event, err := c.repo.GetEventByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load event: "+err.Error())
		return nil
	}
	if event == nil {
		responses.NotFound(ctx, "event")
		return nil
	}
	return event
}

func (c *EventController) venueExists(ctx *gin.Context, venueID *uint) bool {
	if venueID == nil {
		return true
	}
	v, err := c.venues.GetVenueByID(*venueID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load venue: "+err.Error())
		return false
	}
	if v == nil {
		responses.BadRequest(ctx, "venue does not exist")
		return false
	}
	return true
}

func (c *EventController) CreateEvent(ctx *gin.Context) {
	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	if !c.venueExists(ctx, input.VenueID) {
		return
	}

	event := &Event{
		Name:    input.Name,
		Date:    input.Date,
		VenueID: input.VenueID,
		Preview: input.Preview,
	}
	if err := c.repo.CreateEvent(event); err != nil {
		responses.InternalServerError(ctx, "failed to create event: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

func (c *EventController) GetEventByID(ctx *gin.Context) {
	event := c.eventFromPath(ctx)
	if event == nil {
		return
	}
	ctx.JSON(http.StatusOK, event)
}

func (c *EventController) GetAllEvents(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	events, total, err := c.repo.GetAllEvents(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list events: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", events, total, page, limit)
}

func (c *EventController) UpdateEvent(ctx *gin.Context) {
	event := c.eventFromPath(ctx)
	if event == nil {
		return
	}

	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	if !c.venueExists(ctx, input.VenueID) {
		return
	}

	event.Name = input.Name
	event.Date = input.Date
	event.VenueID = input.VenueID
	event.Preview = input.Preview
	event.Venue = nil

	if err := c.repo.UpdateEvent(event); err != nil {
		responses.InternalServerError(ctx, "failed to update event: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, event)
}

func (c *EventController) DeleteEvent(ctx *gin.Context) {
	event := c.eventFromPath(ctx)
	if event == nil {
		return
	}
	if err := c.repo.DeleteEvent(event.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete event: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}
