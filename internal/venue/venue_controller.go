package venue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// VenueController handles venue-related HTTP requests.
type VenueController struct {
	repo VenueRepository
}

// NewVenueController creates a new venue controller.
func NewVenueController(repo VenueRepository) *VenueController {
	return &VenueController{repo: repo}
}

// VenueInput is the request payload for creating or updating a venue.
type VenueInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Street  string `json:"street" binding:"max=100"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	Zipcode string `json:"zipcode" binding:"max=10"`
}

func (c *VenueController) venueFromPath(ctx *gin.Context) *Venue {
	id, err := strconv.ParseUint(ctx.Param("venue_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid venue ID")
		return nil
	}
	venue, err := c.repo.GetVenueByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load venue: "+err.Error())
		return nil
	}
	if venue == nil {
		responses.NotFound(ctx, "venue")
		return nil
	}
	return venue
}

// CreateVenue godoc
// @Summary Create a new venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body VenueInput true "Venue information"
// @Success 201 {object} Venue
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/venues [post]
// @Security Bearer
func (c *VenueController) CreateVenue(ctx *gin.Context) {
	var input VenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	venue := &Venue{
		Name:    input.Name,
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		Zipcode: input.Zipcode,
	}
	if err := c.repo.CreateVenue(venue); err != nil {
		responses.InternalServerError(ctx, "failed to create venue: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, venue)
}

// GetVenueByID godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Success 200 {object} Venue
// @Failure 404 {object} responses.ErrorResponse
// @Router /venues/{venue_id} [get]
func (c *VenueController) GetVenueByID(ctx *gin.Context) {
	venue := c.venueFromPath(ctx)
	if venue == nil {
		return
	}
	ctx.JSON(http.StatusOK, venue)
}

// GetAllVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Success 200 {object} responses.PaginatedResponse
// @Router /venues [get]
func (c *VenueController) GetAllVenues(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	venues, total, err := c.repo.GetAllVenues(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list venues: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", venues, total, page, limit)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue_id path int true "Venue ID"
// @Param venue body VenueInput true "Venue information"
// @Success 200 {object} Venue
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/venues/{venue_id} [put]
// @Security Bearer
func (c *VenueController) UpdateVenue(ctx *gin.Context) {
	venue := c.venueFromPath(ctx)
	if venue == nil {
		return
	}

	var input VenueInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	venue.Name = input.Name
	venue.Street = input.Street
	venue.City = input.City
	venue.State = input.State
	venue.Zipcode = input.Zipcode

	if err := c.repo.UpdateVenue(venue); err != nil {
		responses.InternalServerError(ctx, "failed to update venue: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, venue)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Tags venues
// @Param venue_id path int true "Venue ID"
// @Success 204 "deleted"
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/venues/{venue_id} [delete]
// @Security Bearer
func (c *VenueController) DeleteVenue(ctx *gin.Context) {
	venue := c.venueFromPath(ctx)
	if venue == nil {
		return
	}
	if err := c.repo.DeleteVenue(venue.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete venue: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}
