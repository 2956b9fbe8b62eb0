package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/event"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// MatchController handles the event-card HTTP surface: booking matches and
// browsing the results.
type MatchController struct {
	repo   MatchRepository
	booker *Booker
	events event.EventRepository
}

// NewMatchController creates a new match controller.
func NewMatchController(repo MatchRepository, booker *Booker, events event.EventRepository) *MatchController {
	return &MatchController{repo: repo, booker: booker, events: events}
}

// BookInput is the request payload for adding a match to an event's card.
type BookInput struct {
	MatchTypeID uint       `json:"match_type_id" binding:"required"`
	Preview     string     `json:"preview"`
	Sides       []Side     `json:"sides" binding:"required"`
	RefereeIDs  []uint     `json:"referee_ids"`
	TitleIDs    []uint     `json:"title_ids"`
	At          *time.Time `json:"at,omitempty"`
}

// MatchTypeInput is the request payload for adding a match type.
type MatchTypeInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

func (c *MatchController) eventFromPath(ctx *gin.Context) *event.Event {
	id, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid event ID")
		return nil
	}
	ev, err := c.events.GetEventByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load event: "+err.Error())
		return nil
	}
	if ev == nil {
		responses.NotFound(ctx, "event")
		return nil
	}
	return ev
}

func isValidationError(err error) bool {
	for _, validation := range []error{
		ErrNoCompetitors, ErrNoReferees, ErrNoEligibleCompetitors,
		ErrNoEligibleReferees, ErrTooFewSides, ErrInvalidSideNumber,
	} {
		if errors.Is(err, validation) {
			return true
		}
	}
	return false
}

// BookMatch assembles a match for the event in the path.
func (c *MatchController) BookMatch(ctx *gin.Context) {
	ev := c.eventFromPath(ctx)
	if ev == nil {
		return
	}

	var input BookInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	matchType, err := c.repo.GetMatchTypeByID(input.MatchTypeID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load match type: "+err.Error())
		return
	}
	if matchType == nil {
		responses.BadRequest(ctx, "match type does not exist")
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}

	match, err := c.booker.Book(BookRequest{
		EventID:     ev.ID,
		MatchTypeID: input.MatchTypeID,
		Preview:     input.Preview,
		Sides:       input.Sides,
		RefereeIDs:  input.RefereeIDs,
		TitleIDs:    input.TitleIDs,
	}, at)
	if err != nil {
		if isValidationError(err) {
			responses.SendError(ctx, http.StatusUnprocessableEntity, err.Error())
			return
		}
		responses.InternalServerError(ctx, "failed to book match: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, match)
}

// GetEventCard lists the event's matches in card order.
func (c *MatchController) GetEventCard(ctx *gin.Context) {
	ev := c.eventFromPath(ctx)
	if ev == nil {
		return
	}
	matches, err := c.repo.GetMatchesForEvent(ev.ID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list matches: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, matches)
}

func (c *MatchController) GetMatchByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid match ID")
		return
	}
	match, err := c.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load match: "+err.Error())
		return
	}
	if match == nil {
		responses.NotFound(ctx, "match")
		return
	}
	ctx.JSON(http.StatusOK, match)
}

func (c *MatchController) DeleteMatch(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid match ID")
		return
	}
	if err := c.repo.DeleteMatch(uint(id)); err != nil {
		responses.InternalServerError(ctx, "failed to delete match: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *MatchController) CreateMatchType(ctx *gin.Context) {
	var input MatchTypeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	matchType := &MatchType{Name: input.Name}
	if err := c.repo.CreateMatchType(matchType); err != nil {
		responses.InternalServerError(ctx, "failed to create match type: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, matchType)
}

func (c *MatchController) GetAllMatchTypes(ctx *gin.Context) {
	matchTypes, err := c.repo.GetAllMatchTypes()
	if err != nil {
		responses.InternalServerError(ctx, "failed to list match types: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, matchTypes)
}
