package referee

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// RefereeController handles referee-related HTTP requests.
type RefereeController struct {
	repo        RefereeRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewRefereeController creates a new referee controller.
func NewRefereeController(repo RefereeRepository, status *lifecycle.Status, transitions *lifecycle.Transitions) *RefereeController {
	return &RefereeController{repo: repo, status: status, transitions: transitions}
}

// RefereeInput is the request payload for creating or updating a referee.
type RefereeInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

func (c *RefereeController) refereeFromPath(ctx *gin.Context) *Referee {
	id, err := strconv.ParseUint(ctx.Param("referee_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid referee ID")
		return nil
	}
	referee, err := c.repo.GetRefereeByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load referee: "+err.Error())
		return nil
	}
	if referee == nil {
		responses.NotFound(ctx, "referee")
		return nil
	}
	return referee
}

func (c *RefereeController) CreateReferee(ctx *gin.Context) {
	var input RefereeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	referee := &Referee{Name: input.Name}
	if err := c.repo.CreateReferee(referee); err != nil {
		responses.InternalServerError(ctx, "failed to create referee: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, referee)
}

func (c *RefereeController) GetRefereeByID(ctx *gin.Context) {
	referee := c.refereeFromPath(ctx)
	if referee == nil {
		return
	}
	ctx.JSON(http.StatusOK, referee)
}

func (c *RefereeController) GetAllReferees(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	referees, total, err := c.repo.GetAllReferees(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list referees: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", referees, total, page, limit)
}

func (c *RefereeController) UpdateReferee(ctx *gin.Context) {
	referee := c.refereeFromPath(ctx)
	if referee == nil {
		return
	}
	var input RefereeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	referee.Name = input.Name
	if err := c.repo.UpdateReferee(referee); err != nil {
		responses.InternalServerError(ctx, "failed to update referee: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, referee)
}

func (c *RefereeController) DeleteReferee(ctx *gin.Context) {
	referee := c.refereeFromPath(ctx)
	if referee == nil {
		return
	}
	if err := c.repo.DeleteReferee(referee.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete referee: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *RefereeController) GetRefereeStatus(ctx *gin.Context) {
	referee := c.refereeFromPath(ctx)
	if referee == nil {
		return
	}
	owner := referee.AsOwner()
	now := time.Now().UTC()

	var status RefereeStatus
	var err error
	if status.Employed, err = c.status.IsEmployed(owner, now); err == nil {
		if status.Suspended, err = c.status.IsSuspended(owner, now); err == nil {
			if status.Injured, err = c.status.IsInjured(owner, now); err == nil {
				if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
					status.Bookable, err = c.status.IsBookable(owner, now)
				}
			}
		}
	}
	if err != nil {
		responses.InternalServerError(ctx, "failed to derive status: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *RefereeController) transition(ctx *gin.Context, apply func(lifecycle.Owner, time.Time) error) {
	referee := c.refereeFromPath(ctx)
	if referee == nil {
		return
	}
	var input TransitionInput
	if err := ctx.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		responses.BadRequest(ctx, err.Error())
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}
	if err := apply(referee.AsOwner(), at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *RefereeController) EmployReferee(ctx *gin.Context)    { c.transition(ctx, c.transitions.Employ) }
func (c *RefereeController) ReleaseReferee(ctx *gin.Context)   { c.transition(ctx, c.transitions.Release) }
func (c *RefereeController) SuspendReferee(ctx *gin.Context)   { c.transition(ctx, c.transitions.Suspend) }
func (c *RefereeController) ReinstateReferee(ctx *gin.Context) { c.transition(ctx, c.transitions.Reinstate) }
func (c *RefereeController) InjureReferee(ctx *gin.Context)    { c.transition(ctx, c.transitions.Injure) }
func (c *RefereeController) HealReferee(ctx *gin.Context)      { c.transition(ctx, c.transitions.Heal) }
func (c *RefereeController) UnretireReferee(ctx *gin.Context)  { c.transition(ctx, c.transitions.Unretire) }

// RetireReferee releases the referee and opens their retirement period.
func (c *RefereeController) RetireReferee(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, at time.Time) error {
		if err := c.transitions.Release(owner, at); err != nil {
			return err
		}
		return c.transitions.Retire(owner, at)
	})
}
