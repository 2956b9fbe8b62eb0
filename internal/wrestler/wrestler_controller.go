package wrestler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/models"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// WrestlerController handles wrestler-related HTTP requests, including the
// managers working the wrestler's corner.
type WrestlerController struct {
	repo        WrestlerRepository
	managers    membership.MembershipRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewWrestlerController creates a new wrestler controller.
func NewWrestlerController(repo WrestlerRepository, managers membership.MembershipRepository,
	status *lifecycle.Status, transitions *lifecycle.Transitions) *WrestlerController {
	return &WrestlerController{repo: repo, managers: managers, status: status, transitions: transitions}
}

// WrestlerInput is the request payload for creating or updating a wrestler.
type WrestlerInput struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Hometown       string   `json:"hometown" binding:"max=100"`
	HeightInches   int      `json:"height_inches" binding:"omitempty,min=48,max=96"`
	WeightLbs      int      `json:"weight_lbs" binding:"omitempty,min=80,max=800"`
	SignatureMoves []string `json:"signature_moves,omitempty"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
// When omitted the server clock is used.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

func effectiveAt(input TransitionInput) time.Time {
	if input.At != nil {
		return *input.At
	}
	return time.Now().UTC()
}

func (c *WrestlerController) wrestlerFromPath(ctx *gin.Context) *Wrestler {
	id, err := strconv.ParseUint(ctx.Param("wrestler_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid wrestler ID")
		return nil
	}
	wrestler, err := c.repo.GetWrestlerByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load wrestler: "+err.Error())
		return nil
	}
	if wrestler == nil {
		responses.NotFound(ctx, "wrestler")
		return nil
	}
	return wrestler
}

// CreateWrestler godoc
// @Summary Create a new wrestler
// @Tags wrestlers
// @Accept json
// @Produce json
// @Param wrestler body WrestlerInput true "Wrestler information"
// @Success 201 {object} Wrestler
// @Failure 400 {object} responses.ErrorResponse
// @Router /admin/wrestlers [post]
// @Security Bearer
func (c *WrestlerController) CreateWrestler(ctx *gin.Context) {
	var input WrestlerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	wrestler := &Wrestler{
		Name:           input.Name,
		Hometown:       input.Hometown,
		HeightInches:   input.HeightInches,
		WeightLbs:      input.WeightLbs,
		SignatureMoves: input.SignatureMoves,
	}
	if err := c.repo.CreateWrestler(wrestler); err != nil {
		responses.InternalServerError(ctx, "failed to create wrestler: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, wrestler)
}

// GetWrestlerByID godoc
// @Summary Get wrestler by ID
// @Tags wrestlers
// @Produce json
// @Param wrestler_id path int true "Wrestler ID"
// @Success 200 {object} Wrestler
// @Failure 404 {object} responses.ErrorResponse
// @Router /wrestlers/{wrestler_id} [get]
func (c *WrestlerController) GetWrestlerByID(ctx *gin.Context) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}
	ctx.JSON(http.StatusOK, wrestler)
}

// GetAllWrestlers godoc
// @Summary List wrestlers
// @Tags wrestlers
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Success 200 {object} responses.PaginatedResponse
// @Router /wrestlers [get]
func (c *WrestlerController) GetAllWrestlers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	wrestlers, total, err := c.repo.GetAllWrestlers(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list wrestlers: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", wrestlers, total, page, limit)
}

// UpdateWrestler godoc
// @Summary Update a wrestler
// @Tags wrestlers
// @Accept json
// @Produce json
// @Param wrestler_id path int true "Wrestler ID"
// @Param wrestler body WrestlerInput true "Wrestler information"
// @Success 200 {object} Wrestler
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id} [put]
// @Security Bearer
func (c *WrestlerController) UpdateWrestler(ctx *gin.Context) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}

	var input WrestlerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	wrestler.Name = input.Name
	wrestler.Hometown = input.Hometown
	wrestler.HeightInches = input.HeightInches
	wrestler.WeightLbs = input.WeightLbs
	wrestler.SignatureMoves = input.SignatureMoves

	if err := c.repo.UpdateWrestler(wrestler); err != nil {
		responses.InternalServerError(ctx, "failed to update wrestler: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, wrestler)
}

// DeleteWrestler godoc
// @Summary Delete a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "deleted"
// @Failure 404 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id} [delete]
// @Security Bearer
func (c *WrestlerController) DeleteWrestler(ctx *gin.Context) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}
	if err := c.repo.DeleteWrestler(wrestler.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete wrestler: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetWrestlerStatus godoc
// @Summary Get a wrestler's derived lifecycle status
// @Tags wrestlers
// @Produce json
// @Param wrestler_id path int true "Wrestler ID"
// @Success 200 {object} WrestlerStatus
// @Router /wrestlers/{wrestler_id}/status [get]
func (c *WrestlerController) GetWrestlerStatus(ctx *gin.Context) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}
	owner := wrestler.AsOwner()
	now := time.Now().UTC()

	var status WrestlerStatus
	var err error
	if status.Employed, err = c.status.IsEmployed(owner, now); err == nil {
		if status.Suspended, err = c.status.IsSuspended(owner, now); err == nil {
			if status.Injured, err = c.status.IsInjured(owner, now); err == nil {
				if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
					if status.Bookable, err = c.status.IsBookable(owner, now); err == nil {
						status.HasFutureEmployment, err = c.status.HasFutureEmployment(owner, now)
					}
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

// transition runs a guarded lifecycle transition for the wrestler in the path.
func (c *WrestlerController) transition(ctx *gin.Context,
	guard func(owner lifecycle.Owner, now time.Time) (bool, string),
	apply func(owner lifecycle.Owner, at time.Time) error,
) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}

	var input TransitionInput
	if err := ctx.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		responses.BadRequest(ctx, err.Error())
		return
	}
	at := effectiveAt(input)
	owner := wrestler.AsOwner()

	if guard != nil {
		if ok, reason := guard(owner, at); !ok {
			responses.SendError(ctx, http.StatusUnprocessableEntity, reason)
			return
		}
	}
	if err := apply(owner, at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// EmployWrestler opens an employment period.
// @Summary Employ a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Param transition body TransitionInput false "Effective timestamp"
// @Success 204 "employed"
// @Failure 422 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id}/employ [post]
// @Security Bearer
func (c *WrestlerController) EmployWrestler(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, now time.Time) (bool, string) {
		retired, err := c.status.IsRetired(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if retired {
			return false, "wrestler is retired and must unretire before being employed"
		}
		return true, ""
	}, c.transitions.Employ)
}

// ReleaseWrestler closes the open employment period.
// @Summary Release a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "released"
// @Failure 422 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id}/release [post]
// @Security Bearer
func (c *WrestlerController) ReleaseWrestler(ctx *gin.Context) {
	c.transition(ctx, c.requireEmployed("wrestler is not employed"), c.transitions.Release)
}

// SuspendWrestler opens a suspension period.
// @Summary Suspend a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "suspended"
// @Failure 422 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id}/suspend [post]
// @Security Bearer
func (c *WrestlerController) SuspendWrestler(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, now time.Time) (bool, string) {
		bookable, err := c.status.IsBookable(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if !bookable {
			return false, "only an employed, unblocked wrestler can be suspended"
		}
		return true, ""
	}, c.transitions.Suspend)
}

// ReinstateWrestler closes the open suspension period.
// @Summary Reinstate a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "reinstated"
// @Router /admin/wrestlers/{wrestler_id}/reinstate [post]
// @Security Bearer
func (c *WrestlerController) ReinstateWrestler(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, now time.Time) (bool, string) {
		suspended, err := c.status.IsSuspended(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if !suspended {
			return false, "wrestler is not suspended"
		}
		return true, ""
	}, c.transitions.Reinstate)
}

// InjureWrestler opens an injury period.
// @Summary Mark a wrestler injured
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "injured"
// @Router /admin/wrestlers/{wrestler_id}/injure [post]
// @Security Bearer
func (c *WrestlerController) InjureWrestler(ctx *gin.Context) {
	c.transition(ctx, c.requireEmployed("only an employed wrestler can be marked injured"), c.transitions.Injure)
}

// HealWrestler closes the open injury period.
// @Summary Clear a wrestler's injury
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "healed"
// @Router /admin/wrestlers/{wrestler_id}/heal [post]
// @Security Bearer
func (c *WrestlerController) HealWrestler(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, now time.Time) (bool, string) {
		injured, err := c.status.IsInjured(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if !injured {
			return false, "wrestler is not injured"
		}
		return true, ""
	}, c.transitions.Heal)
}

// RetireWrestler ends employment and opens a retirement period.
// @Summary Retire a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "retired"
// @Failure 422 {object} responses.ErrorResponse
// @Router /admin/wrestlers/{wrestler_id}/retire [post]
// @Security Bearer
func (c *WrestlerController) RetireWrestler(ctx *gin.Context) {
	c.transition(ctx, c.requireEmployed("only an employed wrestler can retire"),
		c.transitions.ReleaseAndRetire)
}

// UnretireWrestler closes the open retirement period.
// @Summary Unretire a wrestler
// @Tags wrestlers
// @Param wrestler_id path int true "Wrestler ID"
// @Success 204 "unretired"
// @Router /admin/wrestlers/{wrestler_id}/unretire [post]
// @Security Bearer
func (c *WrestlerController) UnretireWrestler(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, now time.Time) (bool, string) {
		retired, err := c.status.IsRetired(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if !retired {
			return false, "wrestler is not retired"
		}
		return true, ""
	}, c.transitions.Unretire)
}

// ManagerInput names the manager a hire or fire applies to.
type ManagerInput struct {
	ManagerID uint       `json:"manager_id" binding:"required"`
	At        *time.Time `json:"at,omitempty"`
}

// GetWrestlerManagers returns the wrestler's current manager memberships.
// @Summary List a wrestler's current managers
// @Tags wrestlers
// @Produce json
// @Param wrestler_id path int true "Wrestler ID"
// @Success 200 {array} membership.Membership
// @Router /wrestlers/{wrestler_id}/managers [get]
func (c *WrestlerController) GetWrestlerManagers(ctx *gin.Context) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}
	current, err := c.managers.CurrentMembers(wrestler.AsGroup())
	if err != nil {
		responses.InternalServerError(ctx, "failed to load managers: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, current)
}

// HireManager opens a management period for the wrestler.
// @Summary Hire a manager for a wrestler
// @Tags wrestlers
// @Accept json
// @Param wrestler_id path int true "Wrestler ID"
// @Param manager body ManagerInput true "Manager to hire"
// @Success 204 "hired"
// @Router /admin/wrestlers/{wrestler_id}/hire-manager [post]
// @Security Bearer
func (c *WrestlerController) HireManager(ctx *gin.Context) {
	c.managerChange(ctx, c.managers.AddMember)
}

// FireManager closes the manager's open management period.
// @Summary Fire one of a wrestler's managers
// @Tags wrestlers
// @Accept json
// @Param wrestler_id path int true "Wrestler ID"
// @Param manager body ManagerInput true "Manager to fire"
// @Success 204 "fired"
// @Router /admin/wrestlers/{wrestler_id}/fire-manager [post]
// @Security Bearer
func (c *WrestlerController) FireManager(ctx *gin.Context) {
	c.managerChange(ctx, c.managers.RemoveMember)
}

func (c *WrestlerController) managerChange(ctx *gin.Context,
	apply func(membership.Group, membership.Member, time.Time) error) {
	wrestler := c.wrestlerFromPath(ctx)
	if wrestler == nil {
		return
	}
	var input ManagerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}
	manager := membership.Member{ID: input.ManagerID, Type: models.RosterManager}
	if err := apply(wrestler.AsGroup(), manager, at); err != nil {
		responses.InternalServerError(ctx, "failed to update managers: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *WrestlerController) requireEmployed(reason string) func(lifecycle.Owner, time.Time) (bool, string) {
	return func(owner lifecycle.Owner, now time.Time) (bool, string) {
		employed, err := c.status.IsEmployed(owner, now)
		if err != nil {
			return false, err.Error()
		}
		if !employed {
			return false, reason
		}
		return true, ""
	}
}
