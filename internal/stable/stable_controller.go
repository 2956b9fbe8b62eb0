package stable

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	"github.com/ringsidehq/ringside/internal/models"
	"github.com/ringsidehq/ringside/pkg/responses"
	"gorm.io/gorm"
)

// StableController handles stable HTTP requests, including the mixed
// wrestler and tag-team roster managed through membership periods.
type StableController struct {
	db          *gorm.DB
	repo        StableRepository
	members     membership.MembershipRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewStableController creates a new stable controller.
func NewStableController(db *gorm.DB, repo StableRepository, members membership.MembershipRepository,
	status *lifecycle.Status, transitions *lifecycle.Transitions) *StableController {
	return &StableController{db: db, repo: repo, members: members, status: status, transitions: transitions}
}

// StableInput is the request payload for creating or updating a stable.
type StableInput struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	WrestlerIDs []uint `json:"wrestler_ids,omitempty"`
	TagTeamIDs  []uint `json:"tag_team_ids,omitempty"`
}

// MembersInput replaces a stable's roster as of a timestamp.
type MembersInput struct {
	WrestlerIDs []uint     `json:"wrestler_ids"`
	TagTeamIDs  []uint     `json:"tag_team_ids"`
	At          *time.Time `json:"at,omitempty"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

func asMembers(wrestlerIDs, tagTeamIDs []uint) []membership.Member {
	members := make([]membership.Member, 0, len(wrestlerIDs)+len(tagTeamIDs))
	for _, id := range wrestlerIDs {
		members = append(members, membership.Member{ID: id, Type: models.RosterWrestler})
	}
	for _, id := range tagTeamIDs {
		members = append(members, membership.Member{ID: id, Type: models.RosterTagTeam})
	}
	return members
}

func (c *StableController) stableFromPath(ctx *gin.Context) *Stable {
	id, err := strconv.ParseUint(ctx.Param("stable_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid stable ID")
		return nil
	}
	stable, err := c.repo.GetStableByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load stable: "+err.Error())
		return nil
	}
	if stable == nil {
		responses.NotFound(ctx, "stable")
		return nil
	}
	return stable
}

func (c *StableController) CreateStable(ctx *gin.Context) {
	var input StableInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	stable := &Stable{Name: input.Name}
	if err := c.repo.CreateStable(stable); err != nil {
		responses.InternalServerError(ctx, "failed to create stable: "+err.Error())
		return
	}
	founders := asMembers(input.WrestlerIDs, input.TagTeamIDs)
	if len(founders) > 0 {
		if err := c.members.AddMembers(stable.AsGroup(), founders, time.Now().UTC()); err != nil {
			responses.InternalServerError(ctx, "failed to enroll members: "+err.Error())
			return
		}
	}
	ctx.JSON(http.StatusCreated, stable)
}

func (c *StableController) GetStableByID(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}
	ctx.JSON(http.StatusOK, stable)
}

func (c *StableController) GetAllStables(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	stables, total, err := c.repo.GetAllStables(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list stables: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", stables, total, page, limit)
}

func (c *StableController) UpdateStable(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}

	var input StableInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	stable.Name = input.Name
	if err := c.repo.UpdateStable(stable); err != nil {
		responses.InternalServerError(ctx, "failed to update stable: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, stable)
}

func (c *StableController) DeleteStable(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}
	if err := c.repo.DeleteStable(stable.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete stable: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetStableMembers returns the stable's current memberships.
func (c *StableController) GetStableMembers(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}
	current, err := c.members.CurrentMembers(stable.AsGroup())
	if err != nil {
		responses.InternalServerError(ctx, "failed to load members: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, current)
}

// GetStableMemberHistory returns closed memberships, the stable's alumni.
func (c *StableController) GetStableMemberHistory(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}
	previous, err := c.members.PreviousMemberships(stable.AsGroup())
	if err != nil {
		responses.InternalServerError(ctx, "failed to load member history: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, previous)
}

// SyncStableMembers replaces the stable's roster in one step. Members in
// both the old and the new roster keep their seat but restart their join
// date at the sync instant.
func (c *StableController) SyncStableMembers(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}

	var input MembersInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}

	group := stable.AsGroup()
	current, err := c.members.CurrentMembers(group)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load members: "+err.Error())
		return
	}
	old := make([]membership.Member, 0, len(current))
	for _, row := range current {
		old = append(old, membership.Member{ID: row.MemberID, Type: row.MemberType})
	}

	if err := c.members.SyncMembers(group, old, asMembers(input.WrestlerIDs, input.TagTeamIDs), at); err != nil {
		responses.InternalServerError(ctx, "failed to sync members: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetStableStatus returns the stable's derived lifecycle status.
func (c *StableController) GetStableStatus(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
		return
	}
	owner := stable.AsOwner()
	now := time.Now().UTC()

	var status StableStatus
	var err error
	if status.Active, err = c.status.IsCurrentlyActive(owner, now); err == nil {
		if status.Unactivated, err = c.status.IsUnactivated(owner); err == nil {
			if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
				status.HasFutureActivity, err = c.status.HasFutureActivity(owner, now)
			}
		}
	}
	if err != nil {
		responses.InternalServerError(ctx, "failed to derive status: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *StableController) transition(ctx *gin.Context, apply func(lifecycle.Owner, time.Time) error) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
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
	if err := apply(stable.AsOwner(), at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// FormStable opens the stable's activity period.
func (c *StableController) FormStable(ctx *gin.Context) { c.transition(ctx, c.transitions.Activate) }

// RetireStable opens a retirement period; the activity period closes at the
// same instant.
func (c *StableController) RetireStable(ctx *gin.Context) { c.transition(ctx, c.transitions.Retire) }

// UnretireStable closes the open retirement period.
func (c *StableController) UnretireStable(ctx *gin.Context) { c.transition(ctx, c.transitions.Unretire) }

// DisbandStable ends every current membership and deactivates the stable at
// the same instant.
func (c *StableController) DisbandStable(ctx *gin.Context) {
	stable := c.stableFromPath(ctx)
	if stable == nil {
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
	if err := disband(c.db, stable, at); err != nil {
		responses.InternalServerError(ctx, "failed to disband: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// disband closes the roster and the activity period on one transaction
// handle so a failure leaves the stable untouched.
func disband(db *gorm.DB, stable *Stable, at time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := membership.NewMembershipRepository(tx).DisbandAll(stable.AsGroup(), at); err != nil {
			return err
		}
		transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(tx))
		return transitions.Deactivate(stable.AsOwner(), at)
	})
}
