package tagteam

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

// TagTeamController handles tag-team HTTP requests, including the wrestler
// roster managed through membership periods.
type TagTeamController struct {
	repo        TagTeamRepository
	members     membership.MembershipRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewTagTeamController creates a new tag-team controller.
func NewTagTeamController(repo TagTeamRepository, members membership.MembershipRepository,
	status *lifecycle.Status, transitions *lifecycle.Transitions) *TagTeamController {
	return &TagTeamController{repo: repo, members: members, status: status, transitions: transitions}
}

// TagTeamInput is the request payload for creating or updating a tag team.
type TagTeamInput struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	SignatureMove string `json:"signature_move" binding:"max=100"`
	WrestlerIDs   []uint `json:"wrestler_ids,omitempty"`
}

// RosterInput replaces a team's wrestler roster as of a timestamp.
type RosterInput struct {
	WrestlerIDs []uint     `json:"wrestler_ids" binding:"required"`
	At          *time.Time `json:"at,omitempty"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

func wrestlersAsMembers(ids []uint) []membership.Member {
	members := make([]membership.Member, 0, len(ids))
	for _, id := range ids {
		members = append(members, membership.Member{ID: id, Type: models.RosterWrestler})
	}
	return members
}

func (c *TagTeamController) teamFromPath(ctx *gin.Context) *TagTeam {
	id, err := strconv.ParseUint(ctx.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid tag team ID")
		return nil
	}
	team, err := c.repo.GetTagTeamByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load tag team: "+err.Error())
		return nil
	}
	if team == nil {
		responses.NotFound(ctx, "tag team")
		return nil
	}
	return team
}

func (c *TagTeamController) CreateTagTeam(ctx *gin.Context) {
	var input TagTeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	team := &TagTeam{Name: input.Name, SignatureMove: input.SignatureMove}
	if err := c.repo.CreateTagTeam(team); err != nil {
		responses.InternalServerError(ctx, "failed to create tag team: "+err.Error())
		return
	}
	if len(input.WrestlerIDs) > 0 {
		if err := c.members.AddMembers(team.AsGroup(), wrestlersAsMembers(input.WrestlerIDs), time.Now().UTC()); err != nil {
			responses.InternalServerError(ctx, "failed to enroll wrestlers: "+err.Error())
			return
		}
	}
	ctx.JSON(http.StatusCreated, team)
}

func (c *TagTeamController) GetTagTeamByID(ctx *gin.Context) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}
	ctx.JSON(http.StatusOK, team)
}

func (c *TagTeamController) GetAllTagTeams(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	teams, total, err := c.repo.GetAllTagTeams(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list tag teams: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", teams, total, page, limit)
}

func (c *TagTeamController) UpdateTagTeam(ctx *gin.Context) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}

	var input TagTeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	team.Name = input.Name
	team.SignatureMove = input.SignatureMove
	if err := c.repo.UpdateTagTeam(team); err != nil {
		responses.InternalServerError(ctx, "failed to update tag team: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, team)
}

func (c *TagTeamController) DeleteTagTeam(ctx *gin.Context) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}
	if err := c.repo.DeleteTagTeam(team.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete tag team: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetTagTeamRoster returns the team's current wrestler memberships.
func (c *TagTeamController) GetTagTeamRoster(ctx *gin.Context) {
	c.currentMembersOfType(ctx, models.RosterWrestler, "failed to load roster: ")
}

// GetTagTeamManagers returns the team's current manager memberships.
func (c *TagTeamController) GetTagTeamManagers(ctx *gin.Context) {
	c.currentMembersOfType(ctx, models.RosterManager, "failed to load managers: ")
}

func (c *TagTeamController) currentMembersOfType(ctx *gin.Context, memberType models.RosterType, loadErr string) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}
	current, err := c.members.CurrentMembers(team.AsGroup())
	if err != nil {
		responses.InternalServerError(ctx, loadErr+err.Error())
		return
	}
	rows := make([]membership.Membership, 0, len(current))
	for _, row := range current {
		if row.MemberType == memberType {
			rows = append(rows, row)
		}
	}
	ctx.JSON(http.StatusOK, rows)
}

// SyncTagTeamRoster replaces the team's wrestler roster in one step.
func (c *TagTeamController) SyncTagTeamRoster(ctx *gin.Context) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}

	var input RosterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}

	if err := syncRoster(c.members, team.AsGroup(), input.WrestlerIDs, at); err != nil {
		responses.InternalServerError(ctx, "failed to sync roster: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// syncRoster replaces the team's wrestler seats. Managers are hired and
// fired separately and are left untouched.
func syncRoster(members membership.MembershipRepository, group membership.Group, wrestlerIDs []uint, at time.Time) error {
	current, err := members.CurrentMembers(group)
	if err != nil {
		return err
	}
	old := make([]membership.Member, 0, len(current))
	for _, row := range current {
		if row.MemberType != models.RosterWrestler {
			continue
		}
		old = append(old, membership.Member{ID: row.MemberID, Type: row.MemberType})
	}
	return members.SyncMembers(group, old, wrestlersAsMembers(wrestlerIDs), at)
}

// GetTagTeamStatus returns the team's derived lifecycle status.
func (c *TagTeamController) GetTagTeamStatus(ctx *gin.Context) {
	team := c.teamFromPath(ctx)
	if team == nil {
		return
	}
	owner := team.AsOwner()
	now := time.Now().UTC()

	var status TagTeamStatus
	var err error
	if status.Employed, err = c.status.IsEmployed(owner, now); err == nil {
		if status.Suspended, err = c.status.IsSuspended(owner, now); err == nil {
			if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
				status.Bookable, err = c.status.IsBookableTeam(owner, now)
			}
		}
	}
	if err != nil {
		responses.InternalServerError(ctx, "failed to derive status: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *TagTeamController) transition(ctx *gin.Context, apply func(lifecycle.Owner, time.Time) error) {
	team := c.teamFromPath(ctx)
	if team == nil {
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
	if err := apply(team.AsOwner(), at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *TagTeamController) EmployTagTeam(ctx *gin.Context)    { c.transition(ctx, c.transitions.Employ) }
func (c *TagTeamController) ReleaseTagTeam(ctx *gin.Context)   { c.transition(ctx, c.transitions.Release) }
func (c *TagTeamController) SuspendTagTeam(ctx *gin.Context)   { c.transition(ctx, c.transitions.Suspend) }
func (c *TagTeamController) ReinstateTagTeam(ctx *gin.Context) { c.transition(ctx, c.transitions.Reinstate) }
func (c *TagTeamController) UnretireTagTeam(ctx *gin.Context)  { c.transition(ctx, c.transitions.Unretire) }

// ManagerInput names the manager a hire or fire applies to.
type ManagerInput struct {
	ManagerID uint       `json:"manager_id" binding:"required"`
	At        *time.Time `json:"at,omitempty"`
}

// HireManager opens a management period for the team.
func (c *TagTeamController) HireManager(ctx *gin.Context) {
	c.managerChange(ctx, c.members.AddMember)
}

// FireManager closes the manager's open management period.
func (c *TagTeamController) FireManager(ctx *gin.Context) {
	c.managerChange(ctx, c.members.RemoveMember)
}

func (c *TagTeamController) managerChange(ctx *gin.Context,
	apply func(membership.Group, membership.Member, time.Time) error) {
	team := c.teamFromPath(ctx)
	if team == nil {
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
	if err := apply(team.AsGroup(), manager, at); err != nil {
		responses.InternalServerError(ctx, "failed to update managers: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RetireTagTeam releases the team and opens its retirement period.
func (c *TagTeamController) RetireTagTeam(ctx *gin.Context) {
	c.transition(ctx, c.transitions.ReleaseAndRetire)
}
