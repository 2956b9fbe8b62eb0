package title

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/championship"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/models"
	"github.com/ringsidehq/ringside/pkg/responses"
	"gorm.io/gorm"
)

// TitleController handles title HTTP requests, including championship
// succession.
type TitleController struct {
	db          *gorm.DB
	repo        TitleRepository
	reigns      championship.ChampionshipRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewTitleController creates a new title controller.
func NewTitleController(db *gorm.DB, repo TitleRepository, reigns championship.ChampionshipRepository,
	status *lifecycle.Status, transitions *lifecycle.Transitions) *TitleController {
	return &TitleController{db: db, repo: repo, reigns: reigns, status: status, transitions: transitions}
}

// TitleInput is the request payload for creating or updating a title.
type TitleInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

// AwardInput crowns a new champion.
type AwardInput struct {
	ChampionType string     `json:"champion_type" binding:"required"`
	ChampionID   uint       `json:"champion_id" binding:"required"`
	At           *time.Time `json:"at,omitempty"`
}

func (c *TitleController) titleFromPath(ctx *gin.Context) *Title {
	id, err := strconv.ParseUint(ctx.Param("title_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid title ID")
		return nil
	}
	title, err := c.repo.GetTitleByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load title: "+err.Error())
		return nil
	}
	if title == nil {
		responses.NotFound(ctx, "title")
		return nil
	}
	return title
}

func (c *TitleController) CreateTitle(ctx *gin.Context) {
	var input TitleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	title := &Title{Name: input.Name}
	if err := c.repo.CreateTitle(title); err != nil {
		responses.InternalServerError(ctx, "failed to create title: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, title)
}

func (c *TitleController) GetTitleByID(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	ctx.JSON(http.StatusOK, title)
}

func (c *TitleController) GetAllTitles(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	titles, total, err := c.repo.GetAllTitles(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list titles: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", titles, total, page, limit)
}

func (c *TitleController) UpdateTitle(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	var input TitleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	title.Name = input.Name
	if err := c.repo.UpdateTitle(title); err != nil {
		responses.InternalServerError(ctx, "failed to update title: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, title)
}

func (c *TitleController) DeleteTitle(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	if err := c.repo.DeleteTitle(title.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete title: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetTitleStatus returns activity, retirement and vacancy in one view.
func (c *TitleController) GetTitleStatus(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	owner := title.AsOwner()
	now := time.Now().UTC()

	var status TitleStatus
	var err error
	if status.Active, err = c.status.IsCurrentlyActive(owner, now); err == nil {
		if status.Unactivated, err = c.status.IsUnactivated(owner); err == nil {
			if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
				if status.Vacant, err = c.reigns.IsVacant(title.ID); err == nil {
					status.HasFutureActivity, err = c.status.HasFutureActivity(owner, now)
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

// GetTitleChampionships returns the title's reign history, newest first, the
// current reign included.
func (c *TitleController) GetTitleChampionships(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	current, err := c.reigns.Current(title.ID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load reigns: "+err.Error())
		return
	}
	previous, err := c.reigns.PreviousAll(title.ID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load reigns: "+err.Error())
		return
	}
	history := make([]championship.Championship, 0, len(previous)+1)
	if current != nil {
		history = append(history, *current)
	}
	history = append(history, previous...)
	ctx.JSON(http.StatusOK, history)
}

// GetLongestReign returns the reign maximizing its length as of now.
func (c *TitleController) GetLongestReign(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	longest, err := c.reigns.Longest(title.ID, time.Now().UTC())
	if err != nil {
		responses.InternalServerError(ctx, "failed to compute longest reign: "+err.Error())
		return
	}
	if longest == nil {
		responses.NotFound(ctx, "reign")
		return
	}
	ctx.JSON(http.StatusOK, longest)
}

// AwardTitle crowns a wrestler or tag team, ending any standing reign.
func (c *TitleController) AwardTitle(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
		return
	}
	var input AwardInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	championType, err := models.ParseRosterType(input.ChampionType)
	if err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	if championType != models.RosterWrestler && championType != models.RosterTagTeam {
		responses.BadRequest(ctx, "champion must be a wrestler or a tag team")
		return
	}
	at := time.Now().UTC()
	if input.At != nil {
		at = *input.At
	}

	active, err := c.status.IsCurrentlyActive(title.AsOwner(), at)
	if err != nil {
		responses.InternalServerError(ctx, "failed to derive status: "+err.Error())
		return
	}
	if !active {
		responses.SendError(ctx, http.StatusUnprocessableEntity, "title is not active")
		return
	}

	champion := championship.Champion{ID: input.ChampionID, Type: championType}
	if err := c.reigns.Award(title.ID, champion, at); err != nil {
		responses.InternalServerError(ctx, "failed to award title: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// VacateTitle ends the current reign with no successor.
func (c *TitleController) VacateTitle(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
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
	if err := c.reigns.Vacate(title.ID, at); err != nil {
		responses.InternalServerError(ctx, "failed to vacate title: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *TitleController) transition(ctx *gin.Context, apply func(lifecycle.Owner, time.Time) error) {
	title := c.titleFromPath(ctx)
	if title == nil {
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
	if err := apply(title.AsOwner(), at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DebutTitle puts the belt in circulation.
func (c *TitleController) DebutTitle(ctx *gin.Context) { c.transition(ctx, c.transitions.Activate) }

// PullTitle takes the belt out of circulation without retiring it.
func (c *TitleController) PullTitle(ctx *gin.Context) { c.transition(ctx, c.transitions.Deactivate) }

// RetireTitle retires the belt; the open activity period is closed at the
// same instant and the current reign ends.
func (c *TitleController) RetireTitle(ctx *gin.Context) {
	title := c.titleFromPath(ctx)
	if title == nil {
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
	if err := retire(c.db, title, at); err != nil {
		responses.InternalServerError(ctx, "failed to retire title: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

// retire ends the current reign and opens the retirement period on one
// transaction handle so a failure leaves the belt untouched.
func retire(db *gorm.DB, title *Title, at time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := championship.NewChampionshipRepository(tx).Vacate(title.ID, at); err != nil {
			return err
		}
		transitions := lifecycle.NewTransitions(lifecycle.NewPeriodRepository(tx))
		return transitions.Retire(title.AsOwner(), at)
	})
}

// UnretireTitle closes the open retirement period.
func (c *TitleController) UnretireTitle(ctx *gin.Context) { c.transition(ctx, c.transitions.Unretire) }
