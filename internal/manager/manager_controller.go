package manager

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/pkg/responses"
)

// ManagerController handles manager-related HTTP requests.
type ManagerController struct {
	repo        ManagerRepository
	status      *lifecycle.Status
	transitions *lifecycle.Transitions
}

// NewManagerController creates a new manager controller.
func NewManagerController(repo ManagerRepository, status *lifecycle.Status, transitions *lifecycle.Transitions) *ManagerController {
	return &ManagerController{repo: repo, status: status, transitions: transitions}
}

// ManagerInput is the request payload for creating or updating a manager.
type ManagerInput struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// TransitionInput carries the effective timestamp of a lifecycle transition.
type TransitionInput struct {
	At *time.Time `json:"at,omitempty"`
}

func (c *ManagerController) managerFromPath(ctx *gin.Context) *Manager {
	id, err := strconv.ParseUint(ctx.Param("manager_id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "invalid manager ID")
		return nil
	}
	manager, err := c.repo.GetManagerByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "failed to load manager: "+err.Error())
		return nil
	}
	if manager == nil {
		responses.NotFound(ctx, "manager")
		return nil
	}
	return manager
}

func (c *ManagerController) CreateManager(ctx *gin.Context) {
	var input ManagerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	manager := &Manager{Name: input.Name}
	if err := c.repo.CreateManager(manager); err != nil {
		responses.InternalServerError(ctx, "failed to create manager: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, manager)
}

func (c *ManagerController) GetManagerByID(ctx *gin.Context) {
	manager := c.managerFromPath(ctx)
	if manager == nil {
		return
	}
	ctx.JSON(http.StatusOK, manager)
}

func (c *ManagerController) GetAllManagers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	managers, total, err := c.repo.GetAllManagers(page, limit)
	if err != nil {
		responses.InternalServerError(ctx, "failed to list managers: "+err.Error())
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", managers, total, page, limit)
}

func (c *ManagerController) UpdateManager(ctx *gin.Context) {
	manager := c.managerFromPath(ctx)
	if manager == nil {
		return
	}
	var input ManagerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}
	manager.Name = input.Name
	if err := c.repo.UpdateManager(manager); err != nil {
		responses.InternalServerError(ctx, "failed to update manager: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, manager)
}

func (c *ManagerController) DeleteManager(ctx *gin.Context) {
	manager := c.managerFromPath(ctx)
	if manager == nil {
		return
	}
	if err := c.repo.DeleteManager(manager.ID); err != nil {
		responses.InternalServerError(ctx, "failed to delete manager: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ManagerController) GetManagerStatus(ctx *gin.Context) {
	manager := c.managerFromPath(ctx)
	if manager == nil {
		return
	}
	owner := manager.AsOwner()
	now := time.Now().UTC()

	var status ManagerStatus
	var err error
	if status.Employed, err = c.status.IsEmployed(owner, now); err == nil {
		if status.Suspended, err = c.status.IsSuspended(owner, now); err == nil {
			if status.Injured, err = c.status.IsInjured(owner, now); err == nil {
				if status.Retired, err = c.status.IsRetired(owner, now); err == nil {
					status.Available, err = c.status.IsBookable(owner, now)
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

func (c *ManagerController) transition(ctx *gin.Context, apply func(lifecycle.Owner, time.Time) error) {
	manager := c.managerFromPath(ctx)
	if manager == nil {
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
	if err := apply(manager.AsOwner(), at); err != nil {
		responses.InternalServerError(ctx, "transition failed: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ManagerController) EmployManager(ctx *gin.Context)    { c.transition(ctx, c.transitions.Employ) }
func (c *ManagerController) ReleaseManager(ctx *gin.Context)   { c.transition(ctx, c.transitions.Release) }
func (c *ManagerController) SuspendManager(ctx *gin.Context)   { c.transition(ctx, c.transitions.Suspend) }
func (c *ManagerController) ReinstateManager(ctx *gin.Context) { c.transition(ctx, c.transitions.Reinstate) }
func (c *ManagerController) InjureManager(ctx *gin.Context)    { c.transition(ctx, c.transitions.Injure) }
func (c *ManagerController) HealManager(ctx *gin.Context)      { c.transition(ctx, c.transitions.Heal) }
func (c *ManagerController) UnretireManager(ctx *gin.Context)  { c.transition(ctx, c.transitions.Unretire) }

// RetireManager releases the manager and opens their retirement period.
func (c *ManagerController) RetireManager(ctx *gin.Context) {
	c.transition(ctx, func(owner lifecycle.Owner, at time.Time) error {
		if err := c.transitions.Release(owner, at); err != nil {
			return err
		}
		return c.transitions.Retire(owner, at)
	})
}
