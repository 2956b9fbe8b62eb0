package tagteam

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// TagTeamRoutes sets up all tag-team-related routes.
func TagTeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	controller := NewTagTeamController(
		NewTagTeamRepository(db),
		membership.NewMembershipRepository(db),
		lifecycle.NewStatus(periods),
		lifecycle.NewTransitions(periods),
	)

	router.GET("/tag-teams", controller.GetAllTagTeams)
	router.GET("/tag-teams/:team_id", controller.GetTagTeamByID)
	router.GET("/tag-teams/:team_id/status", controller.GetTagTeamStatus)
	router.GET("/tag-teams/:team_id/roster", controller.GetTagTeamRoster)
	router.GET("/tag-teams/:team_id/managers", controller.GetTagTeamManagers)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/tag-teams", controller.CreateTagTeam)
		adminRoutes.PUT("/tag-teams/:team_id", controller.UpdateTagTeam)
		adminRoutes.DELETE("/tag-teams/:team_id", controller.DeleteTagTeam)
		adminRoutes.PUT("/tag-teams/:team_id/roster", controller.SyncTagTeamRoster)

		adminRoutes.POST("/tag-teams/:team_id/employ", controller.EmployTagTeam)
		adminRoutes.POST("/tag-teams/:team_id/release", controller.ReleaseTagTeam)
		adminRoutes.POST("/tag-teams/:team_id/suspend", controller.SuspendTagTeam)
		adminRoutes.POST("/tag-teams/:team_id/reinstate", controller.ReinstateTagTeam)
		adminRoutes.POST("/tag-teams/:team_id/retire", controller.RetireTagTeam)
		adminRoutes.POST("/tag-teams/:team_id/unretire", controller.UnretireTagTeam)

		adminRoutes.POST("/tag-teams/:team_id/hire-manager", controller.HireManager)
		adminRoutes.POST("/tag-teams/:team_id/fire-manager", controller.FireManager)
	}
}
