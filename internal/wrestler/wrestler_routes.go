package wrestler

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// WrestlerRoutes sets up all wrestler-related routes.
func WrestlerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	controller := NewWrestlerController(
		NewWrestlerRepository(db),
		membership.NewMembershipRepository(db),
		lifecycle.NewStatus(periods),
		lifecycle.NewTransitions(periods),
	)

	// Public roster views
	router.GET("/wrestlers", controller.GetAllWrestlers)
	router.GET("/wrestlers/:wrestler_id", controller.GetWrestlerByID)
	router.GET("/wrestlers/:wrestler_id/status", controller.GetWrestlerStatus)
	router.GET("/wrestlers/:wrestler_id/managers", controller.GetWrestlerManagers)

	// Admin roster management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/wrestlers", controller.CreateWrestler)
		adminRoutes.PUT("/wrestlers/:wrestler_id", controller.UpdateWrestler)
		adminRoutes.DELETE("/wrestlers/:wrestler_id", controller.DeleteWrestler)

		adminRoutes.POST("/wrestlers/:wrestler_id/employ", controller.EmployWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/release", controller.ReleaseWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/suspend", controller.SuspendWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/reinstate", controller.ReinstateWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/injure", controller.InjureWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/heal", controller.HealWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/retire", controller.RetireWrestler)
		adminRoutes.POST("/wrestlers/:wrestler_id/unretire", controller.UnretireWrestler)

		adminRoutes.POST("/wrestlers/:wrestler_id/hire-manager", controller.HireManager)
		adminRoutes.POST("/wrestlers/:wrestler_id/fire-manager", controller.FireManager)
	}
}
